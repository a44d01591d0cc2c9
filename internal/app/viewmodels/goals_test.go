package viewmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahassan/unisync/internal/app/store"
)

func newGoalsVM(ms *store.MemoryStore, codec store.Codec) *StudyGoalsViewModel {
	return NewStudyGoalsViewModel(ms, codec, staticPrincipal(testPrincipalID), nopLogger())
}

func TestAddGoalStartsAtZero(t *testing.T) {
	ms, codec := newTestStore()
	vm := newGoalsVM(ms, codec)

	added := vm.AddGoal("Read 5 chapters", "c1", 12)

	require.Len(t, vm.Goals(), 1)
	assert.Zero(t, added.CompletedHours)
	assert.Equal(t, 12.0, added.TargetHours)

	assert.Eventually(t, func() bool {
		return ms.Count(testPrincipalID, store.KindStudyGoals) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestLogHoursAccumulates(t *testing.T) {
	ms, codec := newTestStore()
	vm := newGoalsVM(ms, codec)

	added := vm.AddGoal("Practice problems", "c1", 10)

	updated, ok := vm.LogHours(added.ID, 2.5)
	require.True(t, ok)
	assert.Equal(t, 2.5, updated.CompletedHours)

	updated, ok = vm.LogHours(added.ID, 3)
	require.True(t, ok)
	assert.Equal(t, 5.5, updated.CompletedHours)
}

func TestLogHoursClampsAtTarget(t *testing.T) {
	ms, codec := newTestStore()
	vm := newGoalsVM(ms, codec)

	added := vm.AddGoal("Revision", "c1", 5)

	_, ok := vm.LogHours(added.ID, 4)
	require.True(t, ok)

	updated, ok := vm.LogHours(added.ID, 3)
	require.True(t, ok)
	assert.Equal(t, 5.0, updated.CompletedHours, "logging past the target clamps")

	assert.Eventually(t, func() bool {
		doc, found := ms.Get(testPrincipalID, store.KindStudyGoals, added.ID)
		return found && doc["completedHours"] == 5.0
	}, time.Second, 5*time.Millisecond)
}

func TestLogHoursUnknownGoal(t *testing.T) {
	ms, codec := newTestStore()
	vm := newGoalsVM(ms, codec)

	_, ok := vm.LogHours("missing", 1)
	assert.False(t, ok)
}

func TestDeleteGoal(t *testing.T) {
	ms, codec := newTestStore()
	vm := newGoalsVM(ms, codec)

	added := vm.AddGoal("Revision", "c1", 5)
	vm.DeleteGoal(added.ID)

	assert.Empty(t, vm.Goals())
	assert.Eventually(t, func() bool {
		_, found := ms.Get(testPrincipalID, store.KindStudyGoals, added.ID)
		return !found
	}, time.Second, 5*time.Millisecond)
}
