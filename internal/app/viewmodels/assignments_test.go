package viewmodels

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahassan/unisync/internal/app/models"
	"github.com/ahassan/unisync/internal/app/reminder"
	"github.com/ahassan/unisync/internal/app/store"
)

func newAssignmentsVM(ms *store.MemoryStore, codec store.Codec, sink *countingSink) *AssignmentsViewModel {
	scheduler := reminder.NewScheduler(sink)
	return NewAssignmentsViewModel(ms, codec, scheduler, staticPrincipal(testPrincipalID), nopLogger())
}

func TestAddAssignmentPersistsAndSchedules(t *testing.T) {
	ms, codec := newTestStore()
	sink := &countingSink{}
	vm := newAssignmentsVM(ms, codec, sink)

	due := time.Now().AddDate(0, 0, 30)
	added := vm.AddAssignment("Essay draft", "c1", due, "chapters 1-3", models.PriorityHigh)

	require.Len(t, vm.Assignments(), 1)
	assert.False(t, added.Completed)
	assert.Equal(t, models.PriorityHigh, added.Priority)

	// A month out, all four pre-due offsets lie in the future.
	assert.Equal(t, 4, sink.count())

	assert.Eventually(t, func() bool {
		return ms.Count(testPrincipalID, store.KindAssignments) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestAddAssignmentPastDueDateSchedulesNothing(t *testing.T) {
	ms, codec := newTestStore()
	sink := &countingSink{}
	vm := newAssignmentsVM(ms, codec, sink)

	vm.AddAssignment("Old homework", "c1", time.Now().AddDate(0, 0, -3), "", models.PriorityLow)

	require.Len(t, vm.Assignments(), 1, "past due dates are legal")
	assert.Zero(t, sink.count())
}

func TestToggleComplete(t *testing.T) {
	ms, codec := newTestStore()
	sink := &countingSink{}
	vm := newAssignmentsVM(ms, codec, sink)

	added := vm.AddAssignment("Quiz prep", "c1", time.Now().AddDate(0, 0, 2), "", models.PriorityMedium)

	toggled, ok := vm.ToggleComplete(added.ID)
	require.True(t, ok)
	assert.True(t, toggled.Completed)

	toggled, ok = vm.ToggleComplete(added.ID)
	require.True(t, ok)
	assert.False(t, toggled.Completed)

	_, ok = vm.ToggleComplete("missing")
	assert.False(t, ok)
}

func TestUpdateAssignmentReschedulesWithoutCancelling(t *testing.T) {
	ms, codec := newTestStore()
	sink := &countingSink{}
	vm := newAssignmentsVM(ms, codec, sink)

	added := vm.AddAssignment("Essay", "c1", time.Now().AddDate(0, 0, 30), "", models.PriorityMedium)
	require.Equal(t, 4, sink.count())

	newDue := time.Now().AddDate(0, 0, 40)
	updated, ok := vm.UpdateAssignment(added.ID, func(a *models.Assignment) {
		a.DueDate = newDue
		a.Title = "Essay (extended)"
	})
	require.True(t, ok)
	assert.Equal(t, "Essay (extended)", updated.Title)

	// The earlier batch stays queued; the edit adds a fresh one.
	assert.Equal(t, 8, sink.count())
}

func TestDeleteAssignment(t *testing.T) {
	ms, codec := newTestStore()
	sink := &countingSink{}
	vm := newAssignmentsVM(ms, codec, sink)

	added := vm.AddAssignment("Essay", "c1", time.Now().AddDate(0, 0, 5), "", models.PriorityMedium)
	vm.DeleteAssignment(added.ID)

	assert.Empty(t, vm.Assignments())
	assert.Eventually(t, func() bool {
		_, found := ms.Get(testPrincipalID, store.KindAssignments, added.ID)
		return !found
	}, time.Second, 5*time.Millisecond)
}

func TestAssignmentsLoadDecodesStoredDocuments(t *testing.T) {
	ms, codec := newTestStore()
	sink := &countingSink{}
	vm := newAssignmentsVM(ms, codec, sink)
	ctx := context.Background()

	due := time.Date(2026, time.April, 10, 18, 0, 0, 0, time.UTC)
	doc := codec.EncodeAssignment(models.Assignment{
		ID: "a1", Title: "Stored", CourseID: "c1", DueDate: due, Priority: models.PriorityLow,
	})
	require.NoError(t, ms.Save(ctx, testPrincipalID, store.KindAssignments, "a1", doc))

	vm.Load(ctx)

	assignments := vm.Assignments()
	require.Len(t, assignments, 1)
	assert.Equal(t, "Stored", assignments[0].Title)
	assert.True(t, assignments[0].DueDate.Equal(due))
	assert.Zero(t, sink.count(), "loading never schedules reminders")
}
