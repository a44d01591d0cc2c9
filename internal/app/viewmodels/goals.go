package viewmodels

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ahassan/unisync/internal/app/models"
	"github.com/ahassan/unisync/internal/app/store"
)

// StudyGoalsViewModel owns the in-memory study goal collection.
type StudyGoalsViewModel struct {
	mu    sync.Mutex
	goals []models.StudyGoal

	store     store.Store
	codec     store.Codec
	principal PrincipalProvider
	logger    zerolog.Logger
}

// NewStudyGoalsViewModel creates a new StudyGoalsViewModel.
func NewStudyGoalsViewModel(st store.Store, codec store.Codec, principal PrincipalProvider, logger zerolog.Logger) *StudyGoalsViewModel {
	return &StudyGoalsViewModel{
		store:     st,
		codec:     codec,
		principal: principal,
		logger:    logger,
	}
}

// Load fetches the full collection and replaces the in-memory one
// wholesale.
func (vm *StudyGoalsViewModel) Load(ctx context.Context) {
	docs, err := vm.store.FetchAll(ctx, vm.principal.PrincipalID(), store.KindStudyGoals)
	if err != nil {
		vm.logger.Error().Err(err).Msg("Error fetching study goals")
		docs = nil
	}

	fetched := make([]models.StudyGoal, 0, len(docs))
	for _, d := range docs {
		fetched = append(fetched, vm.codec.DecodeStudyGoal(d))
	}

	vm.mu.Lock()
	vm.goals = fetched
	vm.mu.Unlock()
}

// Goals returns a snapshot of the collection in insertion order.
func (vm *StudyGoalsViewModel) Goals() []models.StudyGoal {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	out := make([]models.StudyGoal, len(vm.goals))
	copy(out, vm.goals)
	return out
}

// AddGoal appends a new goal with zero logged hours and persists it in
// the background.
func (vm *StudyGoalsViewModel) AddGoal(title, courseID string, targetHours float64) models.StudyGoal {
	goal := models.StudyGoal{
		ID:          uuid.NewString(),
		Title:       title,
		CourseID:    courseID,
		TargetHours: targetHours,
	}

	vm.mu.Lock()
	vm.goals = append(vm.goals, goal)
	vm.mu.Unlock()

	vm.persist(goal)
	return goal
}

// LogHours adds hours to the goal's completed hours, clamped so the
// result never exceeds the target, then persists. It reports whether
// the goal was found.
func (vm *StudyGoalsViewModel) LogHours(goalID string, hours float64) (models.StudyGoal, bool) {
	vm.mu.Lock()
	var updated models.StudyGoal
	found := false
	for i := range vm.goals {
		if vm.goals[i].ID == goalID {
			g := &vm.goals[i]
			g.CompletedHours = min(g.CompletedHours+hours, g.TargetHours)
			updated = *g
			found = true
			break
		}
	}
	vm.mu.Unlock()

	if !found {
		return models.StudyGoal{}, false
	}

	vm.persist(updated)
	return updated, true
}

// DeleteGoal removes every goal matching id immediately and issues the
// remote delete concurrently.
func (vm *StudyGoalsViewModel) DeleteGoal(id string) {
	vm.mu.Lock()
	kept := vm.goals[:0]
	for _, g := range vm.goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	vm.goals = kept
	vm.mu.Unlock()

	principalID := vm.principal.PrincipalID()
	go func() {
		if err := vm.store.Delete(context.Background(), principalID, store.KindStudyGoals, id); err != nil {
			vm.logger.Error().Err(err).Str("goalID", id).Msg("Error deleting study goal")
		}
	}()
}

func (vm *StudyGoalsViewModel) persist(g models.StudyGoal) {
	principalID := vm.principal.PrincipalID()
	go func() {
		doc := vm.codec.EncodeStudyGoal(g)
		if err := vm.store.Save(context.Background(), principalID, store.KindStudyGoals, g.ID, doc); err != nil {
			vm.logger.Error().Err(err).Str("goalID", g.ID).Msg("Error saving study goal")
		}
	}()
}
