package viewmodels

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ahassan/unisync/internal/app/models"
	"github.com/ahassan/unisync/internal/app/reminder"
	"github.com/ahassan/unisync/internal/app/store"
)

// AssignmentsViewModel owns the in-memory assignment collection and
// drives reminder scheduling.
type AssignmentsViewModel struct {
	mu          sync.Mutex
	assignments []models.Assignment

	store     store.Store
	codec     store.Codec
	scheduler *reminder.Scheduler
	principal PrincipalProvider
	logger    zerolog.Logger
}

// NewAssignmentsViewModel creates a new AssignmentsViewModel.
func NewAssignmentsViewModel(st store.Store, codec store.Codec, scheduler *reminder.Scheduler, principal PrincipalProvider, logger zerolog.Logger) *AssignmentsViewModel {
	return &AssignmentsViewModel{
		store:     st,
		codec:     codec,
		scheduler: scheduler,
		principal: principal,
		logger:    logger,
	}
}

// Load fetches the full collection and replaces the in-memory one
// wholesale.
func (vm *AssignmentsViewModel) Load(ctx context.Context) {
	docs, err := vm.store.FetchAll(ctx, vm.principal.PrincipalID(), store.KindAssignments)
	if err != nil {
		vm.logger.Error().Err(err).Msg("Error fetching assignments")
		docs = nil
	}

	fetched := make([]models.Assignment, 0, len(docs))
	for _, d := range docs {
		fetched = append(fetched, vm.codec.DecodeAssignment(d))
	}

	vm.mu.Lock()
	vm.assignments = fetched
	vm.mu.Unlock()
}

// Assignments returns a snapshot of the collection in insertion order.
func (vm *AssignmentsViewModel) Assignments() []models.Assignment {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	out := make([]models.Assignment, len(vm.assignments))
	copy(out, vm.assignments)
	return out
}

// AddAssignment appends a new assignment, persists it in the
// background and schedules its pre-due reminders. A past due date is
// legal and simply yields no reminders.
func (vm *AssignmentsViewModel) AddAssignment(title, courseID string, dueDate time.Time, notes string, priority models.Priority) models.Assignment {
	assignment := models.Assignment{
		ID:        uuid.NewString(),
		Title:     title,
		CourseID:  courseID,
		DueDate:   dueDate,
		Notes:     notes,
		Completed: false,
		Priority:  priority,
	}

	vm.mu.Lock()
	vm.assignments = append(vm.assignments, assignment)
	vm.mu.Unlock()

	vm.persist(assignment)
	vm.scheduler.SchedulePreDueReminders(assignment)
	return assignment
}

// ToggleComplete flips the completed flag of the first assignment
// matching id and persists it. It reports whether a match was found.
func (vm *AssignmentsViewModel) ToggleComplete(id string) (models.Assignment, bool) {
	vm.mu.Lock()
	var updated models.Assignment
	found := false
	for i := range vm.assignments {
		if vm.assignments[i].ID == id {
			vm.assignments[i].Completed = !vm.assignments[i].Completed
			updated = vm.assignments[i]
			found = true
			break
		}
	}
	vm.mu.Unlock()

	if !found {
		return models.Assignment{}, false
	}

	vm.persist(updated)
	return updated, true
}

// UpdateAssignment applies mutate to the first assignment matching id,
// persists the result and re-schedules its reminders against the new
// due date. Reminders queued for the old date are not cancelled; the
// fresh batch is scheduled alongside them.
func (vm *AssignmentsViewModel) UpdateAssignment(id string, mutate func(*models.Assignment)) (models.Assignment, bool) {
	vm.mu.Lock()
	var updated models.Assignment
	found := false
	for i := range vm.assignments {
		if vm.assignments[i].ID == id {
			mutate(&vm.assignments[i])
			updated = vm.assignments[i]
			found = true
			break
		}
	}
	vm.mu.Unlock()

	if !found {
		return models.Assignment{}, false
	}

	vm.persist(updated)
	vm.scheduler.SchedulePreDueReminders(updated)
	return updated, true
}

// DeleteAssignment removes every assignment matching id immediately
// and issues the remote delete concurrently.
func (vm *AssignmentsViewModel) DeleteAssignment(id string) {
	vm.mu.Lock()
	kept := vm.assignments[:0]
	for _, a := range vm.assignments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	vm.assignments = kept
	vm.mu.Unlock()

	principalID := vm.principal.PrincipalID()
	go func() {
		if err := vm.store.Delete(context.Background(), principalID, store.KindAssignments, id); err != nil {
			vm.logger.Error().Err(err).Str("assignmentID", id).Msg("Error deleting assignment")
		}
	}()
}

func (vm *AssignmentsViewModel) persist(a models.Assignment) {
	principalID := vm.principal.PrincipalID()
	go func() {
		doc := vm.codec.EncodeAssignment(a)
		if err := vm.store.Save(context.Background(), principalID, store.KindAssignments, a.ID, doc); err != nil {
			vm.logger.Error().Err(err).Str("assignmentID", a.ID).Msg("Error saving assignment")
		}
	}()
}
