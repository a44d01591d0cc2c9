package viewmodels

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ahassan/unisync/internal/app/models"
	"github.com/ahassan/unisync/internal/app/store"
)

// DashboardViewModel aggregates read-only projections over its own
// fetched copies of the three collections. Projections are recomputed
// on every read; nothing is cached.
type DashboardViewModel struct {
	mu          sync.Mutex
	courses     []models.Course
	assignments []models.Assignment
	goals       []models.StudyGoal

	store     store.Store
	codec     store.Codec
	principal PrincipalProvider
	logger    zerolog.Logger
}

// NewDashboardViewModel creates a new DashboardViewModel.
func NewDashboardViewModel(st store.Store, codec store.Codec, principal PrincipalProvider, logger zerolog.Logger) *DashboardViewModel {
	return &DashboardViewModel{
		store:     st,
		codec:     codec,
		principal: principal,
		logger:    logger,
	}
}

// Load fetches courses, assignments and goals in parallel; the three
// fetches have no ordering dependency. Each failed fetch resolves to
// an empty slice.
func (vm *DashboardViewModel) Load(ctx context.Context) {
	principalID := vm.principal.PrincipalID()

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		docs, err := vm.store.FetchAll(ctx, principalID, store.KindCourses)
		if err != nil {
			vm.logger.Error().Err(err).Msg("Error fetching courses for dashboard")
			docs = nil
		}
		fetched := make([]models.Course, 0, len(docs))
		for _, d := range docs {
			fetched = append(fetched, vm.codec.DecodeCourse(d))
		}
		vm.mu.Lock()
		vm.courses = fetched
		vm.mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		docs, err := vm.store.FetchAll(ctx, principalID, store.KindAssignments)
		if err != nil {
			vm.logger.Error().Err(err).Msg("Error fetching assignments for dashboard")
			docs = nil
		}
		fetched := make([]models.Assignment, 0, len(docs))
		for _, d := range docs {
			fetched = append(fetched, vm.codec.DecodeAssignment(d))
		}
		vm.mu.Lock()
		vm.assignments = fetched
		vm.mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		docs, err := vm.store.FetchAll(ctx, principalID, store.KindStudyGoals)
		if err != nil {
			vm.logger.Error().Err(err).Msg("Error fetching study goals for dashboard")
			docs = nil
		}
		fetched := make([]models.StudyGoal, 0, len(docs))
		for _, d := range docs {
			fetched = append(fetched, vm.codec.DecodeStudyGoal(d))
		}
		vm.mu.Lock()
		vm.goals = fetched
		vm.mu.Unlock()
	}()

	wg.Wait()
}

// CourseCount reports how many courses were fetched.
func (vm *DashboardViewModel) CourseCount() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return len(vm.courses)
}

// GoalCount reports how many study goals were fetched.
func (vm *DashboardViewModel) GoalCount() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return len(vm.goals)
}

// PendingAssignments returns the assignments not yet completed, in
// source-collection order (not re-sorted by due date).
func (vm *DashboardViewModel) PendingAssignments() []models.Assignment {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	pending := []models.Assignment{}
	for _, a := range vm.assignments {
		if !a.Completed {
			pending = append(pending, a)
		}
	}
	return pending
}

// Upcoming returns the first limit pending assignments in source
// order.
func (vm *DashboardViewModel) Upcoming(limit int) []models.Assignment {
	pending := vm.PendingAssignments()
	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending
}

// TotalHours sums the completed hours across all study goals.
func (vm *DashboardViewModel) TotalHours() float64 {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	total := 0.0
	for _, g := range vm.goals {
		total += g.CompletedHours
	}
	return total
}

// CourseName resolves a course id to its display name. Dangling
// references resolve to ok=false rather than erroring.
func (vm *DashboardViewModel) CourseName(courseID string) (string, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	for _, c := range vm.courses {
		if c.ID == courseID {
			return c.Name, true
		}
	}
	return "", false
}
