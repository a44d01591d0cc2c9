package viewmodels

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ahassan/unisync/internal/app/models"
	"github.com/ahassan/unisync/internal/app/store"
)

// CoursesViewModel owns the in-memory course collection.
type CoursesViewModel struct {
	mu      sync.Mutex
	courses []models.Course

	store     store.Store
	codec     store.Codec
	principal PrincipalProvider
	logger    zerolog.Logger
}

// NewCoursesViewModel creates a new CoursesViewModel.
func NewCoursesViewModel(st store.Store, codec store.Codec, principal PrincipalProvider, logger zerolog.Logger) *CoursesViewModel {
	return &CoursesViewModel{
		store:     st,
		codec:     codec,
		principal: principal,
		logger:    logger,
	}
}

// Load fetches the full collection and replaces the in-memory one
// wholesale. A fetch failure is logged and replaces the collection
// with the empty result.
func (vm *CoursesViewModel) Load(ctx context.Context) {
	docs, err := vm.store.FetchAll(ctx, vm.principal.PrincipalID(), store.KindCourses)
	if err != nil {
		vm.logger.Error().Err(err).Msg("Error fetching courses")
		docs = nil
	}

	fetched := make([]models.Course, 0, len(docs))
	for _, d := range docs {
		fetched = append(fetched, vm.codec.DecodeCourse(d))
	}

	vm.mu.Lock()
	vm.courses = fetched
	vm.mu.Unlock()
}

// Courses returns a snapshot of the collection in insertion order.
func (vm *CoursesViewModel) Courses() []models.Course {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	out := make([]models.Course, len(vm.courses))
	copy(out, vm.courses)
	return out
}

// AddCourse appends a new course and persists it in the background.
func (vm *CoursesViewModel) AddCourse(code, name, instructor, schedule, location, color string) models.Course {
	course := models.Course{
		ID:         uuid.NewString(),
		Code:       code,
		Name:       name,
		Instructor: instructor,
		Schedule:   schedule,
		Location:   location,
		Color:      color,
	}

	vm.mu.Lock()
	vm.courses = append(vm.courses, course)
	vm.mu.Unlock()

	vm.persist(course)
	return course
}

// UpdateCourse applies mutate to the first course matching id and
// persists the result. It reports whether a course was found. The id
// is immutable; mutate must not change it.
func (vm *CoursesViewModel) UpdateCourse(id string, mutate func(*models.Course)) (models.Course, bool) {
	vm.mu.Lock()
	var updated models.Course
	found := false
	for i := range vm.courses {
		if vm.courses[i].ID == id {
			mutate(&vm.courses[i])
			updated = vm.courses[i]
			found = true
			break
		}
	}
	vm.mu.Unlock()

	if !found {
		return models.Course{}, false
	}

	vm.persist(updated)
	return updated, true
}

// DeleteCourse removes every course matching id immediately and issues
// the remote delete concurrently. Dependent assignments and goals keep
// their now-dangling courseId; there is no cascade.
func (vm *CoursesViewModel) DeleteCourse(id string) {
	vm.mu.Lock()
	kept := vm.courses[:0]
	for _, c := range vm.courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	vm.courses = kept
	vm.mu.Unlock()

	principalID := vm.principal.PrincipalID()
	go func() {
		if err := vm.store.Delete(context.Background(), principalID, store.KindCourses, id); err != nil {
			vm.logger.Error().Err(err).Str("courseID", id).Msg("Error deleting course")
		}
	}()
}

func (vm *CoursesViewModel) persist(course models.Course) {
	principalID := vm.principal.PrincipalID()
	go func() {
		doc := vm.codec.EncodeCourse(course)
		if err := vm.store.Save(context.Background(), principalID, store.KindCourses, course.ID, doc); err != nil {
			vm.logger.Error().Err(err).Str("courseID", course.ID).Msg("Error saving course")
		}
	}()
}
