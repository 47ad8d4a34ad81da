package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/backoffice-api/internal/models"
	"github.com/yukikurage/backoffice-api/internal/optional"
	"github.com/yukikurage/backoffice-api/internal/repository"
)

// LmsService manages LMS instances and their course, module and lesson tree.
type LmsService struct {
	repos *repository.Repositories
}

// NewLmsService creates a new LmsService.
func NewLmsService(repos *repository.Repositories) *LmsService {
	return &LmsService{repos: repos}
}

// CreateInstanceInput is shared by LMS and blog instances.
type CreateInstanceInput struct {
	OrganizationID uint64
	Name           string
	Slug           string
	Description    *string
}

func (in CreateInstanceInput) validate() error {
	if in.Name == "" {
		return invalid("name", "is required")
	}
	if in.Slug == "" {
		return invalid("slug", "is required")
	}
	return nil
}

// CreateLmsInstance creates an LMS instance inside an organization.
func (s *LmsService) CreateLmsInstance(ctx context.Context, input CreateInstanceInput) (*models.LmsInstance, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	instance := &models.LmsInstance{
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		Slug:           input.Slug,
		Description:    input.Description,
	}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := ensureExists(ctx, "organization", input.OrganizationID, tx.Organizations.FindByIDForUpdate); err != nil {
			return err
		}
		if err := tx.Lms.CreateInstance(ctx, instance); err != nil {
			return writeError("create", "lms instance", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// ListLmsInstances returns the LMS instances of an organization.
func (s *LmsService) ListLmsInstances(ctx context.Context, organizationID uint64) ([]models.LmsInstance, error) {
	instances, err := s.repos.Lms.ListInstances(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lms instances: %w", err)
	}
	return instances, nil
}

// CreateCourseInput represents parameters to create a course.
type CreateCourseInput struct {
	LmsInstanceID uint64
	Title         string
	Slug          string
	Description   *string
	Content       *string
	Visibility    models.Visibility
	CreatedBy     uint64
}

// CreateCourse creates a course after checking the instance and the creator.
func (s *LmsService) CreateCourse(ctx context.Context, input CreateCourseInput) (*models.Course, error) {
	if input.Title == "" {
		return nil, invalid("title", "is required")
	}
	if input.Slug == "" {
		return nil, invalid("slug", "is required")
	}
	if !input.Visibility.Valid() {
		return nil, invalidVisibility()
	}

	course := &models.Course{
		LmsInstanceID: input.LmsInstanceID,
		Title:         input.Title,
		Slug:          input.Slug,
		Description:   input.Description,
		Content:       input.Content,
		Visibility:    input.Visibility,
		CreatedBy:     input.CreatedBy,
	}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := ensureExists(ctx, "lms instance", input.LmsInstanceID, tx.Lms.FindInstanceByID); err != nil {
			return err
		}
		if _, err := ensureExists(ctx, "user", input.CreatedBy, tx.Users.FindByID); err != nil {
			return err
		}
		if err := tx.Lms.CreateCourse(ctx, course); err != nil {
			return writeError("create", "course", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}

// ListCourses returns the courses of an LMS instance.
func (s *LmsService) ListCourses(ctx context.Context, lmsInstanceID uint64) ([]models.Course, error) {
	courses, err := s.repos.Lms.ListCourses(ctx, lmsInstanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// UpdateCourseInput carries a sparse set of course changes.
type UpdateCourseInput struct {
	ID          uint64
	Title       optional.Field[string]
	Slug        optional.Field[string]
	Description optional.Field[string]
	Content     optional.Field[string]
	Visibility  optional.Field[models.Visibility]
}

// UpdateCourse merges the provided fields over the stored course.
func (s *LmsService) UpdateCourse(ctx context.Context, input UpdateCourseInput) (*models.Course, error) {
	if err := requireNonEmpty("title", input.Title); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("slug", input.Slug); err != nil {
		return nil, err
	}
	if err := checkVisibility(input.Visibility); err != nil {
		return nil, err
	}

	var course *models.Course
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		var err error
		course, err = ensureExists(ctx, "course", input.ID, tx.Lms.FindCourseByIDForUpdate)
		if err != nil {
			return err
		}

		input.Title.Apply(&course.Title)
		input.Slug.Apply(&course.Slug)
		input.Description.ApplyNullable(&course.Description)
		input.Content.ApplyNullable(&course.Content)
		input.Visibility.Apply(&course.Visibility)

		if err := tx.Lms.UpdateCourse(ctx, course); err != nil {
			return writeError("update", "course", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}

// CreateModuleInput represents parameters to create a module. A nil
// OrderIndex appends the module after its siblings.
type CreateModuleInput struct {
	CourseID    uint64
	Title       string
	Slug        string
	Description *string
	OrderIndex  *int
}

// CreateModule adds a module to a course. The course row is locked while the
// next order index is computed so concurrent appends get distinct positions.
func (s *LmsService) CreateModule(ctx context.Context, input CreateModuleInput) (*models.Module, error) {
	if input.Title == "" {
		return nil, invalid("title", "is required")
	}
	if input.Slug == "" {
		return nil, invalid("slug", "is required")
	}
	if err := checkOrderIndex(input.OrderIndex); err != nil {
		return nil, err
	}

	module := &models.Module{
		CourseID:    input.CourseID,
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
	}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := ensureExists(ctx, "course", input.CourseID, tx.Lms.FindCourseByIDForUpdate); err != nil {
			return err
		}

		index, err := orderIndex(input.OrderIndex, func() (int, error) {
			return tx.Lms.NextModuleIndex(ctx, input.CourseID)
		})
		if err != nil {
			return err
		}
		module.OrderIndex = index

		if err := tx.Lms.CreateModule(ctx, module); err != nil {
			return writeError("create", "module", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return module, nil
}

// ListModules returns a course's modules ascending by order index.
func (s *LmsService) ListModules(ctx context.Context, courseID uint64) ([]models.Module, error) {
	modules, err := s.repos.Lms.ListModules(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}
	return modules, nil
}

// CreateLessonInput represents parameters to create a lesson. A nil
// OrderIndex appends the lesson after its siblings.
type CreateLessonInput struct {
	ModuleID   uint64
	Title      string
	Slug       string
	Content    *string
	OrderIndex *int
}

// CreateLesson adds a lesson to a module.
func (s *LmsService) CreateLesson(ctx context.Context, input CreateLessonInput) (*models.Lesson, error) {
	if input.Title == "" {
		return nil, invalid("title", "is required")
	}
	if input.Slug == "" {
		return nil, invalid("slug", "is required")
	}
	if err := checkOrderIndex(input.OrderIndex); err != nil {
		return nil, err
	}

	lesson := &models.Lesson{
		ModuleID: input.ModuleID,
		Title:    input.Title,
		Slug:     input.Slug,
		Content:  input.Content,
	}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := ensureExists(ctx, "module", input.ModuleID, tx.Lms.FindModuleByIDForUpdate); err != nil {
			return err
		}

		index, err := orderIndex(input.OrderIndex, func() (int, error) {
			return tx.Lms.NextLessonIndex(ctx, input.ModuleID)
		})
		if err != nil {
			return err
		}
		lesson.OrderIndex = index

		if err := tx.Lms.CreateLesson(ctx, lesson); err != nil {
			return writeError("create", "lesson", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

// ListLessons returns a module's lessons ascending by order index.
func (s *LmsService) ListLessons(ctx context.Context, moduleID uint64) ([]models.Lesson, error) {
	lessons, err := s.repos.Lms.ListLessons(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	return lessons, nil
}

func checkOrderIndex(index *int) error {
	if index != nil && *index < 0 {
		return invalid("order_index", "must be greater than or equal to 0")
	}
	return nil
}

func orderIndex(requested *int, next func() (int, error)) (int, error) {
	if requested != nil {
		return *requested, nil
	}
	index, err := next()
	if err != nil {
		return 0, fmt.Errorf("failed to compute order index: %w", err)
	}
	return index, nil
}

func invalidVisibility() error {
	return invalid("visibility", "must be one of public, private, restricted")
}

func checkVisibility(f optional.Field[models.Visibility]) error {
	if f.IsNull() {
		return invalid("visibility", "cannot be null")
	}
	if v, ok := f.Get(); ok && !v.Valid() {
		return invalidVisibility()
	}
	return nil
}
