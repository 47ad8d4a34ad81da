package dto

import (
	"github.com/yukikurage/backoffice-api/internal/models"
	"github.com/yukikurage/backoffice-api/internal/optional"
)

// CreateInstanceRequest is the input of createLmsInstance and
// createBlogInstance
type CreateInstanceRequest struct {
	OrganizationID uint64  `json:"organization_id" binding:"required"`
	Name           string  `json:"name" binding:"required,max=255"`
	Slug           string  `json:"slug" binding:"required,max=255"`
	Description    *string `json:"description"`
}

// CreateCourseRequest is the input of createCourse. CreatedBy falls back to
// the calling actor when omitted.
type CreateCourseRequest struct {
	LmsInstanceID uint64            `json:"lms_instance_id" binding:"required"`
	Title         string            `json:"title" binding:"required,max=255"`
	Slug          string            `json:"slug" binding:"required,max=255"`
	Description   *string           `json:"description"`
	Content       *string           `json:"content"`
	Visibility    models.Visibility `json:"visibility" binding:"required,visibility"`
	CreatedBy     *uint64           `json:"created_by"`
}

// UpdateCourseRequest is the input of updateCourse
type UpdateCourseRequest struct {
	ID          uint64                            `json:"id" binding:"required"`
	Title       optional.Field[string]            `json:"title"`
	Slug        optional.Field[string]            `json:"slug"`
	Description optional.Field[string]            `json:"description"`
	Content     optional.Field[string]            `json:"content"`
	Visibility  optional.Field[models.Visibility] `json:"visibility"`
}

// CreateModuleRequest is the input of createModule. A missing order_index
// appends the module after its siblings.
type CreateModuleRequest struct {
	CourseID    uint64  `json:"course_id" binding:"required"`
	Title       string  `json:"title" binding:"required,max=255"`
	Slug        string  `json:"slug" binding:"required,max=255"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index" binding:"omitempty,min=0"`
}

// CreateLessonRequest is the input of createLesson
type CreateLessonRequest struct {
	ModuleID   uint64  `json:"module_id" binding:"required"`
	Title      string  `json:"title" binding:"required,max=255"`
	Slug       string  `json:"slug" binding:"required,max=255"`
	Content    *string `json:"content"`
	OrderIndex *int    `json:"order_index" binding:"omitempty,min=0"`
}

type LmsInstanceQuery struct {
	LmsInstanceID uint64 `json:"lmsInstanceId" binding:"required"`
}

type CourseQuery struct {
	CourseID uint64 `json:"courseId" binding:"required"`
}

type ModuleQuery struct {
	ModuleID uint64 `json:"moduleId" binding:"required"`
}
