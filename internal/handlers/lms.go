package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/backoffice-api/internal/dto"
	"github.com/yukikurage/backoffice-api/internal/services"
)

type LmsHandler struct {
	service *services.LmsService
}

func NewLmsHandler(service *services.LmsService) *LmsHandler {
	return &LmsHandler{service: service}
}

func (h *LmsHandler) CreateLmsInstance(c *gin.Context) {
	var req dto.CreateInstanceRequest
	if !bindInput(c, &req) {
		return
	}

	instance, err := h.service.CreateLmsInstance(c.Request.Context(), services.CreateInstanceInput{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Slug:           req.Slug,
		Description:    req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, instance)
}

func (h *LmsHandler) ListLmsInstances(c *gin.Context) {
	var req dto.OrganizationQuery
	if !bindInput(c, &req) {
		return
	}

	instances, err := h.service.ListLmsInstances(c.Request.Context(), req.OrganizationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, instances)
}

// CreateCourse creates a course. created_by defaults to the caller.
func (h *LmsHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if !bindInput(c, &req) {
		return
	}
	createdBy, ok := resolveCreator(c, req.CreatedBy)
	if !ok {
		return
	}

	course, err := h.service.CreateCourse(c.Request.Context(), services.CreateCourseInput{
		LmsInstanceID: req.LmsInstanceID,
		Title:         req.Title,
		Slug:          req.Slug,
		Description:   req.Description,
		Content:       req.Content,
		Visibility:    req.Visibility,
		CreatedBy:     createdBy,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, course)
}

func (h *LmsHandler) ListCourses(c *gin.Context) {
	var req dto.LmsInstanceQuery
	if !bindInput(c, &req) {
		return
	}

	courses, err := h.service.ListCourses(c.Request.Context(), req.LmsInstanceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

// UpdateCourse applies a partial update
func (h *LmsHandler) UpdateCourse(c *gin.Context) {
	var req dto.UpdateCourseRequest
	if !bindInput(c, &req) {
		return
	}

	course, err := h.service.UpdateCourse(c.Request.Context(), services.UpdateCourseInput{
		ID:          req.ID,
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Content:     req.Content,
		Visibility:  req.Visibility,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *LmsHandler) CreateModule(c *gin.Context) {
	var req dto.CreateModuleRequest
	if !bindInput(c, &req) {
		return
	}

	module, err := h.service.CreateModule(c.Request.Context(), services.CreateModuleInput{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, module)
}

func (h *LmsHandler) ListModules(c *gin.Context) {
	var req dto.CourseQuery
	if !bindInput(c, &req) {
		return
	}

	modules, err := h.service.ListModules(c.Request.Context(), req.CourseID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, modules)
}

func (h *LmsHandler) CreateLesson(c *gin.Context) {
	var req dto.CreateLessonRequest
	if !bindInput(c, &req) {
		return
	}

	lesson, err := h.service.CreateLesson(c.Request.Context(), services.CreateLessonInput{
		ModuleID:   req.ModuleID,
		Title:      req.Title,
		Slug:       req.Slug,
		Content:    req.Content,
		OrderIndex: req.OrderIndex,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lesson)
}

func (h *LmsHandler) ListLessons(c *gin.Context) {
	var req dto.ModuleQuery
	if !bindInput(c, &req) {
		return
	}

	lessons, err := h.service.ListLessons(c.Request.Context(), req.ModuleID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lessons)
}
