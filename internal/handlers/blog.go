package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/backoffice-api/internal/dto"
	"github.com/yukikurage/backoffice-api/internal/services"
)

type BlogHandler struct {
	service *services.BlogService
	now     func() time.Time
}

func NewBlogHandler(service *services.BlogService) *BlogHandler {
	return &BlogHandler{service: service, now: time.Now}
}

func (h *BlogHandler) CreateBlogInstance(c *gin.Context) {
	var req dto.CreateInstanceRequest
	if !bindInput(c, &req) {
		return
	}

	instance, err := h.service.CreateBlogInstance(c.Request.Context(), services.CreateInstanceInput{
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

func (h *BlogHandler) ListBlogInstances(c *gin.Context) {
	var req dto.OrganizationQuery
	if !bindInput(c, &req) {
		return
	}

	instances, err := h.service.ListBlogInstances(c.Request.Context(), req.OrganizationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, instances)
}

// CreateBlogPost creates a post. created_by defaults to the caller.
func (h *BlogHandler) CreateBlogPost(c *gin.Context) {
	var req dto.CreateBlogPostRequest
	if !bindInput(c, &req) {
		return
	}
	createdBy, ok := resolveCreator(c, req.CreatedBy)
	if !ok {
		return
	}

	post, err := h.service.CreateBlogPost(c.Request.Context(), services.CreateBlogPostInput{
		BlogInstanceID: req.BlogInstanceID,
		Title:          req.Title,
		Slug:           req.Slug,
		Content:        req.Content,
		Excerpt:        req.Excerpt,
		Visibility:     req.Visibility,
		CreatedBy:      createdBy,
		PublishedAt:    req.PublishedAt,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBlogPostDTO(*post, h.now()))
}

// ListBlogPosts returns the posts of an instance, newest first
func (h *BlogHandler) ListBlogPosts(c *gin.Context) {
	var req dto.BlogInstanceQuery
	if !bindInput(c, &req) {
		return
	}

	posts, err := h.service.ListBlogPosts(c.Request.Context(), req.BlogInstanceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBlogPostDTOs(posts, h.now()))
}

// UpdateBlogPost applies a partial update
func (h *BlogHandler) UpdateBlogPost(c *gin.Context) {
	var req dto.UpdateBlogPostRequest
	if !bindInput(c, &req) {
		return
	}

	post, err := h.service.UpdateBlogPost(c.Request.Context(), services.UpdateBlogPostInput{
		ID:          req.ID,
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Visibility:  req.Visibility,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBlogPostDTO(*post, h.now()))
}
