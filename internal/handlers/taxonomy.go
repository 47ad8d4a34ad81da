package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/backoffice-api/internal/dto"
	"github.com/yukikurage/backoffice-api/internal/repository"
	"github.com/yukikurage/backoffice-api/internal/services"
)

type TaxonomyHandler struct {
	service *services.TaxonomyService
}

func NewTaxonomyHandler(service *services.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{service: service}
}

func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindInput(c, &req) {
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), services.CreateCategoryInput{
		Name:           req.Name,
		Slug:           req.Slug,
		Description:    req.Description,
		LmsInstanceID:  req.LmsInstanceID,
		BlogInstanceID: req.BlogInstanceID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryDTO(*category))
}

func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	var req dto.TaxonomyQuery
	if !bindInput(c, &req) {
		return
	}

	categories, err := h.service.ListCategories(c.Request.Context(), taxonomyFilter(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryDTOs(categories))
}

func (h *TaxonomyHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if !bindInput(c, &req) {
		return
	}

	tag, err := h.service.CreateTag(c.Request.Context(), services.CreateTagInput{
		Name:           req.Name,
		Slug:           req.Slug,
		LmsInstanceID:  req.LmsInstanceID,
		BlogInstanceID: req.BlogInstanceID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTagDTO(*tag))
}

func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	var req dto.TaxonomyQuery
	if !bindInput(c, &req) {
		return
	}

	tags, err := h.service.ListTags(c.Request.Context(), taxonomyFilter(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTagDTOs(tags))
}

func taxonomyFilter(req dto.TaxonomyQuery) repository.TaxonomyFilter {
	return repository.TaxonomyFilter{
		LmsInstanceID:  req.LmsInstanceID,
		BlogInstanceID: req.BlogInstanceID,
	}
}
