package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/backoffice-api/internal/dto"
	"github.com/yukikurage/backoffice-api/internal/services"
)

type OrganizationHandler struct {
	service *services.OrganizationService
}

func NewOrganizationHandler(service *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization creates a new organization
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if !bindInput(c, &req) {
		return
	}

	org, err := h.service.CreateOrganization(c.Request.Context(), services.CreateOrganizationInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, org)
}

// ListOrganizations returns every organization
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.service.ListOrganizations(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// UpdateOrganization applies a partial update
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	var req dto.UpdateOrganizationRequest
	if !bindInput(c, &req) {
		return
	}

	org, err := h.service.UpdateOrganization(c.Request.Context(), services.UpdateOrganizationInput{
		ID:          req.ID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

// CreateOrganizationUser adds a user to an organization with a role
func (h *OrganizationHandler) CreateOrganizationUser(c *gin.Context) {
	var req dto.CreateOrganizationUserRequest
	if !bindInput(c, &req) {
		return
	}

	member, err := h.service.CreateOrganizationUser(c.Request.Context(), services.CreateOrganizationUserInput{
		OrganizationID: req.OrganizationID,
		UserID:         req.UserID,
		Role:           req.Role,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ListOrganizationUsers returns the memberships of an organization
func (h *OrganizationHandler) ListOrganizationUsers(c *gin.Context) {
	var req dto.OrganizationQuery
	if !bindInput(c, &req) {
		return
	}

	members, err := h.service.ListOrganizationUsers(c.Request.Context(), req.OrganizationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}
