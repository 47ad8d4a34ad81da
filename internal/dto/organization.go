package dto

import (
	"time"

	"github.com/yukikurage/backoffice-api/internal/models"
	"github.com/yukikurage/backoffice-api/internal/optional"
)

// CreateOrganizationRequest is the input of createOrganization
type CreateOrganizationRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Slug        string  `json:"slug" binding:"required,max=255"`
	Description *string `json:"description"`
}

// UpdateOrganizationRequest is the input of updateOrganization. Omitted keys
// leave the stored value untouched.
type UpdateOrganizationRequest struct {
	ID          uint64                 `json:"id" binding:"required"`
	Name        optional.Field[string] `json:"name"`
	Slug        optional.Field[string] `json:"slug"`
	Description optional.Field[string] `json:"description"`
}

// CreateUserRequest is the input of createUser
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Name     string `json:"name" binding:"required,max=255"`
	Password string `json:"password" binding:"required,min=6"`
}

// CreateOrganizationUserRequest is the input of createOrganizationUser
type CreateOrganizationUserRequest struct {
	OrganizationID uint64                  `json:"organization_id" binding:"required"`
	UserID         uint64                  `json:"user_id" binding:"required"`
	Role           models.OrganizationRole `json:"role" binding:"required,org_role"`
}

// OrganizationQuery selects the children of one organization
type OrganizationQuery struct {
	OrganizationID uint64 `json:"organizationId" binding:"required"`
}

// UserDTO represents a user in API responses. The password hash is never
// exposed.
type UserDTO struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
