package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/backoffice-api/internal/models"
	"github.com/yukikurage/backoffice-api/internal/optional"
	"github.com/yukikurage/backoffice-api/internal/repository"
	"gorm.io/gorm"
)

// OrganizationService provides business logic for organizations and team
// membership.
type OrganizationService struct {
	repos *repository.Repositories
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(repos *repository.Repositories) *OrganizationService {
	return &OrganizationService{repos: repos}
}

// CreateOrganizationInput represents parameters to create a new organization.
type CreateOrganizationInput struct {
	Name        string
	Slug        string
	Description *string
}

// CreateOrganization creates a new organization with a unique slug.
func (s *OrganizationService) CreateOrganization(ctx context.Context, input CreateOrganizationInput) (*models.Organization, error) {
	if input.Name == "" {
		return nil, invalid("name", "is required")
	}
	if input.Slug == "" {
		return nil, invalid("slug", "is required")
	}

	org := &models.Organization{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
	}

	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := ensureSlugAvailable(ctx, tx, input.Slug, 0); err != nil {
			return err
		}
		if err := tx.Organizations.Create(ctx, org); err != nil {
			return writeError("create", "organization", err, slugTaken(input.Slug))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return org, nil
}

// ListOrganizations returns every organization.
func (s *OrganizationService) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	orgs, err := s.repos.Organizations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return orgs, nil
}

// UpdateOrganizationInput carries a sparse set of changes.
type UpdateOrganizationInput struct {
	ID          uint64
	Name        optional.Field[string]
	Slug        optional.Field[string]
	Description optional.Field[string]
}

// UpdateOrganization merges the provided fields over the stored row.
func (s *OrganizationService) UpdateOrganization(ctx context.Context, input UpdateOrganizationInput) (*models.Organization, error) {
	if err := requireNonEmpty("name", input.Name); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("slug", input.Slug); err != nil {
		return nil, err
	}

	var org *models.Organization
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		var err error
		org, err = ensureExists(ctx, "organization", input.ID, tx.Organizations.FindByIDForUpdate)
		if err != nil {
			return err
		}

		if slug, ok := input.Slug.Get(); ok && slug != org.Slug {
			if err := ensureSlugAvailable(ctx, tx, slug, org.ID); err != nil {
				return err
			}
		}

		input.Name.Apply(&org.Name)
		input.Slug.Apply(&org.Slug)
		input.Description.ApplyNullable(&org.Description)

		if err := tx.Organizations.Update(ctx, org); err != nil {
			return writeError("update", "organization", err, slugTaken(org.Slug))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return org, nil
}

// CreateOrganizationUserInput represents a new membership.
type CreateOrganizationUserInput struct {
	OrganizationID uint64
	UserID         uint64
	Role           models.OrganizationRole
}

// CreateOrganizationUser adds a user to an organization. Checks run in order
// (organization, user, existing membership) and stop at the first failure.
// The organization row stays locked until the insert commits.
func (s *OrganizationService) CreateOrganizationUser(ctx context.Context, input CreateOrganizationUserInput) (*models.OrganizationUser, error) {
	if !input.Role.Valid() {
		return nil, invalid("role", "must be one of owner, admin, member, viewer")
	}

	member := &models.OrganizationUser{
		OrganizationID: input.OrganizationID,
		UserID:         input.UserID,
		Role:           input.Role,
	}

	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := ensureExists(ctx, "organization", input.OrganizationID, tx.Organizations.FindByIDForUpdate); err != nil {
			return err
		}
		if _, err := ensureExists(ctx, "user", input.UserID, tx.Users.FindByID); err != nil {
			return err
		}

		if _, err := tx.Organizations.FindMember(ctx, input.OrganizationID, input.UserID); err == nil {
			return ErrDuplicateMembership
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to verify membership: %w", err)
		}

		if err := tx.Organizations.AddMember(ctx, member); err != nil {
			return writeError("add", "organization member", err, ErrDuplicateMembership)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// ListOrganizationUsers returns the memberships of an organization.
func (s *OrganizationService) ListOrganizationUsers(ctx context.Context, organizationID uint64) ([]models.OrganizationUser, error) {
	members, err := s.repos.Organizations.ListMembers(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization members: %w", err)
	}
	return members, nil
}

func ensureSlugAvailable(ctx context.Context, tx *repository.Repositories, slug string, selfID uint64) error {
	existing, err := tx.Organizations.FindBySlug(ctx, slug)
	switch {
	case err == nil && existing.ID != selfID:
		return slugTaken(slug)
	case err == nil, errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return fmt.Errorf("failed to check slug: %w", err)
	}
}

func slugTaken(slug string) error {
	return &UniquenessError{Entity: "organization", Field: "slug", Value: slug}
}

// requireNonEmpty rejects null or empty values for non-nullable text fields.
func requireNonEmpty(field string, f optional.Field[string]) error {
	if f.IsNull() {
		return invalid(field, "cannot be null")
	}
	if v, ok := f.Get(); ok && v == "" {
		return invalid(field, "cannot be empty")
	}
	return nil
}
