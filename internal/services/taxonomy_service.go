package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/backoffice-api/internal/models"
	"github.com/yukikurage/backoffice-api/internal/repository"
)

// TaxonomyService manages categories and tags shared by LMS and blog
// instances.
type TaxonomyService struct {
	repos *repository.Repositories
}

// NewTaxonomyService creates a new TaxonomyService.
func NewTaxonomyService(repos *repository.Repositories) *TaxonomyService {
	return &TaxonomyService{repos: repos}
}

// CreateCategoryInput represents parameters to create a category. Either
// instance reference may be nil.
type CreateCategoryInput struct {
	Name           string
	Slug           string
	Description    *string
	LmsInstanceID  *uint64
	BlogInstanceID *uint64
}

// CreateTagInput represents parameters to create a tag.
type CreateTagInput struct {
	Name           string
	Slug           string
	LmsInstanceID  *uint64
	BlogInstanceID *uint64
}

// CreateCategory creates a category after checking each instance it
// references.
func (s *TaxonomyService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*models.Category, error) {
	if err := validateTerm(input.Name, input.Slug); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:           input.Name,
		Slug:           input.Slug,
		Description:    input.Description,
		LmsInstanceID:  input.LmsInstanceID,
		BlogInstanceID: input.BlogInstanceID,
	}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := ensureOwners(ctx, tx, input.LmsInstanceID, input.BlogInstanceID); err != nil {
			return err
		}
		if err := tx.Taxonomy.CreateCategory(ctx, category); err != nil {
			return writeError("create", "category", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns the categories matching every set filter field.
func (s *TaxonomyService) ListCategories(ctx context.Context, filter repository.TaxonomyFilter) ([]models.Category, error) {
	categories, err := s.repos.Taxonomy.ListCategories(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateTag creates a tag after checking each instance it references.
func (s *TaxonomyService) CreateTag(ctx context.Context, input CreateTagInput) (*models.Tag, error) {
	if err := validateTerm(input.Name, input.Slug); err != nil {
		return nil, err
	}

	tag := &models.Tag{
		Name:           input.Name,
		Slug:           input.Slug,
		LmsInstanceID:  input.LmsInstanceID,
		BlogInstanceID: input.BlogInstanceID,
	}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := ensureOwners(ctx, tx, input.LmsInstanceID, input.BlogInstanceID); err != nil {
			return err
		}
		if err := tx.Taxonomy.CreateTag(ctx, tag); err != nil {
			return writeError("create", "tag", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// ListTags returns the tags matching every set filter field.
func (s *TaxonomyService) ListTags(ctx context.Context, filter repository.TaxonomyFilter) ([]models.Tag, error) {
	tags, err := s.repos.Taxonomy.ListTags(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

func validateTerm(name, slug string) error {
	if name == "" {
		return invalid("name", "is required")
	}
	if slug == "" {
		return invalid("slug", "is required")
	}
	return nil
}

func ensureOwners(ctx context.Context, tx *repository.Repositories, lmsInstanceID, blogInstanceID *uint64) error {
	if lmsInstanceID != nil {
		if _, err := ensureExists(ctx, "lms instance", *lmsInstanceID, tx.Lms.FindInstanceByID); err != nil {
			return err
		}
	}
	if blogInstanceID != nil {
		if _, err := ensureExists(ctx, "blog instance", *blogInstanceID, tx.Blog.FindInstanceByID); err != nil {
			return err
		}
	}
	return nil
}
