package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yukikurage/backoffice-api/internal/models"
	"github.com/yukikurage/backoffice-api/internal/optional"
	"github.com/yukikurage/backoffice-api/internal/repository"
)

// BlogService manages blog instances and posts.
type BlogService struct {
	repos *repository.Repositories
}

// NewBlogService creates a new BlogService.
func NewBlogService(repos *repository.Repositories) *BlogService {
	return &BlogService{repos: repos}
}

// CreateBlogInstance creates a blog instance inside an organization.
func (s *BlogService) CreateBlogInstance(ctx context.Context, input CreateInstanceInput) (*models.BlogInstance, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	instance := &models.BlogInstance{
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		Slug:           input.Slug,
		Description:    input.Description,
	}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := ensureExists(ctx, "organization", input.OrganizationID, tx.Organizations.FindByIDForUpdate); err != nil {
			return err
		}
		if err := tx.Blog.CreateInstance(ctx, instance); err != nil {
			return writeError("create", "blog instance", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// ListBlogInstances returns the blog instances of an organization.
func (s *BlogService) ListBlogInstances(ctx context.Context, organizationID uint64) ([]models.BlogInstance, error) {
	instances, err := s.repos.Blog.ListInstances(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog instances: %w", err)
	}
	return instances, nil
}

// CreateBlogPostInput represents parameters to create a post. A nil
// PublishedAt creates a draft.
type CreateBlogPostInput struct {
	BlogInstanceID uint64
	Title          string
	Slug           string
	Content        *string
	Excerpt        *string
	Visibility     models.Visibility
	CreatedBy      uint64
	PublishedAt    *time.Time
}

// CreateBlogPost creates a post after checking the instance and the creator.
func (s *BlogService) CreateBlogPost(ctx context.Context, input CreateBlogPostInput) (*models.BlogPost, error) {
	if input.Title == "" {
		return nil, invalid("title", "is required")
	}
	if input.Slug == "" {
		return nil, invalid("slug", "is required")
	}
	if !input.Visibility.Valid() {
		return nil, invalidVisibility()
	}

	post := &models.BlogPost{
		BlogInstanceID: input.BlogInstanceID,
		Title:          input.Title,
		Slug:           input.Slug,
		Content:        input.Content,
		Excerpt:        input.Excerpt,
		Visibility:     input.Visibility,
		CreatedBy:      input.CreatedBy,
		PublishedAt:    input.PublishedAt,
	}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := ensureExists(ctx, "blog instance", input.BlogInstanceID, tx.Blog.FindInstanceByID); err != nil {
			return err
		}
		if _, err := ensureExists(ctx, "user", input.CreatedBy, tx.Users.FindByID); err != nil {
			return err
		}
		if err := tx.Blog.CreatePost(ctx, post); err != nil {
			return writeError("create", "blog post", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ListBlogPosts returns the posts of a blog instance, newest first.
func (s *BlogService) ListBlogPosts(ctx context.Context, blogInstanceID uint64) ([]models.BlogPost, error) {
	posts, err := s.repos.Blog.ListPosts(ctx, blogInstanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

// UpdateBlogPostInput carries a sparse set of post changes. Setting
// PublishedAt to null returns the post to draft.
type UpdateBlogPostInput struct {
	ID          uint64
	Title       optional.Field[string]
	Slug        optional.Field[string]
	Content     optional.Field[string]
	Excerpt     optional.Field[string]
	Visibility  optional.Field[models.Visibility]
	PublishedAt optional.Field[time.Time]
}

// UpdateBlogPost merges the provided fields over the stored post.
func (s *BlogService) UpdateBlogPost(ctx context.Context, input UpdateBlogPostInput) (*models.BlogPost, error) {
	if err := requireNonEmpty("title", input.Title); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("slug", input.Slug); err != nil {
		return nil, err
	}
	if err := checkVisibility(input.Visibility); err != nil {
		return nil, err
	}

	var post *models.BlogPost
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		var err error
		post, err = ensureExists(ctx, "blog post", input.ID, tx.Blog.FindPostByID)
		if err != nil {
			return err
		}

		input.Title.Apply(&post.Title)
		input.Slug.Apply(&post.Slug)
		input.Content.ApplyNullable(&post.Content)
		input.Excerpt.ApplyNullable(&post.Excerpt)
		input.Visibility.Apply(&post.Visibility)
		input.PublishedAt.ApplyNullable(&post.PublishedAt)

		if err := tx.Blog.UpdatePost(ctx, post); err != nil {
			return writeError("update", "blog post", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}
