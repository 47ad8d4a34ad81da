package dto

import (
	"time"

	"github.com/yukikurage/backoffice-api/internal/models"
	"github.com/yukikurage/backoffice-api/internal/optional"
)

// CreateBlogPostRequest is the input of createBlogPost
type CreateBlogPostRequest struct {
	BlogInstanceID uint64            `json:"blog_instance_id" binding:"required"`
	Title          string            `json:"title" binding:"required,max=255"`
	Slug           string            `json:"slug" binding:"required,max=255"`
	Content        *string           `json:"content"`
	Excerpt        *string           `json:"excerpt"`
	Visibility     models.Visibility `json:"visibility" binding:"required,visibility"`
	CreatedBy      *uint64           `json:"created_by"`
	PublishedAt    *time.Time        `json:"published_at"`
}

// UpdateBlogPostRequest is the input of updateBlogPost
type UpdateBlogPostRequest struct {
	ID          uint64                            `json:"id" binding:"required"`
	Title       optional.Field[string]            `json:"title"`
	Slug        optional.Field[string]            `json:"slug"`
	Content     optional.Field[string]            `json:"content"`
	Excerpt     optional.Field[string]            `json:"excerpt"`
	Visibility  optional.Field[models.Visibility] `json:"visibility"`
	PublishedAt optional.Field[time.Time]         `json:"published_at"`
}

type BlogInstanceQuery struct {
	BlogInstanceID uint64 `json:"blogInstanceId" binding:"required"`
}

// BlogPostDTO represents a post in API responses, including its publication
// status at response time
type BlogPostDTO struct {
	ID             uint64            `json:"id"`
	BlogInstanceID uint64            `json:"blog_instance_id"`
	Title          string            `json:"title"`
	Slug           string            `json:"slug"`
	Content        *string           `json:"content"`
	Excerpt        *string           `json:"excerpt"`
	Visibility     models.Visibility `json:"visibility"`
	CreatedBy      uint64            `json:"created_by"`
	PublishedAt    *time.Time        `json:"published_at"`
	Status         models.PostStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ToBlogPostDTO converts a BlogPost model to BlogPostDTO
func ToBlogPostDTO(post models.BlogPost, now time.Time) BlogPostDTO {
	return BlogPostDTO{
		ID:             post.ID,
		BlogInstanceID: post.BlogInstanceID,
		Title:          post.Title,
		Slug:           post.Slug,
		Content:        post.Content,
		Excerpt:        post.Excerpt,
		Visibility:     post.Visibility,
		CreatedBy:      post.CreatedBy,
		PublishedAt:    post.PublishedAt,
		Status:         post.Status(now),
		CreatedAt:      post.CreatedAt,
		UpdatedAt:      post.UpdatedAt,
	}
}

// ToBlogPostDTOs converts a list of posts, keeping an empty list non-nil
func ToBlogPostDTOs(posts []models.BlogPost, now time.Time) []BlogPostDTO {
	dtos := make([]BlogPostDTO, len(posts))
	for i, post := range posts {
		dtos[i] = ToBlogPostDTO(post, now)
	}
	return dtos
}
