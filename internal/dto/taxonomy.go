package dto

import (
	"time"

	"github.com/yukikurage/backoffice-api/internal/models"
)

// CreateCategoryRequest is the input of createCategory
type CreateCategoryRequest struct {
	Name           string  `json:"name" binding:"required,max=255"`
	Slug           string  `json:"slug" binding:"required,max=255"`
	Description    *string `json:"description"`
	LmsInstanceID  *uint64 `json:"lms_instance_id"`
	BlogInstanceID *uint64 `json:"blog_instance_id"`
}

// CreateTagRequest is the input of createTag
type CreateTagRequest struct {
	Name           string  `json:"name" binding:"required,max=255"`
	Slug           string  `json:"slug" binding:"required,max=255"`
	LmsInstanceID  *uint64 `json:"lms_instance_id"`
	BlogInstanceID *uint64 `json:"blog_instance_id"`
}

// TaxonomyQuery filters getCategories and getTags. Both filters apply
// together when both are set.
type TaxonomyQuery struct {
	LmsInstanceID  *uint64 `json:"lmsInstanceId"`
	BlogInstanceID *uint64 `json:"blogInstanceId"`
}

// CategoryDTO represents a category in API responses
type CategoryDTO struct {
	ID             uint64               `json:"id"`
	Name           string               `json:"name"`
	Slug           string               `json:"slug"`
	Description    *string              `json:"description"`
	LmsInstanceID  *uint64              `json:"lms_instance_id"`
	BlogInstanceID *uint64              `json:"blog_instance_id"`
	Owner          models.TaxonomyOwner `json:"owner"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// TagDTO represents a tag in API responses
type TagDTO struct {
	ID             uint64               `json:"id"`
	Name           string               `json:"name"`
	Slug           string               `json:"slug"`
	LmsInstanceID  *uint64              `json:"lms_instance_id"`
	BlogInstanceID *uint64              `json:"blog_instance_id"`
	Owner          models.TaxonomyOwner `json:"owner"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func ToCategoryDTO(category models.Category) CategoryDTO {
	return CategoryDTO{
		ID:             category.ID,
		Name:           category.Name,
		Slug:           category.Slug,
		Description:    category.Description,
		LmsInstanceID:  category.LmsInstanceID,
		BlogInstanceID: category.BlogInstanceID,
		Owner:          category.Owner(),
		CreatedAt:      category.CreatedAt,
		UpdatedAt:      category.UpdatedAt,
	}
}

func ToCategoryDTOs(categories []models.Category) []CategoryDTO {
	dtos := make([]CategoryDTO, len(categories))
	for i, category := range categories {
		dtos[i] = ToCategoryDTO(category)
	}
	return dtos
}

func ToTagDTO(tag models.Tag) TagDTO {
	return TagDTO{
		ID:             tag.ID,
		Name:           tag.Name,
		Slug:           tag.Slug,
		LmsInstanceID:  tag.LmsInstanceID,
		BlogInstanceID: tag.BlogInstanceID,
		Owner:          tag.Owner(),
		CreatedAt:      tag.CreatedAt,
		UpdatedAt:      tag.UpdatedAt,
	}
}

func ToTagDTOs(tags []models.Tag) []TagDTO {
	dtos := make([]TagDTO, len(tags))
	for i, tag := range tags {
		dtos[i] = ToTagDTO(tag)
	}
	return dtos
}
