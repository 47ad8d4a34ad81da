package repository

import (
	"context"

	"github.com/yukikurage/backoffice-api/internal/models"
	"gorm.io/gorm"
)

// GormTaxonomyRepository is a GORM implementation of TaxonomyRepository
type GormTaxonomyRepository struct {
	db *gorm.DB
}

// NewTaxonomyRepository creates a new TaxonomyRepository
func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &GormTaxonomyRepository{db: db}
}

func (r *GormTaxonomyRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	return create(ctx, r.db, category)
}

func (r *GormTaxonomyRepository) ListCategories(ctx context.Context, filter TaxonomyFilter) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.filtered(ctx, filter).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormTaxonomyRepository) CreateTag(ctx context.Context, tag *models.Tag) error {
	return create(ctx, r.db, tag)
}

func (r *GormTaxonomyRepository) ListTags(ctx context.Context, filter TaxonomyFilter) ([]models.Tag, error) {
	tags := []models.Tag{}
	if err := r.filtered(ctx, filter).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *GormTaxonomyRepository) filtered(ctx context.Context, filter TaxonomyFilter) *gorm.DB {
	query := r.db.WithContext(ctx)
	if filter.LmsInstanceID != nil {
		query = query.Where("lms_instance_id = ?", *filter.LmsInstanceID)
	}
	if filter.BlogInstanceID != nil {
		query = query.Where("blog_instance_id = ?", *filter.BlogInstanceID)
	}
	return query.Order("id ASC")
}
