package repository

import (
	"context"

	"github.com/yukikurage/backoffice-api/internal/models"
	"gorm.io/gorm"
)

// GormBlogRepository is a GORM implementation of BlogRepository
type GormBlogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new BlogRepository
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &GormBlogRepository{db: db}
}

func (r *GormBlogRepository) CreateInstance(ctx context.Context, instance *models.BlogInstance) error {
	return create(ctx, r.db, instance)
}

func (r *GormBlogRepository) FindInstanceByID(ctx context.Context, id uint64) (*models.BlogInstance, error) {
	return findByID[models.BlogInstance](ctx, r.db, id, false)
}

func (r *GormBlogRepository) ListInstances(ctx context.Context, organizationID uint64) ([]models.BlogInstance, error) {
	instances := []models.BlogInstance{}
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("id ASC").
		Find(&instances).Error; err != nil {
		return nil, err
	}
	return instances, nil
}

func (r *GormBlogRepository) CreatePost(ctx context.Context, post *models.BlogPost) error {
	return create(ctx, r.db, post)
}

func (r *GormBlogRepository) FindPostByID(ctx context.Context, id uint64) (*models.BlogPost, error) {
	return findByID[models.BlogPost](ctx, r.db, id, false)
}

func (r *GormBlogRepository) ListPosts(ctx context.Context, blogInstanceID uint64) ([]models.BlogPost, error) {
	posts := []models.BlogPost{}
	if err := r.db.WithContext(ctx).
		Where("blog_instance_id = ?", blogInstanceID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *GormBlogRepository) UpdatePost(ctx context.Context, post *models.BlogPost) error {
	return save(ctx, r.db, post)
}
