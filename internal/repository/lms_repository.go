package repository

import (
	"context"

	"github.com/yukikurage/backoffice-api/internal/models"
	"gorm.io/gorm"
)

// GormLmsRepository is a GORM implementation of LmsRepository
type GormLmsRepository struct {
	db *gorm.DB
}

// NewLmsRepository creates a new LmsRepository
func NewLmsRepository(db *gorm.DB) LmsRepository {
	return &GormLmsRepository{db: db}
}

func (r *GormLmsRepository) CreateInstance(ctx context.Context, instance *models.LmsInstance) error {
	return create(ctx, r.db, instance)
}

func (r *GormLmsRepository) FindInstanceByID(ctx context.Context, id uint64) (*models.LmsInstance, error) {
	return findByID[models.LmsInstance](ctx, r.db, id, false)
}

func (r *GormLmsRepository) ListInstances(ctx context.Context, organizationID uint64) ([]models.LmsInstance, error) {
	instances := []models.LmsInstance{}
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("id ASC").
		Find(&instances).Error; err != nil {
		return nil, err
	}
	return instances, nil
}

func (r *GormLmsRepository) CreateCourse(ctx context.Context, course *models.Course) error {
	return create(ctx, r.db, course)
}

func (r *GormLmsRepository) FindCourseByID(ctx context.Context, id uint64) (*models.Course, error) {
	return findByID[models.Course](ctx, r.db, id, false)
}

func (r *GormLmsRepository) FindCourseByIDForUpdate(ctx context.Context, id uint64) (*models.Course, error) {
	return findByID[models.Course](ctx, r.db, id, true)
}

func (r *GormLmsRepository) ListCourses(ctx context.Context, lmsInstanceID uint64) ([]models.Course, error) {
	courses := []models.Course{}
	if err := r.db.WithContext(ctx).
		Where("lms_instance_id = ?", lmsInstanceID).
		Order("id ASC").
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *GormLmsRepository) UpdateCourse(ctx context.Context, course *models.Course) error {
	return save(ctx, r.db, course)
}

func (r *GormLmsRepository) CreateModule(ctx context.Context, module *models.Module) error {
	return create(ctx, r.db, module)
}

func (r *GormLmsRepository) FindModuleByIDForUpdate(ctx context.Context, id uint64) (*models.Module, error) {
	return findByID[models.Module](ctx, r.db, id, true)
}

func (r *GormLmsRepository) ListModules(ctx context.Context, courseID uint64) ([]models.Module, error) {
	modules := []models.Module{}
	if err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("order_index ASC").
		Order("id ASC").
		Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *GormLmsRepository) NextModuleIndex(ctx context.Context, courseID uint64) (int, error) {
	return nextOrderIndex(ctx, r.db, &models.Module{}, "course_id", courseID)
}

func (r *GormLmsRepository) CreateLesson(ctx context.Context, lesson *models.Lesson) error {
	return create(ctx, r.db, lesson)
}

func (r *GormLmsRepository) ListLessons(ctx context.Context, moduleID uint64) ([]models.Lesson, error) {
	lessons := []models.Lesson{}
	if err := r.db.WithContext(ctx).
		Where("module_id = ?", moduleID).
		Order("order_index ASC").
		Order("id ASC").
		Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *GormLmsRepository) NextLessonIndex(ctx context.Context, moduleID uint64) (int, error) {
	return nextOrderIndex(ctx, r.db, &models.Lesson{}, "module_id", moduleID)
}

// nextOrderIndex computes the index that appends after the last sibling.
// Callers hold a lock on the parent row so concurrent appends serialize.
func nextOrderIndex(ctx context.Context, db *gorm.DB, model interface{}, parentColumn string, parentID uint64) (int, error) {
	var next int
	err := db.WithContext(ctx).
		Model(model).
		Select("COALESCE(MAX(order_index) + 1, 0)").
		Where(parentColumn+" = ?", parentID).
		Scan(&next).Error
	return next, err
}
