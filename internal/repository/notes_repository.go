package repository

import (
	"context"

	"github.com/yukikurage/backoffice-api/internal/models"
	"gorm.io/gorm"
)

// GormNotesRepository is a GORM implementation of NotesRepository
type GormNotesRepository struct {
	db *gorm.DB
}

// NewNotesRepository creates a new NotesRepository
func NewNotesRepository(db *gorm.DB) NotesRepository {
	return &GormNotesRepository{db: db}
}

func (r *GormNotesRepository) CreateFolder(ctx context.Context, folder *models.NotesFolder) error {
	return create(ctx, r.db, folder)
}

func (r *GormNotesRepository) FindFolderByID(ctx context.Context, id uint64) (*models.NotesFolder, error) {
	return findByID[models.NotesFolder](ctx, r.db, id, false)
}

func (r *GormNotesRepository) ListFolders(ctx context.Context, organizationID uint64, parentID *uint64) ([]models.NotesFolder, error) {
	query := r.db.WithContext(ctx).Where("organization_id = ?", organizationID)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	folders := []models.NotesFolder{}
	if err := query.Order("id ASC").Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *GormNotesRepository) CreateNote(ctx context.Context, note *models.Note) error {
	return create(ctx, r.db, note)
}

func (r *GormNotesRepository) FindNoteByID(ctx context.Context, id uint64) (*models.Note, error) {
	return findByID[models.Note](ctx, r.db, id, false)
}

func (r *GormNotesRepository) ListNotes(ctx context.Context, filter NoteFilter) ([]models.Note, error) {
	query := r.db.WithContext(ctx).Where("organization_id = ?", filter.OrganizationID)
	switch {
	case filter.RootOnly:
		query = query.Where("folder_id IS NULL")
	case filter.FolderID != nil:
		query = query.Where("folder_id = ?", *filter.FolderID)
	}

	notes := []models.Note{}
	if err := query.Order("id ASC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *GormNotesRepository) UpdateNote(ctx context.Context, note *models.Note) error {
	return save(ctx, r.db, note)
}
