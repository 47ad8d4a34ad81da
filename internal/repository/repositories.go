package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repositories bundles every repository over a single connection or
// transaction.
type Repositories struct {
	Organizations OrganizationRepository
	Users         UserRepository
	Lms           LmsRepository
	Blog          BlogRepository
	Taxonomy      TaxonomyRepository
	Notes         NotesRepository

	db *gorm.DB
}

// New creates the GORM-backed repositories
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Organizations: NewOrganizationRepository(db),
		Users:         NewUserRepository(db),
		Lms:           NewLmsRepository(db),
		Blog:          NewBlogRepository(db),
		Taxonomy:      NewTaxonomyRepository(db),
		Notes:         NewNotesRepository(db),
		db:            db,
	}
}

// Transaction runs fn with repositories bound to one database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// findByID loads one row by primary key, optionally taking a row lock.
// Dialects without row locks (SQLite) ignore the locking clause.
func findByID[T any](ctx context.Context, db *gorm.DB, id uint64, forUpdate bool) (*T, error) {
	var out T
	query := db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := query.First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func create(ctx context.Context, db *gorm.DB, value interface{}) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(value).Error
}

func save(ctx context.Context, db *gorm.DB, value interface{}) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(value).Error
}
