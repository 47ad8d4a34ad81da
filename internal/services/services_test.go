package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/backoffice-api/internal/database"
	"github.com/yukikurage/backoffice-api/internal/models"
	"github.com/yukikurage/backoffice-api/internal/repository"
	"gorm.io/gorm"
)

type serviceTestEnv struct {
	db            *gorm.DB
	organizations *OrganizationService
	users         *UserService
	lms           *LmsService
	blog          *BlogService
	taxonomy      *TaxonomyService
	notes         *NotesService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := database.OpenInMemory(t.Name())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	repos := repository.New(db)
	return serviceTestEnv{
		db:            db,
		organizations: NewOrganizationService(repos),
		users:         NewUserService(repos),
		lms:           NewLmsService(repos),
		blog:          NewBlogService(repos),
		taxonomy:      NewTaxonomyService(repos),
		notes:         NewNotesService(repos),
	}
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: email, PasswordHash: "hashed"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestOrganization(t *testing.T, db *gorm.DB, slug string) *models.Organization {
	t.Helper()
	org := &models.Organization{Name: slug, Slug: slug}
	require.NoError(t, db.Create(org).Error)
	return org
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func uintPtr(i uint64) *uint64 { return &i }
