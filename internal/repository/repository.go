package repository

import (
	"context"

	"github.com/yukikurage/backoffice-api/internal/models"
)

// OrganizationRepository defines data access for organizations and their members
type OrganizationRepository interface {
	// Create creates a new organization
	Create(ctx context.Context, org *models.Organization) error

	// FindByID finds an organization by ID
	FindByID(ctx context.Context, id uint64) (*models.Organization, error)

	// FindByIDForUpdate finds an organization and locks its row for the
	// rest of the enclosing transaction
	FindByIDForUpdate(ctx context.Context, id uint64) (*models.Organization, error)

	// FindBySlug finds an organization by its unique slug
	FindBySlug(ctx context.Context, slug string) (*models.Organization, error)

	// List returns every organization
	List(ctx context.Context) ([]models.Organization, error)

	// Update persists every column of the organization
	Update(ctx context.Context, org *models.Organization) error

	// AddMember inserts a membership row
	AddMember(ctx context.Context, member *models.OrganizationUser) error

	// FindMember finds the membership of a user in an organization
	FindMember(ctx context.Context, organizationID, userID uint64) (*models.OrganizationUser, error)

	// ListMembers lists all memberships of an organization
	ListMembers(ctx context.Context, organizationID uint64) ([]models.OrganizationUser, error)
}

// UserRepository defines data access for users
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// LmsRepository defines data access for LMS instances and their course tree
type LmsRepository interface {
	CreateInstance(ctx context.Context, instance *models.LmsInstance) error
	FindInstanceByID(ctx context.Context, id uint64) (*models.LmsInstance, error)
	ListInstances(ctx context.Context, organizationID uint64) ([]models.LmsInstance, error)

	CreateCourse(ctx context.Context, course *models.Course) error
	FindCourseByID(ctx context.Context, id uint64) (*models.Course, error)
	FindCourseByIDForUpdate(ctx context.Context, id uint64) (*models.Course, error)
	ListCourses(ctx context.Context, lmsInstanceID uint64) ([]models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error

	CreateModule(ctx context.Context, module *models.Module) error
	FindModuleByIDForUpdate(ctx context.Context, id uint64) (*models.Module, error)
	// ListModules returns the modules of a course ascending by order index
	ListModules(ctx context.Context, courseID uint64) ([]models.Module, error)
	// NextModuleIndex returns max(order_index)+1 for the course, or 0
	NextModuleIndex(ctx context.Context, courseID uint64) (int, error)

	CreateLesson(ctx context.Context, lesson *models.Lesson) error
	// ListLessons returns the lessons of a module ascending by order index
	ListLessons(ctx context.Context, moduleID uint64) ([]models.Lesson, error)
	// NextLessonIndex returns max(order_index)+1 for the module, or 0
	NextLessonIndex(ctx context.Context, moduleID uint64) (int, error)
}

// BlogRepository defines data access for blog instances and posts
type BlogRepository interface {
	CreateInstance(ctx context.Context, instance *models.BlogInstance) error
	FindInstanceByID(ctx context.Context, id uint64) (*models.BlogInstance, error)
	ListInstances(ctx context.Context, organizationID uint64) ([]models.BlogInstance, error)

	CreatePost(ctx context.Context, post *models.BlogPost) error
	FindPostByID(ctx context.Context, id uint64) (*models.BlogPost, error)
	// ListPosts returns the posts of an instance, newest created first
	ListPosts(ctx context.Context, blogInstanceID uint64) ([]models.BlogPost, error)
	UpdatePost(ctx context.Context, post *models.BlogPost) error
}

// TaxonomyFilter narrows category and tag listings. Set fields are combined
// with AND; a nil field does not constrain the result.
type TaxonomyFilter struct {
	LmsInstanceID  *uint64
	BlogInstanceID *uint64
}

// TaxonomyRepository defines data access for the shared category/tag vocabulary
type TaxonomyRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	ListCategories(ctx context.Context, filter TaxonomyFilter) ([]models.Category, error)

	CreateTag(ctx context.Context, tag *models.Tag) error
	ListTags(ctx context.Context, filter TaxonomyFilter) ([]models.Tag, error)
}

// NoteFilter selects notes of one organization. With RootOnly set only notes
// outside any folder match; otherwise a non-nil FolderID selects one folder
// and a nil FolderID selects every note.
type NoteFilter struct {
	OrganizationID uint64
	FolderID       *uint64
	RootOnly       bool
}

// NotesRepository defines data access for the folder tree and notes
type NotesRepository interface {
	CreateFolder(ctx context.Context, folder *models.NotesFolder) error
	FindFolderByID(ctx context.Context, id uint64) (*models.NotesFolder, error)
	// ListFolders returns the folders directly under parentID, or the root
	// folders when parentID is nil
	ListFolders(ctx context.Context, organizationID uint64, parentID *uint64) ([]models.NotesFolder, error)

	CreateNote(ctx context.Context, note *models.Note) error
	FindNoteByID(ctx context.Context, id uint64) (*models.Note, error)
	ListNotes(ctx context.Context, filter NoteFilter) ([]models.Note, error)
	UpdateNote(ctx context.Context, note *models.Note) error
}
