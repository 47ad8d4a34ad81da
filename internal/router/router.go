package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/yukikurage/backoffice-api/internal/constants"
	apierrors "github.com/yukikurage/backoffice-api/internal/errors"
	"github.com/yukikurage/backoffice-api/internal/handlers"
	"github.com/yukikurage/backoffice-api/internal/metrics"
	"github.com/yukikurage/backoffice-api/internal/middleware"
)

// Kind says how a procedure may be called. Queries accept GET with an
// "input" query parameter as well as POST; mutations accept POST only.
type Kind int

const (
	Query Kind = iota
	Mutation
)

// Procedure binds an operation name to its handler.
type Procedure struct {
	Name    string
	Kind    Kind
	Handler gin.HandlerFunc
}

// Handlers groups the per-domain handlers served by the router.
type Handlers struct {
	Organizations *handlers.OrganizationHandler
	Users         *handlers.UserHandler
	Lms           *handlers.LmsHandler
	Blog          *handlers.BlogHandler
	Taxonomy      *handlers.TaxonomyHandler
	Notes         *handlers.NotesHandler
	Health        *handlers.HealthHandler
}

// Procedures returns the dispatch table of every named operation.
func Procedures(h Handlers) []Procedure {
	return []Procedure{
		{"healthcheck", Query, h.Health.Healthcheck},

		{"createOrganization", Mutation, h.Organizations.CreateOrganization},
		{"getOrganizations", Query, h.Organizations.ListOrganizations},
		{"updateOrganization", Mutation, h.Organizations.UpdateOrganization},
		{"createUser", Mutation, h.Users.CreateUser},
		{"createOrganizationUser", Mutation, h.Organizations.CreateOrganizationUser},
		{"getOrganizationUsers", Query, h.Organizations.ListOrganizationUsers},

		{"createLmsInstance", Mutation, h.Lms.CreateLmsInstance},
		{"getLmsInstances", Query, h.Lms.ListLmsInstances},
		{"createCourse", Mutation, h.Lms.CreateCourse},
		{"getCourses", Query, h.Lms.ListCourses},
		{"updateCourse", Mutation, h.Lms.UpdateCourse},
		{"createModule", Mutation, h.Lms.CreateModule},
		{"getModules", Query, h.Lms.ListModules},
		{"createLesson", Mutation, h.Lms.CreateLesson},
		{"getLessons", Query, h.Lms.ListLessons},

		{"createBlogInstance", Mutation, h.Blog.CreateBlogInstance},
		{"getBlogInstances", Query, h.Blog.ListBlogInstances},
		{"createBlogPost", Mutation, h.Blog.CreateBlogPost},
		{"getBlogPosts", Query, h.Blog.ListBlogPosts},
		{"updateBlogPost", Mutation, h.Blog.UpdateBlogPost},

		{"createCategory", Mutation, h.Taxonomy.CreateCategory},
		{"getCategories", Query, h.Taxonomy.ListCategories},
		{"createTag", Mutation, h.Taxonomy.CreateTag},
		{"getTags", Query, h.Taxonomy.ListTags},

		{"createNotesFolder", Mutation, h.Notes.CreateNotesFolder},
		{"getNotesFolders", Query, h.Notes.ListNotesFolders},
		{"createNote", Mutation, h.Notes.CreateNote},
		{"getNotes", Query, h.Notes.ListNotes},
		{"updateNote", Mutation, h.Notes.UpdateNote},
	}
}

// New builds the gin engine. m may be nil to serve without metrics.
func New(h Handlers, m *metrics.Metrics) *gin.Engine {
	handlers.RegisterValidators()

	r := gin.New()
	r.Use(middleware.RequestID())
	if m != nil {
		r.Use(m.Middleware())
	}
	r.Use(middleware.Logger(), middleware.Recoverer())

	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "Procedure not found")
	})

	r.GET("/health", h.Health.Live)
	r.GET("/readyz", h.Health.Ready)
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	api := r.Group("/trpc", middleware.ResolveActor(), middleware.QueryInput())
	for _, p := range Procedures(h) {
		path := "/" + p.Name
		api.POST(path, p.Handler)
		if p.Kind == Query {
			api.GET(path, p.Handler)
		}
	}

	return r
}

// WithCORS wraps the engine with the CORS policy for browser clients.
func WithCORS(next http.Handler, allowedOrigins []string) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", constants.HeaderActorID, constants.HeaderRequestID},
		ExposedHeaders: []string{constants.HeaderRequestID},
		MaxAge:         300,
	})(next)
}
