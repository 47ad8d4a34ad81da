package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/backoffice-api/internal/database"
	"github.com/yukikurage/backoffice-api/internal/handlers"
	"github.com/yukikurage/backoffice-api/internal/metrics"
	"github.com/yukikurage/backoffice-api/internal/models"
	"github.com/yukikurage/backoffice-api/internal/repository"
	"github.com/yukikurage/backoffice-api/internal/services"
	"gorm.io/gorm"
)

type RouterSuite struct {
	suite.Suite
	db      *gorm.DB
	handler http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := database.OpenInMemory(s.T().Name())
	s.Require().NoError(err)
	s.db = db

	sqlDB, err := db.DB()
	s.Require().NoError(err)

	repos := repository.New(db)
	h := Handlers{
		Organizations: handlers.NewOrganizationHandler(services.NewOrganizationService(repos)),
		Users:         handlers.NewUserHandler(services.NewUserService(repos)),
		Lms:           handlers.NewLmsHandler(services.NewLmsService(repos)),
		Blog:          handlers.NewBlogHandler(services.NewBlogService(repos)),
		Taxonomy:      handlers.NewTaxonomyHandler(services.NewTaxonomyService(repos)),
		Notes:         handlers.NewNotesHandler(services.NewNotesService(repos)),
		Health:        handlers.NewHealthHandler(sqlDB),
	}
	s.handler = WithCORS(New(h, metrics.New(prometheus.NewRegistry())), []string{"https://admin.example.com"})
}

func (s *RouterSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	sqlDB.Close()
}

func (s *RouterSuite) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) mutate(name, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/trpc/"+name, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return s.do(req)
}

func (s *RouterSuite) query(name, input string) *httptest.ResponseRecorder {
	target := "/trpc/" + name
	if input != "" {
		target += "?input=" + url.QueryEscape(input)
	}
	return s.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (s *RouterSuite) TestEveryProcedureIsRouted() {
	names := map[string]bool{}
	for _, p := range Procedures(Handlers{}) {
		s.False(names[p.Name], "duplicate procedure %s", p.Name)
		names[p.Name] = true
	}
	for _, name := range []string{
		"createOrganization", "getOrganizations", "createUser", "createOrganizationUser",
		"getOrganizationUsers", "createLmsInstance", "getLmsInstances", "createCourse",
		"getCourses", "updateCourse", "createModule", "getModules", "createLesson",
		"getLessons", "createBlogInstance", "getBlogInstances", "createBlogPost",
		"getBlogPosts", "updateBlogPost", "createCategory", "getCategories", "createTag",
		"getTags", "createNotesFolder", "getNotesFolders", "createNote", "getNotes",
		"updateNote", "healthcheck",
	} {
		s.True(names[name], "missing procedure %s", name)
	}
}

func (s *RouterSuite) TestHealthcheckProcedure() {
	w := s.query("healthcheck", "")
	s.Equal(http.StatusOK, w.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("ok", body["status"])
	s.NotEmpty(body["timestamp"])
}

func (s *RouterSuite) TestProbes() {
	s.Equal(http.StatusOK, s.do(httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
	s.Equal(http.StatusOK, s.do(httptest.NewRequest(http.MethodGet, "/readyz", nil)).Code)

	w := s.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "http_requests_total")
}

func (s *RouterSuite) TestUnknownProcedure() {
	w := s.mutate("dropDatabase", `{}`)
	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "NOT_FOUND")
}

func (s *RouterSuite) TestMutationsRejectGet() {
	w := s.query("createOrganization", `{"name":"Acme","slug":"acme"}`)
	s.Equal(http.StatusNotFound, w.Code)

	var count int64
	s.Require().NoError(s.db.Model(&models.Organization{}).Count(&count).Error)
	s.Zero(count)
}

func (s *RouterSuite) TestQueryInputFromURL() {
	w := s.mutate("createOrganization", `{"name":"Acme","slug":"acme","description":null}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var org models.Organization
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &org))

	w = s.mutate("createLmsInstance", `{"organization_id":`+itoa(org.ID)+`,"name":"Training","slug":"training","description":null}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.query("getLmsInstances", `{"organizationId":`+itoa(org.ID)+`}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var instances []models.LmsInstance
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &instances))
	s.Len(instances, 1)

	// Queries also accept POST bodies.
	req := httptest.NewRequest(http.MethodPost, "/trpc/getLmsInstances", strings.NewReader(`{"organizationId":`+itoa(org.ID)+`}`))
	req.Header.Set("Content-Type", "application/json")
	w = s.do(req)
	s.Equal(http.StatusOK, w.Code)

	w = s.query("getLmsInstances", "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestActorHeader() {
	w := s.mutate("createUser", `{"email":"ada@example.com","name":"Ada","password":"secret123"}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var user struct {
		ID uint64 `json:"id"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &user))

	w = s.mutate("createOrganization", `{"name":"Acme","slug":"acme"}`)
	s.Require().Equal(http.StatusCreated, w.Code)
	var org models.Organization
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &org))

	w = s.mutate("createNotesFolder", `{"organization_id":`+itoa(org.ID)+`,"parent_id":null,"name":"Root"}`, "X-Actor-ID", itoa(user.ID))
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var folder models.NotesFolder
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &folder))
	s.Equal(user.ID, folder.CreatedBy)

	w = s.mutate("createNotesFolder", `{"organization_id":1,"name":"Root"}`, "X-Actor-ID", "not-a-number")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestRequestIDAndCORS() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	w := s.do(req)
	s.Equal("abc-123", w.Header().Get("X-Request-Id"))

	w = s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	s.NotEmpty(w.Header().Get("X-Request-Id"))

	preflight := httptest.NewRequest(http.MethodOptions, "/trpc/createOrganization", nil)
	preflight.Header.Set("Origin", "https://admin.example.com")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodPost)
	preflight.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Actor-ID")
	w = s.do(preflight)
	s.Equal("https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	other := httptest.NewRequest(http.MethodGet, "/health", nil)
	other.Header.Set("Origin", "https://evil.example.com")
	w = s.do(other)
	s.Empty(w.Header().Get("Access-Control-Allow-Origin"))
}

func itoa(id uint64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
