package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/backoffice-api/internal/models"
)

func TestLmsHandler_CourseTree(t *testing.T) {
	env := setupHandlerTestEnv(t)
	org := createTestOrganization(t, env.db, "acme")
	user := createTestUser(t, env.db, "ada@example.com")

	c, w := procedureContext(t, map[string]interface{}{"organization_id": org.ID, "name": "Training", "slug": "training"}, 0)
	env.lms.CreateLmsInstance(c)
	require.Equal(t, http.StatusCreated, w.Code)
	var instance models.LmsInstance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &instance))

	// created_by comes from the actor when omitted.
	c, w = procedureContext(t, map[string]interface{}{
		"lms_instance_id": instance.ID,
		"title":           "Intro",
		"slug":            "intro",
		"visibility":      "public",
	}, user.ID)
	env.lms.CreateCourse(c)
	require.Equal(t, http.StatusCreated, w.Code)
	var course models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &course))
	require.Equal(t, user.ID, course.CreatedBy)

	c, w = procedureContext(t, map[string]interface{}{"course_id": course.ID, "title": "M1", "slug": "m1", "order_index": 0}, 0)
	env.lms.CreateModule(c)
	require.Equal(t, http.StatusCreated, w.Code)
	var module models.Module
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &module))

	c, w = procedureContext(t, map[string]interface{}{"module_id": module.ID, "title": "L1", "slug": "l1", "order_index": 0}, 0)
	env.lms.CreateLesson(c)
	require.Equal(t, http.StatusCreated, w.Code)

	c, w = procedureContext(t, map[string]interface{}{"moduleId": module.ID}, 0)
	env.lms.ListLessons(c)
	require.Equal(t, http.StatusOK, w.Code)
	var lessons []models.Lesson
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lessons))
	require.Len(t, lessons, 1)
	require.Equal(t, "L1", lessons[0].Title)
	require.Equal(t, 0, lessons[0].OrderIndex)

	c, w = procedureContext(t, map[string]interface{}{"courseId": course.ID}, 0)
	env.lms.ListModules(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = procedureContext(t, map[string]interface{}{"lmsInstanceId": instance.ID}, 0)
	env.lms.ListCourses(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = procedureContext(t, map[string]interface{}{"organizationId": org.ID}, 0)
	env.lms.ListLmsInstances(c)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLmsHandler_CreateCourseRequiresCreator(t *testing.T) {
	env := setupHandlerTestEnv(t)

	c, w := procedureContext(t, map[string]interface{}{
		"lms_instance_id": 1,
		"title":           "Intro",
		"slug":            "intro",
		"visibility":      "public",
	}, 0)
	env.lms.CreateCourse(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "created_by", decodeError(t, w).Details[0].Field)
}

func TestLmsHandler_CreateCourseInvalidVisibility(t *testing.T) {
	env := setupHandlerTestEnv(t)

	c, w := procedureContext(t, map[string]interface{}{
		"lms_instance_id": 1,
		"title":           "Intro",
		"slug":            "intro",
		"visibility":      "secret",
		"created_by":      1,
	}, 0)
	env.lms.CreateCourse(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	require.Equal(t, "visibility", body.Details[0].Field)
	require.Equal(t, "must be one of public, private, restricted", body.Details[0].Message)
}

func TestLmsHandler_CreateLessonMissingModule(t *testing.T) {
	env := setupHandlerTestEnv(t)

	c, w := procedureContext(t, map[string]interface{}{"module_id": 999, "title": "L1", "slug": "l1", "order_index": 0}, 0)
	env.lms.CreateLesson(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "module with id 999 not found", decodeError(t, w).Message)
}

func TestLmsHandler_UpdateCourseNullVersusOmitted(t *testing.T) {
	env := setupHandlerTestEnv(t)
	org := createTestOrganization(t, env.db, "acme")
	user := createTestUser(t, env.db, "ada@example.com")

	instance := &models.LmsInstance{OrganizationID: org.ID, Name: "T", Slug: "t"}
	require.NoError(t, env.db.Create(instance).Error)
	description := "first steps"
	course := &models.Course{
		LmsInstanceID: instance.ID,
		Title:         "Intro",
		Slug:          "intro",
		Description:   &description,
		Visibility:    models.VisibilityPublic,
		CreatedBy:     user.ID,
	}
	require.NoError(t, env.db.Create(course).Error)

	c, w := procedureContext(t, `{"id":`+jsonID(course.ID)+`,"visibility":"private"}`, 0)
	env.lms.UpdateCourse(c)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, models.VisibilityPrivate, updated.Visibility)
	require.Equal(t, "first steps", *updated.Description)

	c, w = procedureContext(t, `{"id":`+jsonID(course.ID)+`,"description":null}`, 0)
	env.lms.UpdateCourse(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Nil(t, updated.Description)
	require.Equal(t, "Intro", updated.Title)

	c, w = procedureContext(t, `{"id":`+jsonID(course.ID)+`,"title":null}`, 0)
	env.lms.UpdateCourse(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
