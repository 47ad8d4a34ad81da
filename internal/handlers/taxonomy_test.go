package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/backoffice-api/internal/dto"
	"github.com/yukikurage/backoffice-api/internal/models"
)

func TestTaxonomyHandler_CategoriesAndTags(t *testing.T) {
	env := setupHandlerTestEnv(t)
	org := createTestOrganization(t, env.db, "acme")

	lms := &models.LmsInstance{OrganizationID: org.ID, Name: "L", Slug: "l"}
	require.NoError(t, env.db.Create(lms).Error)
	blog := &models.BlogInstance{OrganizationID: org.ID, Name: "B", Slug: "b"}
	require.NoError(t, env.db.Create(blog).Error)

	c, w := procedureContext(t, map[string]interface{}{
		"name":             "Shared",
		"slug":             "shared",
		"description":      nil,
		"lms_instance_id":  lms.ID,
		"blog_instance_id": blog.ID,
	}, 0)
	env.taxonomy.CreateCategory(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var category dto.CategoryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))
	require.Equal(t, models.OwnerShared, category.Owner.Kind)

	c, w = procedureContext(t, map[string]interface{}{"name": "LMS", "slug": "lms", "lms_instance_id": lms.ID}, 0)
	env.taxonomy.CreateCategory(c)
	require.Equal(t, http.StatusCreated, w.Code)

	c, w = procedureContext(t, map[string]interface{}{"lmsInstanceId": lms.ID, "blogInstanceId": blog.ID}, 0)
	env.taxonomy.ListCategories(c)
	require.Equal(t, http.StatusOK, w.Code)
	var categories []dto.CategoryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 1)
	require.Equal(t, "shared", categories[0].Slug)

	c, w = procedureContext(t, map[string]interface{}{"name": "Go", "slug": "go", "blog_instance_id": 999}, 0)
	env.taxonomy.CreateTag(c)
	require.Equal(t, http.StatusNotFound, w.Code)

	c, w = procedureContext(t, nil, 0)
	env.taxonomy.ListTags(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}
