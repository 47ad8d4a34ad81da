package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/backoffice-api/internal/models"
	"github.com/yukikurage/backoffice-api/internal/repository"
)

func TestTaxonomyService_FilterComposition(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	org := createTestOrganization(t, env.db, "acme")
	lms, err := env.lms.CreateLmsInstance(ctx, CreateInstanceInput{OrganizationID: org.ID, Name: "L", Slug: "l"})
	require.NoError(t, err)
	blog, err := env.blog.CreateBlogInstance(ctx, CreateInstanceInput{OrganizationID: org.ID, Name: "B", Slug: "b"})
	require.NoError(t, err)

	inputs := []CreateCategoryInput{
		{Name: "lms only", Slug: "lms-only", LmsInstanceID: &lms.ID},
		{Name: "blog only", Slug: "blog-only", BlogInstanceID: &blog.ID},
		{Name: "both", Slug: "both", LmsInstanceID: &lms.ID, BlogInstanceID: &blog.ID},
		{Name: "neither", Slug: "neither"},
	}
	for _, in := range inputs {
		_, err := env.taxonomy.CreateCategory(ctx, in)
		require.NoError(t, err)
	}

	both, err := env.taxonomy.ListCategories(ctx, repository.TaxonomyFilter{LmsInstanceID: &lms.ID, BlogInstanceID: &blog.ID})
	require.NoError(t, err)
	require.Len(t, both, 1)
	require.Equal(t, "both", both[0].Slug)
	require.Equal(t, models.OwnerShared, both[0].Owner().Kind)

	lmsOnly, err := env.taxonomy.ListCategories(ctx, repository.TaxonomyFilter{LmsInstanceID: &lms.ID})
	require.NoError(t, err)
	require.Len(t, lmsOnly, 2)

	all, err := env.taxonomy.ListCategories(ctx, repository.TaxonomyFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
}

func TestTaxonomyService_CreateChecksInstances(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	_, err := env.taxonomy.CreateCategory(ctx, CreateCategoryInput{Name: "x", Slug: "x", LmsInstanceID: uintPtr(999)})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = env.taxonomy.CreateTag(ctx, CreateTagInput{Name: "x", Slug: "x", BlogInstanceID: uintPtr(999)})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = env.taxonomy.CreateTag(ctx, CreateTagInput{Slug: "x"})
	require.ErrorIs(t, err, ErrInvalidInput)

	require.Zero(t, countRows(t, env.db, &models.Category{}))
	require.Zero(t, countRows(t, env.db, &models.Tag{}))
}

func TestTaxonomyService_Tags(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	org := createTestOrganization(t, env.db, "acme")
	blog, err := env.blog.CreateBlogInstance(ctx, CreateInstanceInput{OrganizationID: org.ID, Name: "B", Slug: "b"})
	require.NoError(t, err)

	tag, err := env.taxonomy.CreateTag(ctx, CreateTagInput{Name: "Go", Slug: "go", BlogInstanceID: &blog.ID})
	require.NoError(t, err)
	require.Equal(t, models.OwnerBlog, tag.Owner().Kind)

	tags, err := env.taxonomy.ListTags(ctx, repository.TaxonomyFilter{BlogInstanceID: &blog.ID})
	require.NoError(t, err)
	require.Len(t, tags, 1)

	tags, err = env.taxonomy.ListTags(ctx, repository.TaxonomyFilter{LmsInstanceID: uintPtr(1)})
	require.NoError(t, err)
	require.NotNil(t, tags)
	require.Empty(t, tags)
}
