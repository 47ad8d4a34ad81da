package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/backoffice-api/internal/models"
	"github.com/yukikurage/backoffice-api/internal/optional"
)

func TestOrganizationService_CreateAndList(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	orgs, err := env.organizations.ListOrganizations(ctx)
	require.NoError(t, err)
	require.NotNil(t, orgs)
	require.Empty(t, orgs)

	org, err := env.organizations.CreateOrganization(ctx, CreateOrganizationInput{
		Name:        "Acme",
		Slug:        "acme",
		Description: strPtr("rockets"),
	})
	require.NoError(t, err)
	require.NotZero(t, org.ID)
	require.False(t, org.CreatedAt.IsZero())

	orgs, err = env.organizations.ListOrganizations(ctx)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	require.Equal(t, "acme", orgs[0].Slug)
	require.Equal(t, "rockets", *orgs[0].Description)
}

func TestOrganizationService_CreateDuplicateSlug(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	_, err := env.organizations.CreateOrganization(ctx, CreateOrganizationInput{Name: "Acme", Slug: "acme"})
	require.NoError(t, err)

	_, err = env.organizations.CreateOrganization(ctx, CreateOrganizationInput{Name: "Other", Slug: "acme"})
	require.ErrorIs(t, err, ErrUniquenessViolation)

	var uniq *UniquenessError
	require.True(t, errors.As(err, &uniq))
	require.Equal(t, "slug", uniq.Field)
	require.EqualValues(t, 1, countRows(t, env.db, &models.Organization{}))
}

func TestOrganizationService_CreateRequiresName(t *testing.T) {
	env := setupServiceTestEnv(t)

	_, err := env.organizations.CreateOrganization(context.Background(), CreateOrganizationInput{Slug: "acme"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestOrganizationService_UpdateOrganization(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	org, err := env.organizations.CreateOrganization(ctx, CreateOrganizationInput{
		Name:        "Acme",
		Slug:        "acme",
		Description: strPtr("rockets"),
	})
	require.NoError(t, err)

	updated, err := env.organizations.UpdateOrganization(ctx, UpdateOrganizationInput{
		ID:   org.ID,
		Name: optional.Of("Acme Corp"),
	})
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", updated.Name)
	require.Equal(t, "acme", updated.Slug)
	require.Equal(t, "rockets", *updated.Description)

	updated, err = env.organizations.UpdateOrganization(ctx, UpdateOrganizationInput{
		ID:          org.ID,
		Description: optional.Null[string](),
	})
	require.NoError(t, err)
	require.Nil(t, updated.Description)
	require.Equal(t, "Acme Corp", updated.Name)
}

func TestOrganizationService_UpdateOrganizationErrors(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	_, err := env.organizations.UpdateOrganization(ctx, UpdateOrganizationInput{ID: 404, Name: optional.Of("x")})
	require.ErrorIs(t, err, ErrNotFound)

	first := createTestOrganization(t, env.db, "first")
	createTestOrganization(t, env.db, "second")

	_, err = env.organizations.UpdateOrganization(ctx, UpdateOrganizationInput{ID: first.ID, Slug: optional.Of("second")})
	require.ErrorIs(t, err, ErrUniquenessViolation)

	_, err = env.organizations.UpdateOrganization(ctx, UpdateOrganizationInput{ID: first.ID, Name: optional.Null[string]()})
	require.ErrorIs(t, err, ErrInvalidInput)

	// Keeping its own slug is not a conflict.
	_, err = env.organizations.UpdateOrganization(ctx, UpdateOrganizationInput{ID: first.ID, Slug: optional.Of("first")})
	require.NoError(t, err)
}

func TestOrganizationService_CreateOrganizationUser(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	org := createTestOrganization(t, env.db, "acme")
	user := createTestUser(t, env.db, "ada@example.com")

	input := CreateOrganizationUserInput{
		OrganizationID: org.ID,
		UserID:         user.ID,
		Role:           models.RoleAdmin,
	}

	member, err := env.organizations.CreateOrganizationUser(ctx, input)
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, member.Role)

	_, err = env.organizations.CreateOrganizationUser(ctx, input)
	require.ErrorIs(t, err, ErrDuplicateMembership)

	var count int64
	require.NoError(t, env.db.Model(&models.OrganizationUser{}).
		Where("organization_id = ? AND user_id = ?", org.ID, user.ID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)

	members, err := env.organizations.ListOrganizationUsers(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, user.ID, members[0].UserID)
}

func TestOrganizationService_CreateOrganizationUserCheckOrder(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	org := createTestOrganization(t, env.db, "acme")
	user := createTestUser(t, env.db, "ada@example.com")

	// A missing organization is reported even when the user is also missing.
	_, err := env.organizations.CreateOrganizationUser(ctx, CreateOrganizationUserInput{
		OrganizationID: 999,
		UserID:         998,
		Role:           models.RoleMember,
	})
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "organization", notFound.Entity)

	_, err = env.organizations.CreateOrganizationUser(ctx, CreateOrganizationUserInput{
		OrganizationID: org.ID,
		UserID:         998,
		Role:           models.RoleMember,
	})
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "user", notFound.Entity)

	_, err = env.organizations.CreateOrganizationUser(ctx, CreateOrganizationUserInput{
		OrganizationID: org.ID,
		UserID:         user.ID,
		Role:           models.OrganizationRole("superuser"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Zero(t, countRows(t, env.db, &models.OrganizationUser{}))
}
