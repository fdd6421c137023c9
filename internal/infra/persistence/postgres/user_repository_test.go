package postgres_test

import (
	"context"
	"testing"

	"vacuum/internal/domain/entity"
	"vacuum/internal/domain/repository"
	"vacuum/internal/infra/persistence/postgres"
	"vacuum/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	roleID := testutil.RoleID(t, db, entity.RoleDistributor)
	name := "Dee"
	user := &entity.User{RoleID: &roleID, Name: &name, Email: "dee@example.com", IsActive: true}
	require.NoError(t, repo.CreateUser(ctx, user))

	found, err := repo.FindUserByEmail(ctx, "DEE@Example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	require.NotNil(t, found.Role)
	assert.True(t, found.HasRole(entity.RoleDistributor))

	require.NoError(t, repo.LinkExternalIdentity(ctx, user.ID, "subject-1"))
	linked, err := repo.FindUserByExternalIdentityID(ctx, "subject-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, linked.ID)

	duplicate := &entity.User{RoleID: &roleID, Email: "dee@example.com", IsActive: true}
	assert.ErrorIs(t, repo.CreateUser(ctx, duplicate), repository.ErrDuplicateUser)

	_, err = repo.FindUserByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.ErrorIs(t, repo.LinkExternalIdentity(ctx, uuid.New(), "subject-2"), repository.ErrUserNotFound)
}

func TestUserRepository_ListUsersByRole(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	testutil.CreateUser(t, db, "Dee", "dee@example.com", entity.RoleDistributor)
	testutil.CreateUser(t, db, "Dan", "dan@example.com", entity.RoleDistributor)
	testutil.CreateUser(t, db, "Ada", "ada@example.com", entity.RoleAdmin)

	distributorID := testutil.RoleID(t, db, entity.RoleDistributor)
	page, err := repo.ListUsersByRole(ctx, distributorID, entity.ListQuery{SortBy: "name", SortOrder: entity.SortAsc}.WithDefaults())
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Dan", *page.Items[0].Name)
	assert.Equal(t, "Dee", *page.Items[1].Name)

	searched, err := repo.ListUsersByRole(ctx, distributorID, entity.ListQuery{Search: "DEE@"}.WithDefaults())
	require.NoError(t, err)
	assert.EqualValues(t, 1, searched.Total)
}

func TestRoleAndCatalogRepositories_Seeded(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	role, err := postgres.NewRoleRepository(db).FindRoleByName(ctx, "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role.Name)

	_, err = postgres.NewRoleRepository(db).FindRoleByName(ctx, "auditor")
	assert.ErrorIs(t, err, repository.ErrRoleNotFound)

	catalog := postgres.NewCatalogRepository(db)
	serviceTypes, err := catalog.ListServiceTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, serviceTypes, len(entity.DefaultServiceTypes))

	pump, err := catalog.FindEquipmentTypeByName(ctx, "Pump")
	require.NoError(t, err)
	assert.Equal(t, entity.EquipmentTypePump, pump.TypeName)

	_, err = catalog.FindEquipmentTypeByName(ctx, "valve")
	assert.ErrorIs(t, err, repository.ErrEquipmentTypeNotFound)

	require.NoError(t, postgres.Seed(db))
	equipmentTypes, err := catalog.ListEquipmentTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, equipmentTypes, len(entity.DefaultEquipmentTypes))
}
