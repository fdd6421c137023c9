package postgres_test

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"vacuum/internal/domain/entity"
	"vacuum/internal/domain/repository"
	"vacuum/internal/infra/persistence/postgres"
	"vacuum/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func machineIDs(items []*entity.Machine) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	return ids
}

func TestMachineRepository_CreateMachine_DuplicatePartNo(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := postgres.NewMachineRepository(db)
	ctx := context.Background()
	typeID := testutil.EquipmentTypeID(t, db, entity.EquipmentTypePump)

	partNo := "P-100"
	first := &entity.Machine{ModelNo: "VP-100", PartNo: &partNo, EquipmentTypeID: typeID}
	require.NoError(t, repo.CreateMachine(ctx, first))
	assert.NotEqual(t, uuid.Nil, first.ID)

	second := &entity.Machine{ModelNo: "VP-101", PartNo: &partNo, EquipmentTypeID: typeID}
	err := repo.CreateMachine(ctx, second)
	assert.ErrorIs(t, err, repository.ErrDuplicatePartNo)

	exists, err := repo.PartNoExists(ctx, partNo, first.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.PartNoExists(ctx, partNo, uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMachineRepository_CreateMachine_UnknownType(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := postgres.NewMachineRepository(db)

	err := repo.CreateMachine(context.Background(), &entity.Machine{ModelNo: "VP-1", EquipmentTypeID: uuid.New()})
	assert.ErrorIs(t, err, repository.ErrEquipmentTypeNotFound)
}

func TestMachineRepository_UpdateMachine(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := postgres.NewMachineRepository(db)
	ctx := context.Background()

	created := testutil.CreateMachine(t, db, entity.EquipmentTypePump, "VP-100", "P-100")

	machine, err := repo.FindMachineByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EquipmentTypePump, machine.TypeName())

	machine.ModelNo = "VP-100X"
	machine.PartNo = nil
	require.NoError(t, repo.UpdateMachine(ctx, machine))

	reloaded, err := repo.FindMachineByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "VP-100X", reloaded.ModelNo)
	assert.Nil(t, reloaded.PartNo)

	err = repo.UpdateMachine(ctx, &entity.Machine{ID: uuid.New(), ModelNo: "ghost", EquipmentTypeID: machine.EquipmentTypeID})
	assert.ErrorIs(t, err, repository.ErrMachineNotFound)
}

func TestMachineRepository_ListMachinesByType_DistinctParents(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := postgres.NewMachineRepository(db)
	ctx := context.Background()

	acme := testutil.CreateMachine(t, db, entity.EquipmentTypePump, "VP-100", "P-100")
	other := testutil.CreateMachine(t, db, entity.EquipmentTypePump, "VP-200", "P-200")
	testutil.CreateMachine(t, db, entity.EquipmentTypePump, "VP-300", "")
	testutil.CreateMachine(t, db, entity.EquipmentTypePart, "Acme seal kit", "S-1")

	for _, serial := range []string{"SN-1", "SN-2", "SN-3"} {
		testutil.CreateSoldMachine(t, db, acme.ID, serial, testutil.SoldMachineFixture{CustomerCompany: "ACME Labs"})
	}
	testutil.CreateSoldMachine(t, db, other.ID, "SN-4", testutil.SoldMachineFixture{CustomerName: "Acme Person"})

	pumpID := testutil.EquipmentTypeID(t, db, entity.EquipmentTypePump)
	page, err := repo.ListMachinesByType(ctx, pumpID, entity.ListQuery{Search: "acme"}.WithDefaults())
	require.NoError(t, err)

	assert.EqualValues(t, 2, page.Total)
	assert.ElementsMatch(t, []uuid.UUID{acme.ID, other.ID}, machineIDs(page.Items))
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrevious)

	for _, item := range page.Items {
		if item.ID == acme.ID {
			assert.Len(t, item.SoldMachines, 3)
		} else {
			assert.Len(t, item.SoldMachines, 1)
		}
		assert.Equal(t, entity.EquipmentTypePump, item.TypeName())
	}

	all, err := repo.ListMachinesByType(ctx, pumpID, entity.ListQuery{}.WithDefaults())
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.Total)
}

func TestMachineRepository_ListMachinesByType_PagesCoverEveryRowOnce(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := postgres.NewMachineRepository(db)
	ctx := context.Background()

	var want []string
	for i := range 7 {
		modelNo := fmt.Sprintf("M-%02d", i)
		machine := testutil.CreateMachine(t, db, entity.EquipmentTypePart, modelNo, "")
		testutil.CreateSoldMachine(t, db, machine.ID, "SN-A-"+modelNo, testutil.SoldMachineFixture{})
		testutil.CreateSoldMachine(t, db, machine.ID, "SN-B-"+modelNo, testutil.SoldMachineFixture{})
		want = append(want, modelNo)
	}
	partID := testutil.EquipmentTypeID(t, db, entity.EquipmentTypePart)

	var got []string
	expectedSizes := []int{3, 3, 1}
	for i, size := range expectedSizes {
		query := entity.ListQuery{SortBy: "model_no", SortOrder: entity.SortAsc, Page: i + 1, Limit: 3}.WithDefaults()
		page, err := repo.ListMachinesByType(ctx, partID, query)
		require.NoError(t, err)

		assert.EqualValues(t, 7, page.Total)
		require.Len(t, page.Items, size)
		assert.Equal(t, i < len(expectedSizes)-1, page.HasNext)
		assert.Equal(t, i > 0, page.HasPrevious)
		for _, item := range page.Items {
			got = append(got, item.ModelNo)
		}
	}
	assert.Equal(t, want, got)

	beyond, err := repo.ListMachinesByType(ctx, partID, entity.ListQuery{Page: 4, Limit: 3}.WithDefaults())
	require.NoError(t, err)
	assert.EqualValues(t, 7, beyond.Total)
	assert.Empty(t, beyond.Items)
	assert.False(t, beyond.HasNext)
}

func TestMachineRepository_ListMachinesByType_UnknownSortFallsBackToCreatedAt(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := postgres.NewMachineRepository(db)
	ctx := context.Background()

	for _, modelNo := range []string{"B", "C", "A"} {
		testutil.CreateMachine(t, db, entity.EquipmentTypePump, modelNo, "")
	}
	pumpID := testutil.EquipmentTypeID(t, db, entity.EquipmentTypePump)

	byCreated, err := repo.ListMachinesByType(ctx, pumpID, entity.ListQuery{SortBy: "created_at"}.WithDefaults())
	require.NoError(t, err)
	byUnknown, err := repo.ListMachinesByType(ctx, pumpID, entity.ListQuery{SortBy: "password; DROP TABLE machines"}.WithDefaults())
	require.NoError(t, err)

	assert.Equal(t, machineIDs(byCreated.Items), machineIDs(byUnknown.Items))

	byModel, err := repo.ListMachinesByType(ctx, pumpID, entity.ListQuery{SortBy: "model_no", SortOrder: entity.SortAsc}.WithDefaults())
	require.NoError(t, err)
	models := make([]string, 0, len(byModel.Items))
	for _, item := range byModel.Items {
		models = append(models, item.ModelNo)
	}
	assert.True(t, sort.StringsAreSorted(models))
}

func TestMachineRepository_ListMachinesByType_SearchEscapesWildcards(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := postgres.NewMachineRepository(db)
	ctx := context.Background()

	literal := testutil.CreateMachine(t, db, entity.EquipmentTypePump, "50%_OFF", "")
	testutil.CreateMachine(t, db, entity.EquipmentTypePump, "500FF", "")
	pumpID := testutil.EquipmentTypeID(t, db, entity.EquipmentTypePump)

	page, err := repo.ListMachinesByType(ctx, pumpID, entity.ListQuery{Search: "0%_"}.WithDefaults())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{literal.ID}, machineIDs(page.Items))

	blank, err := repo.ListMachinesByType(ctx, pumpID, entity.ListQuery{Search: "   "}.WithDefaults())
	require.NoError(t, err)
	assert.EqualValues(t, 2, blank.Total)
}
