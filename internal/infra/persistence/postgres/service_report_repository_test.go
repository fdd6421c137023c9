package postgres_test

import (
	"context"
	"testing"

	"vacuum/internal/domain/entity"
	"vacuum/internal/domain/repository"
	"vacuum/internal/infra/persistence/model"
	"vacuum/internal/infra/persistence/postgres"
	"vacuum/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceReportRepository_CreateAndFind(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := postgres.NewServiceReportRepository(db)
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "Dee", "dee@example.com", entity.RoleDistributor)
	pump := testutil.CreateMachine(t, db, entity.EquipmentTypePump, "VP-100", "P-100")
	seal := testutil.CreateMachine(t, db, entity.EquipmentTypePart, "Seal", "S-1")
	sold := testutil.CreateSoldMachine(t, db, pump.ID, "SN-1", testutil.SoldMachineFixture{CustomerName: "Jo"})

	problem := "Leaking seal"
	report := &entity.ServiceReport{
		ID:            uuid.Must(uuid.NewV7()),
		UserID:        author.ID,
		SoldMachineID: &sold.ID,
		ServiceTypeID: testutil.ServiceTypeID(t, db, "Warranty"),
		Problem:       &problem,
	}
	preassigned := report.ID
	require.NoError(t, repo.CreateServiceReport(ctx, report))
	assert.Equal(t, preassigned, report.ID)

	parts := []*entity.ServiceReportPart{{ServiceReportID: report.ID, MachineID: seal.ID, Quantity: 2}}
	require.NoError(t, repo.CreateParts(ctx, parts))
	assert.NotEqual(t, uuid.Nil, parts[0].ID)

	files := []*entity.ServiceReportFile{
		{ServiceReportID: report.ID, FileKey: "service_reports/a.jpg"},
		{ServiceReportID: report.ID, FileKey: "service_reports/b.pdf"},
	}
	require.NoError(t, repo.CreateFiles(ctx, files))
	require.NoError(t, repo.CreateParts(ctx, nil))
	require.NoError(t, repo.CreateFiles(ctx, nil))

	found, err := repo.FindServiceReportByID(ctx, report.ID)
	require.NoError(t, err)
	require.NotNil(t, found.User)
	require.NotNil(t, found.User.Role)
	assert.Equal(t, entity.RoleDistributor, found.User.Role.Name)
	assert.Equal(t, "Warranty", found.ServiceType.Name)
	require.NotNil(t, found.SoldMachine)
	require.NotNil(t, found.SoldMachine.Machine)
	assert.Equal(t, entity.EquipmentTypePump, found.SoldMachine.Machine.TypeName())
	require.Len(t, found.Parts, 1)
	assert.Equal(t, 2, found.Parts[0].Quantity)
	assert.Equal(t, "Seal", found.Parts[0].Machine.ModelNo)
	require.Len(t, found.Files, 2)

	_, err = repo.FindServiceReportByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrServiceReportNotFound)
}

func TestServiceReportRepository_CreateParts_UnknownMachine(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := postgres.NewServiceReportRepository(db)

	author := testutil.CreateUser(t, db, "Dee", "dee@example.com", entity.RoleDistributor)
	report := testutil.CreateServiceReport(t, db, author.ID, nil, "AMC", "noise")

	err := repo.CreateParts(context.Background(), []*entity.ServiceReportPart{
		{ServiceReportID: report.ID, MachineID: uuid.New(), Quantity: 1},
	})
	assert.ErrorIs(t, err, repository.ErrMachineNotFound)
}

func TestServiceReportRepository_DeleteChildrenThenReports(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := postgres.NewServiceReportRepository(db)
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "Dee", "dee@example.com", entity.RoleDistributor)
	pump := testutil.CreateMachine(t, db, entity.EquipmentTypePump, "VP-100", "")
	sold := testutil.CreateSoldMachine(t, db, pump.ID, "SN-1", testutil.SoldMachineFixture{})
	first := testutil.CreateServiceReport(t, db, author.ID, &sold.ID, "Warranty", "a", "k/1", "k/2")
	second := testutil.CreateServiceReport(t, db, author.ID, &sold.ID, "Paid", "b", "k/3")
	untouched := testutil.CreateServiceReport(t, db, author.ID, nil, "Paid", "c", "k/4")
	testutil.AddPart(t, db, first.ID, pump.ID, 1)

	ids, err := repo.FindServiceReportIDsBySoldMachines(ctx, []uuid.UUID{sold.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{first.ID, second.ID}, ids)

	keys, err := repo.FindFileKeysByReports(ctx, ids)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"k/1", "k/2", "k/3"}, keys)

	require.NoError(t, repo.DeleteFilesByReports(ctx, ids))
	require.NoError(t, repo.DeletePartsByReports(ctx, ids))
	require.NoError(t, repo.DeleteServiceReports(ctx, ids))

	assert.EqualValues(t, 1, testutil.Count(t, db, &model.ServiceReportModel{}))
	assert.EqualValues(t, 1, testutil.Count(t, db, &model.ServiceReportFileModel{}))
	assert.EqualValues(t, 0, testutil.Count(t, db, &model.ServiceReportPartModel{}))

	authored, err := repo.FindServiceReportIDsByAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{untouched.ID}, authored)

	empty, err := repo.FindServiceReportIDsBySoldMachines(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestServiceReportRepository_ListServiceReports(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := postgres.NewServiceReportRepository(db)
	ctx := context.Background()

	dee := testutil.CreateUser(t, db, "Dee", "dee@example.com", entity.RoleDistributor)
	ada := testutil.CreateUser(t, db, "Ada", "ada@example.com", entity.RoleAdmin)
	testutil.CreateServiceReport(t, db, dee.ID, nil, "Warranty", "Pump overheating")
	testutil.CreateServiceReport(t, db, dee.ID, nil, "AMC", "Annual check")
	testutil.CreateServiceReport(t, db, ada.ID, nil, "Health Check", "Overheating again")

	own, err := repo.ListServiceReports(ctx, repository.ServiceReportFilter{AuthorID: &dee.ID}, entity.ListQuery{}.WithDefaults())
	require.NoError(t, err)
	assert.EqualValues(t, 2, own.Total)

	searched, err := repo.ListServiceReports(ctx, repository.ServiceReportFilter{}, entity.ListQuery{Search: "OVERHEAT"}.WithDefaults())
	require.NoError(t, err)
	assert.EqualValues(t, 2, searched.Total)
	for _, item := range searched.Items {
		assert.NotNil(t, item.User)
		assert.NotNil(t, item.ServiceType)
	}

	feed, err := repo.ListRecentActivities(ctx, entity.ListQuery{Search: "health"}.WithDefaults())
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "ada@example.com", feed.Items[0].User.Email)

	byAuthor, err := repo.ListRecentActivities(ctx, entity.ListQuery{Search: "dee@"}.WithDefaults())
	require.NoError(t, err)
	assert.EqualValues(t, 2, byAuthor.Total)
}

func TestServiceReportRepository_SortByReportColumn(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := postgres.NewServiceReportRepository(db)
	ctx := context.Background()

	dee := testutil.CreateUser(t, db, "Dee", "dee@example.com", entity.RoleDistributor)
	for _, problem := range []string{"b-problem", "c-problem", "a-problem"} {
		testutil.CreateServiceReport(t, db, dee.ID, nil, "Warranty", problem)
	}

	problems := func(sortBy string, order entity.SortOrder) []string {
		page, err := repo.ListServiceReports(ctx, repository.ServiceReportFilter{},
			entity.ListQuery{SortBy: sortBy, SortOrder: order}.WithDefaults())
		require.NoError(t, err)

		result := make([]string, 0, len(page.Items))
		for _, item := range page.Items {
			result = append(result, *item.Problem)
		}

		return result
	}

	assert.Equal(t, []string{"a-problem", "b-problem", "c-problem"}, problems("problem", entity.SortAsc))
	assert.Equal(t, []string{"c-problem", "b-problem", "a-problem"}, problems("problem", entity.SortDesc))
	assert.Equal(t, problems("created_at", entity.SortAsc), problems("no_such_column", entity.SortAsc))
}
