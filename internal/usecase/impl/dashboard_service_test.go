package impl

import (
	"context"
	"testing"
	"time"

	"vacuum/internal/domain/entity"
	"vacuum/internal/domain/service"
	"vacuum/internal/infra/persistence/model"
	"vacuum/internal/infra/persistence/postgres"
	mockService "vacuum/internal/mocks/service"
	"vacuum/internal/testutil"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// noCache never holds anything.
type noCache struct{}

func (noCache) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (noCache) Set(context.Context, string, any, time.Duration) error { return nil }

func createTestDashboardService(t *testing.T, db *gorm.DB, cache service.StatsCache, now time.Time) *dashboardService {
	cfg := newTestConfig()
	cfg.Redis = nil

	srv, ok := NewDashboardService(DashboardServiceParams{
		StatsRepo:  postgres.NewStatisticsRepository(db),
		ReportRepo: postgres.NewServiceReportRepository(db),
		Cache:      cache,
		Config:     cfg,
		Logger:     newDiscardLogger(),
	}).(*dashboardService)
	require.True(t, ok)
	srv.now = func() time.Time { return now }

	return srv
}

func setCreatedAt(t *testing.T, db *gorm.DB, report *model.ServiceReportModel, at time.Time) {
	t.Helper()
	require.NoError(t, db.Model(&model.ServiceReportModel{}).Where("id = ?", report.ID).UpdateColumn("created_at", at).Error)
}

func TestDashboardService_GetStatistics(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	ada := testutil.CreateUser(t, db, "Ada", "ada@example.com", entity.RoleAdmin)
	dee := testutil.CreateUser(t, db, "Dee", "dee@example.com", entity.RoleDistributor)
	testutil.CreateUser(t, db, "Dan", "dan@example.com", entity.RoleDistributor)

	pumpA := testutil.CreateMachine(t, db, entity.EquipmentTypePump, "VP-100", "P-100")
	testutil.CreateMachine(t, db, entity.EquipmentTypePump, "VP-200", "P-200")
	testutil.CreateMachine(t, db, entity.EquipmentTypePart, "Seal", "S-1")
	testutil.CreateSoldMachine(t, db, pumpA.ID, "SN-1", testutil.SoldMachineFixture{})
	testutil.CreateSoldMachine(t, db, pumpA.ID, "SN-2", testutil.SoldMachineFixture{})

	reportTimes := []time.Time{
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.February, 28, 23, 59, 59, 0, time.UTC),
	}
	for _, at := range reportTimes {
		setCreatedAt(t, db, testutil.CreateServiceReport(t, db, dee.ID, nil, "Warranty", "visit"), at)
	}
	setCreatedAt(t, db, testutil.CreateServiceReport(t, db, ada.ID, nil, "AMC", "visit"), now)

	srv := createTestDashboardService(t, db, noCache{}, now)

	stats, err := srv.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardStatistics{
		TotalDistributors:     2,
		SoldMachines:          1,
		AvailableMachines:     2,
		MonthlyServiceReports: 3,
	}, stats)
}

func TestMonthRange(t *testing.T) {
	from, to := monthRange(time.Date(2026, time.December, 31, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestDashboardService_GetServiceTypeHistogram(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	dee := testutil.CreateUser(t, db, "Dee", "dee@example.com", entity.RoleDistributor)
	testutil.CreateServiceReport(t, db, dee.ID, nil, "Warranty", "one")
	testutil.CreateServiceReport(t, db, dee.ID, nil, "Warranty", "two")
	testutil.CreateServiceReport(t, db, dee.ID, nil, "Health Check", "three")

	srv := createTestDashboardService(t, db, noCache{}, time.Now())

	histogram, err := srv.GetServiceTypeHistogram(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.ServiceTypeCount{
		{ServiceType: "Warranty", Count: 2},
		{ServiceType: "AMC", Count: 0},
		{ServiceType: "Paid", Count: 0},
		{ServiceType: "Installation", Count: 0},
		{ServiceType: "Health Check", Count: 1},
	}, histogram)
}

func TestDashboardService_Cache(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	cached := []*entity.PartNumberCount{{PartNo: "S-1", ModelNo: "Seal", ServiceCount: 7}}

	t.Run("hit skips the database", func(t *testing.T) {
		cache := mockService.NewMockStatsCache(t)
		cache.EXPECT().
			Get(ctx, partNumbersCacheKey, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
				*dest.(*[]*entity.PartNumberCount) = cached

				return true, nil
			})

		srv := createTestDashboardService(t, db, cache, time.Now())
		usage, err := srv.GetPartNumberUsage(ctx)
		require.NoError(t, err)
		assert.Equal(t, cached, usage)
	})

	t.Run("miss fills the cache", func(t *testing.T) {
		cache := mockService.NewMockStatsCache(t)
		cache.EXPECT().Get(ctx, partNumbersCacheKey, mock.Anything).Return(false, nil)
		cache.EXPECT().Set(ctx, partNumbersCacheKey, mock.Anything, time.Minute).Return(nil)

		srv := createTestDashboardService(t, db, cache, time.Now())
		srv.cacheTTL = time.Minute

		usage, err := srv.GetPartNumberUsage(ctx)
		require.NoError(t, err)
		assert.Empty(t, usage)
	})

	t.Run("broken cache is bypassed", func(t *testing.T) {
		cache := mockService.NewMockStatsCache(t)
		cache.EXPECT().Get(ctx, statisticsCacheKey, mock.Anything).Return(false, errors.New("connection refused"))
		cache.EXPECT().Set(ctx, statisticsCacheKey, mock.Anything, time.Minute).Return(errors.New("connection refused"))

		srv := createTestDashboardService(t, db, cache, time.Now())
		srv.cacheTTL = time.Minute

		stats, err := srv.GetStatistics(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.TotalDistributors)
	})
}

func TestDashboardService_Lists(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	dee := testutil.CreateUser(t, db, "Dee", "dee@example.com", entity.RoleDistributor)
	pump := testutil.CreateMachine(t, db, entity.EquipmentTypePump, "VP-100", "P-100")
	testutil.CreateSoldMachine(t, db, pump.ID, "SN-1", testutil.SoldMachineFixture{CustomerCompany: "Acme", CustomerName: "Jo"})
	testutil.CreateSoldMachine(t, db, pump.ID, "SN-2", testutil.SoldMachineFixture{CustomerCompany: "Beta", CustomerName: "Kim"})
	report := testutil.CreateServiceReport(t, db, dee.ID, nil, "Paid", "leak")

	srv := createTestDashboardService(t, db, noCache{}, time.Now())

	customers, err := srv.ListUniqueCustomers(ctx, " acm ")
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Acme", *customers[0].CustomerCompany)
	assert.EqualValues(t, 1, customers[0].MachineCount)

	page, err := srv.ListRecentActivities(ctx, entity.ListQuery{Search: "paid"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	activity := page.Items[0]
	assert.Equal(t, report.ID, activity.ID)
	assert.Equal(t, "Dee", activity.UserName)
	assert.Equal(t, "dee@example.com", activity.UserEmail)
	assert.Equal(t, "Paid", activity.ServiceTypeName)
	assert.Equal(t, "leak", *activity.Problem)

	_, err = srv.ListRecentActivities(ctx, entity.ListQuery{Limit: 1000})
	require.Error(t, err)
}
