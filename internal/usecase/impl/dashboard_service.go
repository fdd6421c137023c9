package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"vacuum/config"
	deliverycontext "vacuum/internal/delivery/context"
	"vacuum/internal/domain/entity"
	"vacuum/internal/domain/repository"
	"vacuum/internal/domain/service"
	"vacuum/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Cache keys of the dashboard rollups.
const (
	statisticsCacheKey  = "dashboard:statistics"
	serviceTypeCacheKey = "dashboard:service_types"
	partNumbersCacheKey = "dashboard:part_numbers"
)

// distributorRoleMatch is matched as a fragment of the role name.
const distributorRoleMatch = "distributor"

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	statsRepo  repository.StatisticsRepository
	reportRepo repository.ServiceReportRepository
	cache      service.StatsCache
	cacheTTL   time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	StatsRepo  repository.StatisticsRepository
	ReportRepo repository.ServiceReportRepository
	Cache      service.StatsCache
	Config     *config.Config
	Logger     *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	var ttl time.Duration
	if params.Config.Redis != nil {
		ttl = params.Config.Redis.StatsTTL
	}

	return &dashboardService{
		statsRepo:  params.StatsRepo,
		reportRepo: params.ReportRepo,
		cache:      params.Cache,
		cacheTTL:   ttl,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetStatistics returns the headline counters.
func (srv *dashboardService) GetStatistics(ctx context.Context) (*entity.DashboardStatistics, error) {
	return cached(ctx, srv, statisticsCacheKey, srv.loadStatistics)
}

func (srv *dashboardService) loadStatistics(ctx context.Context) (*entity.DashboardStatistics, error) {
	distributors, err := srv.statsRepo.CountUsersWithRoleLike(ctx, distributorRoleMatch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count distributors")
	}
	machines, err := srv.statsRepo.CountMachines(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count machines")
	}
	sold, err := srv.statsRepo.CountSoldMachineModels(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count sold machines")
	}

	from, to := monthRange(srv.now())
	monthly, err := srv.statsRepo.CountServiceReportsBetween(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count monthly reports")
	}

	return &entity.DashboardStatistics{
		TotalDistributors:     distributors,
		SoldMachines:          sold,
		AvailableMachines:     max(machines-sold, 0),
		MonthlyServiceReports: monthly,
	}, nil
}

// monthRange returns the half-open calendar month containing now.
func monthRange(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	return from, from.AddDate(0, 1, 0)
}

// GetServiceTypeHistogram counts reports per standard service type.
func (srv *dashboardService) GetServiceTypeHistogram(ctx context.Context) ([]*entity.ServiceTypeCount, error) {
	return cached(ctx, srv, serviceTypeCacheKey, func(ctx context.Context) ([]*entity.ServiceTypeCount, error) {
		counts, err := srv.statsRepo.CountServiceReportsByType(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count reports by service type")
		}

		histogram := make([]*entity.ServiceTypeCount, 0, len(entity.DefaultServiceTypes))
		for _, name := range entity.DefaultServiceTypes {
			histogram = append(histogram, &entity.ServiceTypeCount{
				ServiceType: name,
				Count:       counts[strings.ToLower(name)],
			})
		}

		return histogram, nil
	})
}

// GetPartNumberUsage counts the reports that consumed each part number.
func (srv *dashboardService) GetPartNumberUsage(ctx context.Context) ([]*entity.PartNumberCount, error) {
	return cached(ctx, srv, partNumbersCacheKey, func(ctx context.Context) ([]*entity.PartNumberCount, error) {
		usage, err := srv.statsRepo.PartNumberUsage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count part number usage")
		}

		return usage, nil
	})
}

// ListUniqueCustomers groups sales by customer company.
func (srv *dashboardService) ListUniqueCustomers(ctx context.Context, companyFilter string) ([]*entity.CustomerSummary, error) {
	customers, err := srv.statsRepo.UniqueCustomers(ctx, strings.TrimSpace(companyFilter))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unique customers")
	}

	return customers, nil
}

// ListRecentActivities pages the latest reports as feed entries.
func (srv *dashboardService) ListRecentActivities(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.RecentActivity], error) {
	q, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	page, err := srv.reportRepo.ListRecentActivities(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent activities")
	}

	return entity.MapPage(page, toRecentActivity), nil
}

func toRecentActivity(report *entity.ServiceReport) *entity.RecentActivity {
	activity := &entity.RecentActivity{
		ID:        report.ID,
		UserName:  report.User.DisplayName(),
		Problem:   report.Problem,
		CreatedAt: report.CreatedAt,
	}
	if report.User != nil {
		activity.UserEmail = report.User.Email
	}
	if report.ServiceType != nil {
		activity.ServiceTypeName = report.ServiceType.Name
	}

	return activity
}

// cached serves key from the stats cache and fills it from load on a miss.
// Cache failures fall through to load.
func cached[T any](ctx context.Context, srv *dashboardService, key string, load func(context.Context) (T, error)) (T, error) {
	var value T

	hit, err := srv.cache.Get(ctx, key, &value)
	if err != nil {
		srv.log(ctx).Warn("Stats cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	if err == nil && hit {
		return value, nil
	}

	value, err = load(ctx)
	if err != nil {
		return value, err
	}

	if srv.cacheTTL > 0 {
		if err := srv.cache.Set(ctx, key, value, srv.cacheTTL); err != nil {
			srv.log(ctx).Warn("Stats cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return value, nil
}
