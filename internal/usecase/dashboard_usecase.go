package usecase

import (
	"context"

	"vacuum/internal/domain/entity"
)

// DashboardUsecase defines the interface for the statistics shown on the dashboard.
type DashboardUsecase interface {
	GetStatistics(ctx context.Context) (*entity.DashboardStatistics, error)

	// GetServiceTypeHistogram always lists every standard service type.
	GetServiceTypeHistogram(ctx context.Context) ([]*entity.ServiceTypeCount, error)

	GetPartNumberUsage(ctx context.Context) ([]*entity.PartNumberCount, error)
	ListUniqueCustomers(ctx context.Context, companyFilter string) ([]*entity.CustomerSummary, error)
	ListRecentActivities(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.RecentActivity], error)
}
