package repository

import (
	"context"
	"time"

	"vacuum/internal/domain/entity"
)

// StatisticsRepository runs the aggregate queries behind the dashboard.
type StatisticsRepository interface {
	// CountUsersWithRoleLike counts users whose role name contains fragment, ignoring case.
	CountUsersWithRoleLike(ctx context.Context, fragment string) (int64, error)

	CountMachines(ctx context.Context) (int64, error)

	// CountSoldMachineModels counts distinct machines with at least one sale.
	CountSoldMachineModels(ctx context.Context) (int64, error)

	// CountServiceReportsBetween counts reports created in [from, to).
	CountServiceReportsBetween(ctx context.Context, from, to time.Time) (int64, error)

	// CountServiceReportsByType returns report counts keyed by lower-cased service type name.
	CountServiceReportsByType(ctx context.Context) (map[string]int64, error)

	// PartNumberUsage counts distinct reports per part number, largest first.
	PartNumberUsage(ctx context.Context) ([]*entity.PartNumberCount, error)

	// UniqueCustomers groups sales by normalized company name.
	UniqueCustomers(ctx context.Context, companyFilter string) ([]*entity.CustomerSummary, error)
}
