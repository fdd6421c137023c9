package postgres

import (
	"context"
	"strings"
	"time"

	"vacuum/internal/domain/entity"
	"vacuum/internal/domain/repository"
	"vacuum/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// statisticsRepository implements the repository.StatisticsRepository interface.
type statisticsRepository struct {
	db *gorm.DB
}

// NewStatisticsRepository is the constructor for statisticsRepository.
func NewStatisticsRepository(db *gorm.DB) repository.StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (repo *statisticsRepository) CountUsersWithRoleLike(ctx context.Context, fragment string) (int64, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(fragment))) + "%"

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where(`LOWER(roles.role_name) LIKE ? ESCAPE '\'`, pattern).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users by role")
	}

	return count, nil
}

func (repo *statisticsRepository) CountMachines(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.MachineModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count machines")
	}

	return count, nil
}

// CountSoldMachineModels counts catalog entries with at least one sale,
// not the number of sold units.
func (repo *statisticsRepository) CountSoldMachineModels(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SoldMachineModel{}).
		Distinct("machine_id").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count sold machine models")
	}

	return count, nil
}

func (repo *statisticsRepository) CountServiceReportsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ServiceReportModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count service reports")
	}

	return count, nil
}

type serviceTypeCountRow struct {
	Name  string
	Count int64
}

func (repo *statisticsRepository) CountServiceReportsByType(ctx context.Context) (map[string]int64, error) {
	var rows []serviceTypeCountRow
	if err := repo.db.WithContext(ctx).
		Table("service_reports").
		Select("LOWER(service_types.service_type) AS name, COUNT(service_reports.id) AS count").
		Joins("JOIN service_types ON service_types.id = service_reports.service_type_id").
		Group("LOWER(service_types.service_type)").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count service reports by type")
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Name] += row.Count
	}

	return counts, nil
}

type partNumberRow struct {
	PartNo       string
	ModelNo      string
	ServiceCount int64
}

func (repo *statisticsRepository) PartNumberUsage(ctx context.Context) ([]*entity.PartNumberCount, error) {
	var rows []partNumberRow
	if err := repo.db.WithContext(ctx).
		Table("service_report_parts").
		Select("machines.part_no AS part_no, machines.model_no AS model_no, COUNT(DISTINCT service_report_parts.service_report_id) AS service_count").
		Joins("JOIN machines ON machines.id = service_report_parts.machine_id").
		Where("machines.part_no IS NOT NULL").
		Group("machines.part_no, machines.model_no").
		Order("service_count DESC").
		Order("part_no ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count part number usage")
	}

	result := make([]*entity.PartNumberCount, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entity.PartNumberCount{
			PartNo:       row.PartNo,
			ModelNo:      row.ModelNo,
			ServiceCount: row.ServiceCount,
		})
	}

	return result, nil
}

type customerRow struct {
	CustomerCompany *string
	CustomerName    *string
	CustomerContact *string
	CustomerEmail   *string
	CustomerAddress *string
	MachineCount    int64
}

// UniqueCustomers folds sales whose company names differ only by case or
// surrounding space into one customer. Sales without a customer name are
// not customers.
func (repo *statisticsRepository) UniqueCustomers(ctx context.Context, companyFilter string) ([]*entity.CustomerSummary, error) {
	query := repo.db.WithContext(ctx).
		Table("sold_machines").
		Select(strings.Join([]string{
			"MAX(customer_company) AS customer_company",
			"MAX(customer_name) AS customer_name",
			"MAX(customer_contact) AS customer_contact",
			"MAX(customer_email) AS customer_email",
			"MAX(customer_address) AS customer_address",
			"COUNT(*) AS machine_count",
		}, ", ")).
		Where("customer_name IS NOT NULL AND TRIM(customer_name) <> ''")

	if companyFilter = strings.TrimSpace(companyFilter); companyFilter != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(companyFilter)) + "%"
		query = query.Where(`LOWER(customer_company) LIKE ? ESCAPE '\'`, pattern)
	}

	var rows []customerRow
	if err := query.
		Group("LOWER(TRIM(COALESCE(customer_company, '')))").
		Order("machine_count DESC").
		Order("customer_company ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list unique customers")
	}

	result := make([]*entity.CustomerSummary, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entity.CustomerSummary{
			CustomerCompany: row.CustomerCompany,
			CustomerName:    row.CustomerName,
			CustomerContact: row.CustomerContact,
			CustomerEmail:   row.CustomerEmail,
			CustomerAddress: row.CustomerAddress,
			MachineCount:    row.MachineCount,
		})
	}

	return result, nil
}
