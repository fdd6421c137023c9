package postgres

import (
	"context"

	"vacuum/internal/domain/entity"
	domainerrors "vacuum/internal/domain/errors"
	"vacuum/internal/domain/repository"
	"vacuum/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var serviceReportSortColumns = newSortColumns("service_reports",
	"user_id",
	"sold_machine_id",
	"service_type_id",
	"problem",
	"solution",
	"service_person_name",
)

// serviceReportRepository implements the repository.ServiceReportRepository interface.
type serviceReportRepository struct {
	db *gorm.DB
}

// NewServiceReportRepository is the constructor for serviceReportRepository.
func NewServiceReportRepository(db *gorm.DB) repository.ServiceReportRepository {
	return &serviceReportRepository{db: db}
}

// CreateServiceReport persists the report row without its parts or files.
func (repo *serviceReportRepository) CreateServiceReport(ctx context.Context, report *entity.ServiceReport) error {
	reportM := fromServiceReportDomain(report)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(reportM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("service report references a missing record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service report")
	}

	report.ID = reportM.ID
	report.CreatedAt = reportM.CreatedAt
	report.UpdatedAt = reportM.UpdatedAt

	return nil
}

// CreateParts persists part lines in a single statement.
func (repo *serviceReportRepository) CreateParts(ctx context.Context, parts []*entity.ServiceReportPart) error {
	if len(parts) == 0 {
		return nil
	}

	rows := make([]model.ServiceReportPartModel, 0, len(parts))
	for _, part := range parts {
		rows = append(rows, fromServiceReportPartDomain(part))
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMachineNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service report parts")
	}

	for i := range rows {
		parts[i].ID = rows[i].ID
		parts[i].CreatedAt = rows[i].CreatedAt
		parts[i].UpdatedAt = rows[i].UpdatedAt
	}

	return nil
}

// CreateFiles persists file rows in a single statement.
func (repo *serviceReportRepository) CreateFiles(ctx context.Context, files []*entity.ServiceReportFile) error {
	if len(files) == 0 {
		return nil
	}

	rows := make([]model.ServiceReportFileModel, 0, len(files))
	for _, file := range files {
		rows = append(rows, fromServiceReportFileDomain(file))
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create service report files")
	}

	for i := range rows {
		files[i].ID = rows[i].ID
		files[i].CreatedAt = rows[i].CreatedAt
		files[i].UpdatedAt = rows[i].UpdatedAt
	}

	return nil
}

// FindServiceReportByID retrieves a report with everything the report view needs.
func (repo *serviceReportRepository) FindServiceReportByID(ctx context.Context, id uuid.UUID) (*entity.ServiceReport, error) {
	var reportM model.ServiceReportModel

	err := repo.db.WithContext(ctx).
		Preload("User.Role").
		Preload("ServiceType").
		Preload("SoldMachine.Machine.EquipmentType").
		Preload("Parts", func(db *gorm.DB) *gorm.DB {
			return db.Order("service_report_parts.created_at ASC")
		}).
		Preload("Parts.Machine").
		Preload("Files", func(db *gorm.DB) *gorm.DB {
			return db.Order("service_report_files.created_at ASC")
		}).
		Where("id = ?", id).
		First(&reportM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find service report")
	}

	return toServiceReportDomain(&reportM), nil
}

// FindServiceReportIDsBySoldMachines lists reports written against any of the sold units.
func (repo *serviceReportRepository) FindServiceReportIDsBySoldMachines(ctx context.Context, soldMachineIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(soldMachineIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.ServiceReportModel{}).
		Where("sold_machine_id IN ?", soldMachineIDs).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find service reports by sold machines")
	}

	return ids, nil
}

// FindServiceReportIDsByAuthor lists reports written by userID.
func (repo *serviceReportRepository) FindServiceReportIDsByAuthor(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.ServiceReportModel{}).
		Where("user_id = ?", userID).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find service reports by author")
	}

	return ids, nil
}

// FindFileKeysByReports collects the object keys attached to the reports.
func (repo *serviceReportRepository) FindFileKeysByReports(ctx context.Context, reportIDs []uuid.UUID) ([]string, error) {
	if len(reportIDs) == 0 {
		return []string{}, nil
	}

	var keys []string
	if err := repo.db.WithContext(ctx).
		Model(&model.ServiceReportFileModel{}).
		Where("service_report_id IN ?", reportIDs).
		Pluck("file_key", &keys).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find service report file keys")
	}

	return keys, nil
}

func (repo *serviceReportRepository) DeleteFilesByReports(ctx context.Context, reportIDs []uuid.UUID) error {
	if len(reportIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("service_report_id IN ?", reportIDs).
		Delete(&model.ServiceReportFileModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete service report files")
	}

	return nil
}

func (repo *serviceReportRepository) DeletePartsByReports(ctx context.Context, reportIDs []uuid.UUID) error {
	if len(reportIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("service_report_id IN ?", reportIDs).
		Delete(&model.ServiceReportPartModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete service report parts")
	}

	return nil
}

// DeletePartsByMachine removes part lines that consumed machineID.
func (repo *serviceReportRepository) DeletePartsByMachine(ctx context.Context, machineID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("machine_id = ?", machineID).
		Delete(&model.ServiceReportPartModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete service report parts by machine")
	}

	return nil
}

// DeleteServiceReports removes report rows. Missing ids are ignored.
func (repo *serviceReportRepository) DeleteServiceReports(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.ServiceReportModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete service reports")
	}

	return nil
}

// ListServiceReports pages reports, optionally restricted to one author.
func (repo *serviceReportRepository) ListServiceReports(ctx context.Context, filter repository.ServiceReportFilter, query entity.ListQuery) (*entity.Page[*entity.ServiceReport], error) {
	filtered := repo.db.WithContext(ctx).Model(&model.ServiceReportModel{})
	if filter.AuthorID != nil {
		filtered = filtered.Where("service_reports.user_id = ?", *filter.AuthorID)
	}
	filtered = applySearch(filtered, query.Search,
		"service_reports.problem",
		"service_reports.solution",
		"service_reports.service_person_name",
	)

	var rows []model.ServiceReportModel
	total, err := paginate(filtered, serviceReportSortColumns, query, &rows,
		preloading("User", "ServiceType", "SoldMachine.Machine"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service reports")
	}

	return entity.NewPage(toDomainList(rows, toServiceReportDomain), total, query), nil
}

// ListRecentActivities pages reports for the activity feed. Both joins are
// to-one so the page never repeats a report.
func (repo *serviceReportRepository) ListRecentActivities(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.ServiceReport], error) {
	filtered := repo.db.WithContext(ctx).
		Model(&model.ServiceReportModel{}).
		Joins("JOIN users ON users.id = service_reports.user_id").
		Joins("JOIN service_types ON service_types.id = service_reports.service_type_id")
	filtered = applySearch(filtered, query.Search,
		"users.name",
		"users.email",
		"service_types.service_type",
	)

	var rows []model.ServiceReportModel
	total, err := paginate(filtered, serviceReportSortColumns, query, &rows, preloading("User", "ServiceType"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent activities")
	}

	return entity.NewPage(toDomainList(rows, toServiceReportDomain), total, query), nil
}
