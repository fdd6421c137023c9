package postgres

import (
	"context"
	"time"

	"vacuum/internal/domain/entity"
	domainerrors "vacuum/internal/domain/errors"
	"vacuum/internal/domain/repository"
	"vacuum/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var soldMachineSortColumns = newSortColumns("sold_machines",
	"machine_id",
	"user_id",
	"serial_no",
	"customer_company",
	"customer_name",
	"customer_contact",
	"customer_email",
	"customer_address",
	"date_of_manufacturing",
)

// soldMachineRepository implements the repository.SoldMachineRepository interface.
type soldMachineRepository struct {
	db *gorm.DB
}

// NewSoldMachineRepository is the constructor for soldMachineRepository.
func NewSoldMachineRepository(db *gorm.DB) repository.SoldMachineRepository {
	return &soldMachineRepository{db: db}
}

// CreateSoldMachine persists a new sold unit.
func (repo *soldMachineRepository) CreateSoldMachine(ctx context.Context, sold *entity.SoldMachine) error {
	soldM := fromSoldMachineDomain(sold)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(soldM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSerialNo
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMachineNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sold machine")
	}

	sold.ID = soldM.ID
	sold.CreatedAt = soldM.CreatedAt
	sold.UpdatedAt = soldM.UpdatedAt

	return nil
}

// FindSoldMachineByID retrieves a sold unit with its machine and type.
func (repo *soldMachineRepository) FindSoldMachineByID(ctx context.Context, id uuid.UUID) (*entity.SoldMachine, error) {
	return repo.findOne(ctx, "sold_machines.id = ?", id)
}

// FindSoldMachineBySerialNo retrieves a sold unit with its machine and type.
func (repo *soldMachineRepository) FindSoldMachineBySerialNo(ctx context.Context, serialNo string) (*entity.SoldMachine, error) {
	return repo.findOne(ctx, "sold_machines.serial_no = ?", serialNo)
}

func (repo *soldMachineRepository) findOne(ctx context.Context, condition string, arg any) (*entity.SoldMachine, error) {
	var soldM model.SoldMachineModel

	if err := repo.db.WithContext(ctx).
		Preload("Machine.EquipmentType").
		Where(condition, arg).
		First(&soldM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSoldMachineNotFound
		}

		return nil, errors.Wrap(err, "failed to find sold machine")
	}

	return toSoldMachineDomain(&soldM), nil
}

// FindSoldMachinesByMachine lists the sold units of a machine, oldest first.
func (repo *soldMachineRepository) FindSoldMachinesByMachine(ctx context.Context, machineID uuid.UUID) ([]*entity.SoldMachine, error) {
	return repo.findMany(ctx, "machine_id = ?", machineID)
}

// FindSoldMachinesByUser lists the sales recorded by a user, oldest first.
func (repo *soldMachineRepository) FindSoldMachinesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SoldMachine, error) {
	return repo.findMany(ctx, "user_id = ?", userID)
}

func (repo *soldMachineRepository) findMany(ctx context.Context, condition string, arg any) ([]*entity.SoldMachine, error) {
	var rows []model.SoldMachineModel

	if err := repo.db.WithContext(ctx).
		Where(condition, arg).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sold machines")
	}

	return toDomainList(rows, toSoldMachineDomain), nil
}

// SerialNoExists reports whether a sold unit other than excludeID uses serialNo.
func (repo *soldMachineRepository) SerialNoExists(ctx context.Context, serialNo string, excludeID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SoldMachineModel{}).
		Where("serial_no = ? AND id <> ?", serialNo, excludeID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check serial number")
	}

	return count > 0, nil
}

// UpdateSoldMachine writes every scalar column of sold except the parent machine.
func (repo *soldMachineRepository) UpdateSoldMachine(ctx context.Context, sold *entity.SoldMachine) error {
	soldM := fromSoldMachineDomain(sold)
	soldM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.SoldMachineModel{}).
		Where("id = ?", sold.ID).
		Select(
			"user_id",
			"serial_no",
			"customer_company",
			"customer_name",
			"customer_contact",
			"customer_email",
			"customer_address",
			"date_of_manufacturing",
			"updated_at",
		).
		Updates(soldM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSerialNo
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update sold machine")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSoldMachineNotFound
	}

	sold.UpdatedAt = soldM.UpdatedAt

	return nil
}

// DeleteSoldMachine removes the sold unit row only.
func (repo *soldMachineRepository) DeleteSoldMachine(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SoldMachineModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete sold machine")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSoldMachineNotFound
	}

	return nil
}

// ListSoldMachines pages sold units. Each sold unit has exactly one machine,
// so the join cannot duplicate rows.
func (repo *soldMachineRepository) ListSoldMachines(ctx context.Context, filter repository.SoldMachineFilter, query entity.ListQuery) (*entity.Page[*entity.SoldMachine], error) {
	filtered := repo.db.WithContext(ctx).
		Model(&model.SoldMachineModel{}).
		Joins("JOIN machines ON machines.id = sold_machines.machine_id")
	if filter.RecordedBy != nil {
		filtered = filtered.Where("sold_machines.user_id = ?", *filter.RecordedBy)
	}
	filtered = applySearch(filtered, query.Search,
		"sold_machines.serial_no",
		"machines.model_no",
		"machines.part_no",
		"sold_machines.customer_name",
		"sold_machines.customer_email",
		"sold_machines.customer_company",
	)

	var rows []model.SoldMachineModel
	total, err := paginate(filtered, soldMachineSortColumns, query, &rows, preloading("Machine.EquipmentType"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sold machines")
	}

	return entity.NewPage(toDomainList(rows, toSoldMachineDomain), total, query), nil
}
