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

var machineSortColumns = newSortColumns("machines", "model_no", "part_no", "type_id", "file_key").
	alias("equipment_type_id", "type_id")

// machineRepository implements the repository.MachineRepository interface.
type machineRepository struct {
	db *gorm.DB
}

// NewMachineRepository is the constructor for machineRepository.
func NewMachineRepository(db *gorm.DB) repository.MachineRepository {
	return &machineRepository{db: db}
}

// CreateMachine persists a new catalog machine.
func (repo *machineRepository) CreateMachine(ctx context.Context, machine *entity.Machine) error {
	machineM := fromMachineDomain(machine)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(machineM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePartNo
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEquipmentTypeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create machine")
	}

	machine.ID = machineM.ID
	machine.CreatedAt = machineM.CreatedAt
	machine.UpdatedAt = machineM.UpdatedAt

	return nil
}

// FindMachineByID retrieves a machine with its equipment type.
func (repo *machineRepository) FindMachineByID(ctx context.Context, id uuid.UUID) (*entity.Machine, error) {
	var machineM model.MachineModel

	if err := repo.db.WithContext(ctx).
		Preload("EquipmentType").
		Where("id = ?", id).
		First(&machineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMachineNotFound
		}

		return nil, errors.Wrap(err, "failed to find machine by ID")
	}

	return toMachineDomain(&machineM), nil
}

// FindMachinesByIDs returns the machines that exist among ids.
func (repo *machineRepository) FindMachinesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Machine, error) {
	if len(ids) == 0 {
		return []*entity.Machine{}, nil
	}

	var rows []model.MachineModel
	if err := repo.db.WithContext(ctx).
		Preload("EquipmentType").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find machines by IDs")
	}

	return toDomainList(rows, toMachineDomain), nil
}

// PartNoExists reports whether a machine other than excludeID uses partNo.
func (repo *machineRepository) PartNoExists(ctx context.Context, partNo string, excludeID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MachineModel{}).
		Where("part_no = ? AND id <> ?", partNo, excludeID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check part number")
	}

	return count > 0, nil
}

// UpdateMachine writes every scalar column of machine.
func (repo *machineRepository) UpdateMachine(ctx context.Context, machine *entity.Machine) error {
	machineM := fromMachineDomain(machine)
	machineM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.MachineModel{}).
		Where("id = ?", machine.ID).
		Select("model_no", "part_no", "type_id", "file_key", "updated_at").
		Updates(machineM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicatePartNo
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrEquipmentTypeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update machine")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMachineNotFound
	}

	machine.UpdatedAt = machineM.UpdatedAt

	return nil
}

// DeleteMachine removes the machine row only.
func (repo *machineRepository) DeleteMachine(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MachineModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete machine")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMachineNotFound
	}

	return nil
}

// ListMachinesByType pages machines of one type. Matching runs over the
// machine joined with its sold units, so the candidate ids are collapsed
// with DISTINCT first and only then counted, sorted and paged.
func (repo *machineRepository) ListMachinesByType(ctx context.Context, typeID uuid.UUID, query entity.ListQuery) (*entity.Page[*entity.Machine], error) {
	db := repo.db.WithContext(ctx)

	matching := db.Model(&model.MachineModel{}).
		Distinct("machines.id").
		Joins("LEFT JOIN sold_machines ON sold_machines.machine_id = machines.id").
		Where("machines.type_id = ?", typeID)
	matching = applySearch(matching, query.Search,
		"machines.model_no",
		"machines.part_no",
		"sold_machines.serial_no",
		"sold_machines.customer_name",
		"sold_machines.customer_email",
		"sold_machines.customer_company",
	)

	parents := db.Model(&model.MachineModel{}).Where("machines.id IN (?)", matching)

	var rows []model.MachineModel
	total, err := paginate(parents, machineSortColumns, query, &rows, func(page *gorm.DB) *gorm.DB {
		return page.
			Preload("EquipmentType").
			Preload("SoldMachines", func(sold *gorm.DB) *gorm.DB {
				return sold.Order("sold_machines.created_at ASC")
			})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list machines by type")
	}

	return entity.NewPage(toDomainList(rows, toMachineDomain), total, query), nil
}
