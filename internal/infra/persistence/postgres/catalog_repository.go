package postgres

import (
	"context"

	"vacuum/internal/domain/entity"
	"vacuum/internal/domain/repository"
	"vacuum/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository serves the equipment type and service type lookups.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (repo *catalogRepository) FindEquipmentTypeByName(ctx context.Context, name string) (*entity.EquipmentType, error) {
	return repo.findEquipmentType(ctx, "LOWER(type_name) = LOWER(?)", name)
}

func (repo *catalogRepository) FindEquipmentTypeByID(ctx context.Context, id uuid.UUID) (*entity.EquipmentType, error) {
	return repo.findEquipmentType(ctx, "id = ?", id)
}

func (repo *catalogRepository) findEquipmentType(ctx context.Context, condition string, arg any) (*entity.EquipmentType, error) {
	var typeM model.EquipmentTypeModel

	if err := repo.db.WithContext(ctx).Where(condition, arg).First(&typeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEquipmentTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find equipment type")
	}

	return toEquipmentTypeDomain(&typeM), nil
}

func (repo *catalogRepository) ListEquipmentTypes(ctx context.Context) ([]*entity.EquipmentType, error) {
	var rows []model.EquipmentTypeModel

	if err := repo.db.WithContext(ctx).Order("type_name ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list equipment types")
	}

	return toDomainList(rows, toEquipmentTypeDomain), nil
}

func (repo *catalogRepository) FindServiceTypeByID(ctx context.Context, id uuid.UUID) (*entity.ServiceType, error) {
	var typeM model.ServiceTypeModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&typeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find service type")
	}

	return toServiceTypeDomain(&typeM), nil
}

func (repo *catalogRepository) ListServiceTypes(ctx context.Context) ([]*entity.ServiceType, error) {
	var rows []model.ServiceTypeModel

	if err := repo.db.WithContext(ctx).Order("service_type ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list service types")
	}

	return toDomainList(rows, toServiceTypeDomain), nil
}
