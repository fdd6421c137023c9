package repository

import (
	"context"

	"vacuum/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrEquipmentTypeNotFound = errors.New("equipment type not found")
	ErrServiceTypeNotFound   = errors.New("service type not found")
)

// CatalogRepository reads the small lookup tables: equipment types and
// service types.
type CatalogRepository interface {
	// FindEquipmentTypeByName matches the name case-insensitively.
	FindEquipmentTypeByName(ctx context.Context, name string) (*entity.EquipmentType, error)
	FindEquipmentTypeByID(ctx context.Context, id uuid.UUID) (*entity.EquipmentType, error)
	ListEquipmentTypes(ctx context.Context) ([]*entity.EquipmentType, error)

	FindServiceTypeByID(ctx context.Context, id uuid.UUID) (*entity.ServiceType, error)
	ListServiceTypes(ctx context.Context) ([]*entity.ServiceType, error)
}
