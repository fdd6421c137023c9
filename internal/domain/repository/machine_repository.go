package repository

import (
	"context"

	"vacuum/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for machine persistence.
var (
	ErrMachineNotFound = errors.New("machine not found")
	ErrDuplicatePartNo = errors.New("part number already exists")
)

// MachineRepository defines the interface for catalog machine operations.
type MachineRepository interface {
	// CreateMachine persists a new machine.
	CreateMachine(ctx context.Context, machine *entity.Machine) error

	// FindMachineByID retrieves a machine with its equipment type.
	FindMachineByID(ctx context.Context, id uuid.UUID) (*entity.Machine, error)

	// FindMachinesByIDs returns the machines that exist among ids.
	FindMachinesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Machine, error)

	// PartNoExists reports whether another machine than excludeID uses partNo.
	PartNoExists(ctx context.Context, partNo string, excludeID uuid.UUID) (bool, error)

	// UpdateMachine writes the scalar columns of machine.
	UpdateMachine(ctx context.Context, machine *entity.Machine) error

	// DeleteMachine removes the machine row only.
	DeleteMachine(ctx context.Context, id uuid.UUID) error

	// ListMachinesByType pages through machines of one equipment type. The
	// search also matches sold unit columns, yet every machine appears at most
	// once. Sold units are attached to each machine.
	ListMachinesByType(ctx context.Context, typeID uuid.UUID, query entity.ListQuery) (*entity.Page[*entity.Machine], error)
}
