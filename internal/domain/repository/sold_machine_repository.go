package repository

import (
	"context"

	"vacuum/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for sold machine persistence.
var (
	ErrSoldMachineNotFound = errors.New("sold machine not found")
	ErrDuplicateSerialNo   = errors.New("serial number already exists")
)

// SoldMachineFilter narrows a sold machine listing.
type SoldMachineFilter struct {
	RecordedBy *uuid.UUID // Only sales recorded by this user.
}

// SoldMachineRepository defines the interface for sold unit operations.
type SoldMachineRepository interface {
	CreateSoldMachine(ctx context.Context, sold *entity.SoldMachine) error

	// FindSoldMachineByID retrieves a sold unit with its machine and type.
	FindSoldMachineByID(ctx context.Context, id uuid.UUID) (*entity.SoldMachine, error)

	// FindSoldMachineBySerialNo retrieves a sold unit with its machine and type.
	FindSoldMachineBySerialNo(ctx context.Context, serialNo string) (*entity.SoldMachine, error)

	FindSoldMachinesByMachine(ctx context.Context, machineID uuid.UUID) ([]*entity.SoldMachine, error)
	FindSoldMachinesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SoldMachine, error)

	// SerialNoExists reports whether another sold unit than excludeID uses serialNo.
	SerialNoExists(ctx context.Context, serialNo string, excludeID uuid.UUID) (bool, error)

	UpdateSoldMachine(ctx context.Context, sold *entity.SoldMachine) error
	DeleteSoldMachine(ctx context.Context, id uuid.UUID) error

	ListSoldMachines(ctx context.Context, filter SoldMachineFilter, query entity.ListQuery) (*entity.Page[*entity.SoldMachine], error)
}
