package usecase

import (
	"context"
	"time"

	"vacuum/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSoldMachineInput defines the data required to record a sale.
type CreateSoldMachineInput struct {
	MachineID           uuid.UUID
	SerialNo            string
	CustomerCompany     *string
	CustomerName        *string
	CustomerContact     *string
	CustomerEmail       *string
	CustomerAddress     *string
	DateOfManufacturing *time.Time
}

// SaleFields holds the editable columns of a sale. Nil fields are left
// unchanged; an empty customer field clears it.
type SaleFields struct {
	SerialNo            *string
	CustomerCompany     *string
	CustomerName        *string
	CustomerContact     *string
	CustomerEmail       *string
	CustomerAddress     *string
	DateOfManufacturing *time.Time
	// ClearDateOfManufacturing removes a stored date and wins over
	// DateOfManufacturing.
	ClearDateOfManufacturing bool
}

// SoldMachineUsecase defines the interface for sale use cases. Distributors
// only see the sales they recorded.
type SoldMachineUsecase interface {
	CreateSoldMachine(ctx context.Context, actor *entity.User, input *CreateSoldMachineInput) (*entity.SoldMachine, error)
	GetSoldMachine(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.SoldMachine, error)
	ListSoldMachines(ctx context.Context, actor *entity.User, query entity.ListQuery) (*entity.Page[*entity.SoldMachine], error)
	UpdateSoldMachine(ctx context.Context, actor *entity.User, id uuid.UUID, input *SaleFields) (*entity.SoldMachine, error)

	// DeleteSoldMachine removes the sale and its reports. The catalog
	// machine stays.
	DeleteSoldMachine(ctx context.Context, actor *entity.User, id uuid.UUID) error
}
