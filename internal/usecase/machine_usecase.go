package usecase

import (
	"context"

	"vacuum/internal/domain/entity"

	"github.com/google/uuid"
)

// FileUpload is a file received with a request.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateMachineInput defines the data required to add a catalog machine.
type CreateMachineInput struct {
	TypeName string
	ModelNo  string
	PartNo   *string
	File     *FileUpload
}

// SaleInput carries a sale to create or update alongside a machine.
// SoldMachineID picks the sale when the machine has several.
type SaleInput struct {
	SoldMachineID *uuid.UUID
	SaleFields
}

// UpdateMachineInput holds the fields to change. Nil fields are left
// unchanged; an empty PartNo clears it.
type UpdateMachineInput struct {
	TypeName *string
	ModelNo  *string
	PartNo   *string
	File     *FileUpload
	Sale     *SaleInput
}

// MachineLookup is the answer to a serial number lookup.
type MachineLookup struct {
	Machine     *entity.Machine     `json:"machine"`
	SoldMachine *entity.SoldMachine `json:"sold_machine"`
	FileURL     string              `json:"file_url,omitempty"`
}

// MachineUsecase defines the interface for catalog machine use cases.
type MachineUsecase interface {
	CreateMachine(ctx context.Context, input *CreateMachineInput) (*entity.Machine, error)
	GetMachine(ctx context.Context, id uuid.UUID) (*entity.Machine, error)
	ListMachinesByType(ctx context.Context, typeName string, query entity.ListQuery) (*entity.Page[*entity.Machine], error)
	UpdateMachine(ctx context.Context, actor *entity.User, id uuid.UUID, input *UpdateMachineInput) (*entity.Machine, error)

	// DeleteMachine removes the machine together with its sales, their
	// reports, and the part lines that used it.
	DeleteMachine(ctx context.Context, id uuid.UUID) (*entity.MachineSummary, error)

	LookupBySerial(ctx context.Context, serialNo string) (*MachineLookup, error)
	ListEquipmentTypes(ctx context.Context) ([]*entity.EquipmentType, error)
}
