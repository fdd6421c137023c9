package entity

import (
	"time"

	"github.com/google/uuid"
)

// Machine is a catalog entry: a pump model or a spare part.
type Machine struct {
	ID              uuid.UUID      `json:"id"`
	ModelNo         string         `json:"model_no"`
	PartNo          *string        `json:"part_no,omitempty"`
	EquipmentTypeID uuid.UUID      `json:"type_id"`
	EquipmentType   *EquipmentType `json:"type,omitempty"`
	FileKey         *string        `json:"file_key,omitempty"` // Object store key of the catalog attachment.
	SoldMachines    []*SoldMachine `json:"sold_machines,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// TypeName returns the equipment type name when loaded.
func (m *Machine) TypeName() string {
	if m == nil || m.EquipmentType == nil {
		return ""
	}

	return m.EquipmentType.TypeName
}

// MachineSummary describes a machine removed by a cascade delete.
type MachineSummary struct {
	ID       uuid.UUID `json:"id"`
	ModelNo  string    `json:"model_no"`
	PartNo   *string   `json:"part_no,omitempty"`
	TypeName string    `json:"type_name"`
}
