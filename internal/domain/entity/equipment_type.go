package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// EquipmentTypePump is the catalog category for pumps.
	EquipmentTypePump = "pump"
	// EquipmentTypePart is the catalog category for spare parts.
	EquipmentTypePart = "part"
)

// DefaultEquipmentTypes are seeded on startup.
var DefaultEquipmentTypes = []string{EquipmentTypePump, EquipmentTypePart}

// EquipmentType categorizes catalog machines.
type EquipmentType struct {
	ID        uuid.UUID `json:"id"`
	TypeName  string    `json:"type_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
