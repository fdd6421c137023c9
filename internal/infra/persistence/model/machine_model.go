package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EquipmentTypeModel mirrors the 'equipment_types' table.
type EquipmentTypeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	TypeName  string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EquipmentTypeModel) TableName() string {
	return "equipment_types"
}

func (m *EquipmentTypeModel) BeforeCreate(*gorm.DB) error {
	m.ID = newID(m.ID)

	return nil
}

// MachineModel mirrors the 'machines' table. PartNo is unique when present.
type MachineModel struct {
	ID              uuid.UUID           `gorm:"type:uuid;primary_key"`
	ModelNo         string              `gorm:"type:varchar(100);not null"`
	PartNo          *string             `gorm:"type:varchar(100);uniqueIndex"`
	EquipmentTypeID uuid.UUID           `gorm:"column:type_id;type:uuid;not null;index"`
	EquipmentType   *EquipmentTypeModel `gorm:"foreignKey:EquipmentTypeID"`
	FileKey         *string             `gorm:"type:varchar(512)"`
	SoldMachines    []SoldMachineModel  `gorm:"foreignKey:MachineID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MachineModel) TableName() string {
	return "machines"
}

func (m *MachineModel) BeforeCreate(*gorm.DB) error {
	m.ID = newID(m.ID)

	return nil
}

// SoldMachineModel mirrors the 'sold_machines' table. UserID is whoever
// recorded the sale.
type SoldMachineModel struct {
	ID                  uuid.UUID     `gorm:"type:uuid;primary_key"`
	MachineID           uuid.UUID     `gorm:"type:uuid;not null;index"`
	Machine             *MachineModel `gorm:"foreignKey:MachineID"`
	UserID              *uuid.UUID    `gorm:"type:uuid;index"`
	User                *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	SerialNo            string        `gorm:"type:varchar(100);not null;uniqueIndex"`
	CustomerCompany     *string       `gorm:"type:varchar(255)"`
	CustomerName        *string       `gorm:"type:varchar(255)"`
	CustomerContact     *string       `gorm:"type:varchar(64)"`
	CustomerEmail       *string       `gorm:"type:varchar(255)"`
	CustomerAddress     *string       `gorm:"type:text"`
	DateOfManufacturing *time.Time    `gorm:"type:date"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (SoldMachineModel) TableName() string {
	return "sold_machines"
}

func (m *SoldMachineModel) BeforeCreate(*gorm.DB) error {
	m.ID = newID(m.ID)

	return nil
}
