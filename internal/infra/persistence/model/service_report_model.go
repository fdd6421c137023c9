package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceTypeModel mirrors the 'service_types' table.
type ServiceTypeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	ServiceType string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceTypeModel) TableName() string {
	return "service_types"
}

func (m *ServiceTypeModel) BeforeCreate(*gorm.DB) error {
	m.ID = newID(m.ID)

	return nil
}

// ServiceReportModel mirrors the 'service_reports' table.
type ServiceReportModel struct {
	ID                uuid.UUID                `gorm:"type:uuid;primary_key"`
	UserID            uuid.UUID                `gorm:"type:uuid;not null;index"`
	User              *UserModel               `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	SoldMachineID     *uuid.UUID               `gorm:"type:uuid;index"`
	SoldMachine       *SoldMachineModel        `gorm:"foreignKey:SoldMachineID;constraint:OnDelete:CASCADE"`
	ServiceTypeID     uuid.UUID                `gorm:"type:uuid;not null;index"`
	ServiceType       *ServiceTypeModel        `gorm:"foreignKey:ServiceTypeID"`
	Problem           *string                  `gorm:"type:text"`
	Solution          *string                  `gorm:"type:text"`
	ServicePersonName *string                  `gorm:"type:varchar(255)"`
	Parts             []ServiceReportPartModel `gorm:"foreignKey:ServiceReportID;constraint:OnDelete:CASCADE"`
	Files             []ServiceReportFileModel `gorm:"foreignKey:ServiceReportID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time                `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceReportModel) TableName() string {
	return "service_reports"
}

func (m *ServiceReportModel) BeforeCreate(*gorm.DB) error {
	m.ID = newID(m.ID)

	return nil
}

// ServiceReportPartModel mirrors the 'service_report_parts' table: a machine
// consumed as a part during a visit.
type ServiceReportPartModel struct {
	ID              uuid.UUID     `gorm:"type:uuid;primary_key"`
	ServiceReportID uuid.UUID     `gorm:"type:uuid;not null;index"`
	MachineID       uuid.UUID     `gorm:"type:uuid;not null;index"`
	Machine         *MachineModel `gorm:"foreignKey:MachineID;constraint:OnDelete:CASCADE"`
	Quantity        int           `gorm:"not null;default:1;check:quantity >= 1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceReportPartModel) TableName() string {
	return "service_report_parts"
}

func (m *ServiceReportPartModel) BeforeCreate(*gorm.DB) error {
	m.ID = newID(m.ID)

	return nil
}

// ServiceReportFileModel mirrors the 'service_report_files' table.
type ServiceReportFileModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	ServiceReportID uuid.UUID `gorm:"type:uuid;not null;index"`
	FileKey         string    `gorm:"type:varchar(512);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceReportFileModel) TableName() string {
	return "service_report_files"
}

func (m *ServiceReportFileModel) BeforeCreate(*gorm.DB) error {
	m.ID = newID(m.ID)

	return nil
}
