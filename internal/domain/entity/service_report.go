package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPartQuantity applies when a part line omits its quantity.
const DefaultPartQuantity = 1

// ServiceReport records one service visit, optionally against a sold unit.
type ServiceReport struct {
	ID                uuid.UUID            `json:"id"`
	UserID            uuid.UUID            `json:"user_id"` // Author.
	User              *User                `json:"user,omitempty"`
	SoldMachineID     *uuid.UUID           `json:"sold_machine_id,omitempty"`
	SoldMachine       *SoldMachine         `json:"sold_machine,omitempty"`
	ServiceTypeID     uuid.UUID            `json:"service_type_id"`
	ServiceType       *ServiceType         `json:"service_type,omitempty"`
	Problem           *string              `json:"problem,omitempty"`
	Solution          *string              `json:"solution,omitempty"`
	ServicePersonName *string              `json:"service_person_name,omitempty"`
	Parts             []*ServiceReportPart `json:"parts,omitempty"`
	Files             []*ServiceReportFile `json:"files,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// ServiceReportPart is a catalog machine consumed during a visit.
type ServiceReportPart struct {
	ID              uuid.UUID `json:"id"`
	ServiceReportID uuid.UUID `json:"service_report_id"`
	MachineID       uuid.UUID `json:"machine_id"`
	Machine         *Machine  `json:"machine,omitempty"`
	Quantity        int       `json:"quantity"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ServiceReportFile points at an attachment in the object store.
type ServiceReportFile struct {
	ID              uuid.UUID `json:"id"`
	ServiceReportID uuid.UUID `json:"service_report_id"`
	FileKey         string    `json:"file_key"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
