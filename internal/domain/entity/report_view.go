package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceReportView is the denormalized read model of a report, used by the
// detail endpoint and the PDF renderer.
type ServiceReportView struct {
	ID                uuid.UUID         `json:"id"`
	AuthorName        string            `json:"user_name"`
	AuthorEmail       string            `json:"user_email"`
	ServiceTypeName   string            `json:"service_type_name"`
	Problem           *string           `json:"problem,omitempty"`
	Solution          *string           `json:"solution,omitempty"`
	ServicePersonName *string           `json:"service_person_name,omitempty"`
	Machine           *MachineInfo      `json:"machine_info,omitempty"`
	Customer          *CustomerInfo     `json:"customer_info,omitempty"`
	Parts             []*ReportPartView `json:"parts"`
	Files             []*ReportFileView `json:"files"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// MachineInfo identifies the serviced unit.
type MachineInfo struct {
	SerialNo            string     `json:"serial_no"`
	ModelNo             string     `json:"model_no"`
	PartNo              *string    `json:"part_no,omitempty"`
	TypeName            string     `json:"type_name"`
	DateOfManufacturing *time.Time `json:"date_of_manufacturing,omitempty"`
}

// CustomerInfo is the customer block of the serviced unit.
type CustomerInfo struct {
	Company  *string   `json:"customer_company,omitempty"`
	Name     *string   `json:"customer_name,omitempty"`
	Contact  *string   `json:"customer_contact,omitempty"`
	Email    *string   `json:"customer_email,omitempty"`
	Address  *string   `json:"customer_address,omitempty"`
	SoldDate time.Time `json:"sold_date"`
}

// ReportPartView is a consumed part joined with its catalog entry.
type ReportPartView struct {
	ID        uuid.UUID `json:"id"`
	MachineID uuid.UUID `json:"machine_id"`
	ModelNo   string    `json:"model_no"`
	PartNo    *string   `json:"part_no,omitempty"`
	Quantity  int       `json:"quantity"`
}

// ReportFileView is an attachment with a time-limited download URL.
type ReportFileView struct {
	ID      uuid.UUID `json:"id"`
	FileKey string    `json:"file_key"`
	URL     string    `json:"url"`
}
