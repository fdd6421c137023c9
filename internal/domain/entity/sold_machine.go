package entity

import (
	"time"

	"github.com/google/uuid"
)

// SoldMachine is one physical unit of a Machine sold to a customer. It owns
// the globally unique serial number.
type SoldMachine struct {
	ID                  uuid.UUID  `json:"id"`
	MachineID           uuid.UUID  `json:"machine_id"`
	Machine             *Machine   `json:"machine,omitempty"`
	UserID              *uuid.UUID `json:"user_id,omitempty"` // Who recorded the sale.
	SerialNo            string     `json:"serial_no"`
	CustomerCompany     *string    `json:"customer_company,omitempty"`
	CustomerName        *string    `json:"customer_name,omitempty"`
	CustomerContact     *string    `json:"customer_contact,omitempty"`
	CustomerEmail       *string    `json:"customer_email,omitempty"`
	CustomerAddress     *string    `json:"customer_address,omitempty"`
	DateOfManufacturing *time.Time `json:"date_of_manufacturing,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
