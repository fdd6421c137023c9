package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultServiceTypes is the fixed histogram order and the seed list.
var DefaultServiceTypes = []string{"Warranty", "AMC", "Paid", "Installation", "Health Check"}

// ServiceType categorizes a service visit.
type ServiceType struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"service_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
