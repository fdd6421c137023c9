package entity

import (
	"time"

	"github.com/google/uuid"
)

// DashboardStatistics is the headline rollup shown on the dashboard.
type DashboardStatistics struct {
	TotalDistributors     int64 `json:"total_distributors"`
	SoldMachines          int64 `json:"sold_machines"`
	AvailableMachines     int64 `json:"available_machines"`
	MonthlyServiceReports int64 `json:"monthly_service_reports"`
}

// ServiceTypeCount is one bucket of the service type histogram.
type ServiceTypeCount struct {
	ServiceType string `json:"service_type"`
	Count       int64  `json:"count"`
}

// PartNumberCount is the number of distinct reports that consumed a part.
type PartNumberCount struct {
	PartNo       string `json:"part_no"`
	ModelNo      string `json:"model_no"`
	ServiceCount int64  `json:"service_count"`
}

// CustomerSummary groups sold units by customer company.
type CustomerSummary struct {
	CustomerCompany *string `json:"customer_company,omitempty"`
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerContact *string `json:"customer_contact,omitempty"`
	CustomerEmail   *string `json:"customer_email,omitempty"`
	CustomerAddress *string `json:"customer_address,omitempty"`
	MachineCount    int64   `json:"machine_count"`
}

// RecentActivity is a service report flattened for the activity feed.
type RecentActivity struct {
	ID              uuid.UUID `json:"id"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	ServiceTypeName string    `json:"service_type_name"`
	Problem         *string   `json:"problem,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
