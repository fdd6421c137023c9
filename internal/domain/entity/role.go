// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RoleName is the name stored on a role row.
type RoleName string

const (
	// RoleAdmin manages the catalog, users and every report.
	RoleAdmin RoleName = "admin"
	// RoleDistributor records sales and files service reports.
	RoleDistributor RoleName = "distributor"
)

// String returns the string representation of the RoleName.
func (r RoleName) String() string {
	return string(r)
}

// Matches compares role names case-insensitively.
func (r RoleName) Matches(other RoleName) bool {
	return strings.EqualFold(string(r), string(other))
}

// DefaultRoles are seeded on startup.
var DefaultRoles = []RoleName{RoleAdmin, RoleDistributor}

// Role groups users by permission level.
type Role struct {
	ID        uuid.UUID `json:"id"`
	Name      RoleName  `json:"role_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
