package entity

import (
	"time"

	"github.com/google/uuid"
)

// UnknownUserName is shown when a user has neither a name nor an email.
const UnknownUserName = "Unknown User"

// User is an account known to the back office. Authentication itself happens
// at the identity provider; ExternalIdentityID links the two.
type User struct {
	ID                 uuid.UUID  `json:"id"`
	ExternalIdentityID *string    `json:"external_identity_id,omitempty"` // Subject issued by the identity provider.
	RoleID             *uuid.UUID `json:"role_id,omitempty"`
	Role               *Role      `json:"role,omitempty"`
	Name               *string    `json:"name,omitempty"`
	PhoneNumber        *string    `json:"phone_number,omitempty"`
	Email              string     `json:"email"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// HasRole reports whether the user's role is one of names.
func (u *User) HasRole(names ...RoleName) bool {
	if u == nil || u.Role == nil {
		return false
	}

	for _, name := range names {
		if u.Role.Name.Matches(name) {
			return true
		}
	}

	return false
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// DisplayName falls back from name to email to UnknownUserName.
func (u *User) DisplayName() string {
	if u == nil {
		return UnknownUserName
	}
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	if u.Email != "" {
		return u.Email
	}

	return UnknownUserName
}
