package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	RoleName  string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

func (m *RoleModel) BeforeCreate(*gorm.DB) error {
	m.ID = newID(m.ID)

	return nil
}

// UserModel mirrors the 'users' table. ExternalIdentityID is the subject
// issued by the identity provider.
type UserModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key"`
	ExternalIdentityID *string    `gorm:"type:varchar(128);uniqueIndex"`
	RoleID             *uuid.UUID `gorm:"type:uuid;index"`
	Role               *RoleModel `gorm:"foreignKey:RoleID"`
	Name               *string    `gorm:"type:varchar(100)"`
	PhoneNumber        *string    `gorm:"type:varchar(32)"`
	Email              string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	IsActive           bool       `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(*gorm.DB) error {
	m.ID = newID(m.ID)

	return nil
}
