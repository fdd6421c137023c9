// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vacuum/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the email or external identity is taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user. The role is not written through.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user with its role.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByExternalIdentityID retrieves a user by the identity provider subject.
	FindUserByExternalIdentityID(ctx context.Context, externalID string) (*entity.User, error)

	// FindUserByEmail retrieves a user by email, ignoring case.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// LinkExternalIdentity stores the identity provider subject on a user.
	LinkExternalIdentity(ctx context.Context, id uuid.UUID, externalID string) error

	// ListUsersByRole pages through users holding roleID.
	ListUsersByRole(ctx context.Context, roleID uuid.UUID, query entity.ListQuery) (*entity.Page[*entity.User], error)

	// DeleteUser removes the user row.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
