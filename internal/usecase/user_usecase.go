// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vacuum/internal/domain/entity"
	"vacuum/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Role        entity.RoleName
	Password    string // Forwarded to the identity provider, never stored.
}

// UserUsecase defines the interface for user management use cases.
type UserUsecase interface {
	// ResolveIdentity maps a verified session onto the user row. A user found
	// by email gets the session subject linked on first sight.
	ResolveIdentity(ctx context.Context, identity *service.SessionIdentity) (*entity.User, error)

	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListUsersByRole(ctx context.Context, role string, query entity.ListQuery) (*entity.Page[*entity.User], error)
	ListRoles(ctx context.Context) ([]*entity.Role, error)

	// DeleteUser removes the user with every report they wrote and every sale
	// they recorded. Stored files and the identity account are removed after
	// the database commit.
	DeleteUser(ctx context.Context, actor *entity.User, id uuid.UUID) error

	// RequestPasswordReset mails a reset link to an active user. Unknown or
	// inactive addresses and provider failures are logged, never reported.
	RequestPasswordReset(ctx context.Context, email string) error
}
