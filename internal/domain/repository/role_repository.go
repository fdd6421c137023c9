package repository

import (
	"context"

	"vacuum/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrRoleNotFound is returned when no role has the requested name.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository reads the role table.
type RoleRepository interface {
	// FindRoleByName matches the name case-insensitively.
	FindRoleByName(ctx context.Context, name entity.RoleName) (*entity.Role, error)

	ListRoles(ctx context.Context) ([]*entity.Role, error)
}
