package postgres

import (
	"context"

	"vacuum/internal/domain/entity"
	"vacuum/internal/domain/repository"
	"vacuum/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (repo *roleRepository) FindRoleByName(ctx context.Context, name entity.RoleName) (*entity.Role, error) {
	var roleM model.RoleModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(role_name) = LOWER(?)", name.String()).
		First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by name")
	}

	return toRoleDomain(&roleM), nil
}

func (repo *roleRepository) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	var rows []model.RoleModel

	if err := repo.db.WithContext(ctx).Order("role_name ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return toDomainList(rows, toRoleDomain), nil
}
