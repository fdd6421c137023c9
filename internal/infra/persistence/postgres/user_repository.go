package postgres

import (
	"context"

	"vacuum/internal/domain/entity"
	domainerrors "vacuum/internal/domain/errors"
	"vacuum/internal/domain/repository"
	"vacuum/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var userSortColumns = newSortColumns("users",
	"external_identity_id",
	"role_id",
	"name",
	"phone_number",
	"email",
	"is_active",
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// CreateUser persists a new user.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit("Role").Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUser
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindUserByID retrieves a user with its role.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "users.id = ?", id)
}

// FindUserByExternalIdentityID retrieves a user by identity provider subject.
func (repo *userRepository) FindUserByExternalIdentityID(ctx context.Context, externalID string) (*entity.User, error) {
	return repo.findOne(ctx, "users.external_identity_id = ?", externalID)
}

// FindUserByEmail retrieves a user by email, ignoring case.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "LOWER(users.email) = LOWER(?)", email)
}

func (repo *userRepository) findOne(ctx context.Context, condition string, arg any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Role").
		Where(condition, arg).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// LinkExternalIdentity stores the identity provider subject on a user.
func (repo *userRepository) LinkExternalIdentity(ctx context.Context, id uuid.UUID, externalID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("external_identity_id", externalID)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateUser
		}

		return errors.Wrap(result.Error, "failed to link external identity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ListUsersByRole pages through users holding roleID, searching name, email and phone.
func (repo *userRepository) ListUsersByRole(ctx context.Context, roleID uuid.UUID, query entity.ListQuery) (*entity.Page[*entity.User], error) {
	filtered := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("users.role_id = ?", roleID)
	filtered = applySearch(filtered, query.Search, "users.name", "users.email", "users.phone_number")

	var rows []model.UserModel
	total, err := paginate(filtered, userSortColumns, query, &rows, preloading("Role"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users by role")
	}

	return entity.NewPage(toDomainList(rows, toUserDomain), total, query), nil
}

// DeleteUser removes the user row.
func (repo *userRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
