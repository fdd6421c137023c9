package impl

import (
	"context"
	"log/slog"
	"strings"

	"vacuum/config"
	deliverycontext "vacuum/internal/delivery/context"
	"vacuum/internal/domain/entity"
	domainerrors "vacuum/internal/domain/errors"
	"vacuum/internal/domain/repository"
	"vacuum/internal/domain/service"
	"vacuum/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	identities service.IdentityProvider
	store      service.ObjectStore
	logger     *slog.Logger

	resetRedirect string
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	RoleRepo   repository.RoleRepository
	Identities service.IdentityProvider
	Store      service.ObjectStore
	Config     *config.Config
	Logger     *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		roleRepo:   params.RoleRepo,
		identities: params.Identities,
		store:      params.Store,
		logger:     params.Logger,

		resetRedirect: params.Config.Identity.ResetRedirectURL,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveIdentity finds the user behind a verified session.
func (srv *userService) ResolveIdentity(ctx context.Context, identity *service.SessionIdentity) (*entity.User, error) {
	if identity == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	subject := strings.TrimSpace(identity.Subject)
	email := strings.ToLower(strings.TrimSpace(identity.Email))

	if subject != "" {
		user, err := srv.userRepo.FindUserByExternalIdentityID(ctx, subject)
		if err == nil {
			return ensureActive(user)
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find user by identity")
		}
	}

	if email == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := srv.userRepo.FindUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Session for unknown user", slog.String("email", email))

		return nil, domainerrors.ErrUnauthorized
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if user.ExternalIdentityID != nil && *user.ExternalIdentityID != subject {
		srv.log(ctx).Warn("Session subject does not match linked identity", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrUnauthorized
	}
	if _, err := ensureActive(user); err != nil {
		return nil, err
	}

	if user.ExternalIdentityID == nil && subject != "" {
		if err := srv.userRepo.LinkExternalIdentity(ctx, user.ID, subject); err != nil {
			return nil, errors.Wrap(err, "failed to link identity")
		}
		user.ExternalIdentityID = &subject
		srv.log(ctx).Info("Linked identity to user", slog.String("userID", user.ID.String()))
	}

	return user, nil
}

func ensureActive(user *entity.User) (*entity.User, error) {
	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	return user, nil
}

// RegisterUser opens the account at the identity provider and stores the user.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	role, err := srv.roleRepo.FindRoleByName(ctx, input.Role)
	if errors.Is(err, repository.ErrRoleNotFound) {
		return nil, domainerrors.ErrRoleNotFound.WithDetails(input.Role.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find role")
	}

	_, err = srv.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrEmailAlreadyExists.WithDetails(email)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email")
	}

	name := trimmedOrNil(&input.Name)
	subject, err := srv.identities.CreateAccount(ctx, service.NewAccount{
		Email:       email,
		Password:    input.Password,
		DisplayName: input.Name,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create identity account", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrIdentityProviderFailed.WithDetails(email)
	}

	user := &entity.User{
		RoleID:      &role.ID,
		Role:        role,
		Name:        name,
		PhoneNumber: trimmedOrNil(&input.PhoneNumber),
		Email:       email,
		IsActive:    true,
	}
	if subject != "" {
		user.ExternalIdentityID = &subject
	}

	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		srv.removeAccount(ctx, subject)
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrEmailAlreadyExists.WithDetails(email)
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()), slog.String("role", role.Name.String()))

	return user, nil
}

// GetUser returns a user with its role.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WithDetails(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ListUsersByRole pages the users holding the named role.
func (srv *userService) ListUsersByRole(ctx context.Context, roleName string, query entity.ListQuery) (*entity.Page[*entity.User], error) {
	q, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	role, err := srv.roleRepo.FindRoleByName(ctx, entity.RoleName(strings.TrimSpace(roleName)))
	if errors.Is(err, repository.ErrRoleNotFound) {
		return nil, domainerrors.ErrRoleNotFound.WithDetails(roleName)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find role")
	}

	page, err := srv.userRepo.ListUsersByRole(ctx, role.ID, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return page, nil
}

// ListRoles returns every role.
func (srv *userService) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	roles, err := srv.roleRepo.ListRoles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}

// DeleteUser removes the user, the reports they wrote, the sales they
// recorded and the reports filed against those sales.
func (srv *userService) DeleteUser(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	if actor != nil && actor.ID == id {
		return domainerrors.ErrValidationFailed.WithDetails("users cannot delete themselves")
	}

	var deleted *entity.User
	var keys []string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		soldRepo := repoFactory.NewSoldMachineRepository()
		reportRepo := repoFactory.NewServiceReportRepository()

		user, err := userRepo.FindUserByID(ctx, id)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WithDetails(id.String())
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		authored, err := reportRepo.FindServiceReportIDsByAuthor(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find authored reports")
		}
		sales, err := soldRepo.FindSoldMachinesByUser(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find recorded sales")
		}
		saleIDs := make([]uuid.UUID, 0, len(sales))
		for _, sold := range sales {
			saleIDs = append(saleIDs, sold.ID)
		}
		onSales, err := reportRepo.FindServiceReportIDsBySoldMachines(ctx, saleIDs)
		if err != nil {
			return errors.Wrap(err, "failed to find reports of sales")
		}

		keys, err = purgeReports(ctx, reportRepo, uniqueIDs(authored, onSales))
		if err != nil {
			return err
		}
		for _, saleID := range saleIDs {
			if err := soldRepo.DeleteSoldMachine(ctx, saleID); err != nil {
				return errors.Wrap(err, "failed to delete sold machine")
			}
		}
		if err := userRepo.DeleteUser(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		deleted = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.String("userID", id.String()), slog.Any("error", err))

		return err
	}

	removeObjects(ctx, srv.store, srv.log(ctx), keys)
	if deleted.ExternalIdentityID != nil {
		srv.removeAccount(ctx, *deleted.ExternalIdentityID)
	}
	srv.log(ctx).Info("User deleted", slog.String("userID", id.String()), slog.Int("files", len(keys)))

	return nil
}

// removeAccount deletes an identity provider account. Failures are logged.
func (srv *userService) removeAccount(ctx context.Context, subject string) {
	if subject == "" {
		return
	}
	if err := srv.identities.DeleteAccount(ctx, subject); err != nil {
		srv.log(ctx).Warn("Failed to delete identity account", slog.String("subject", subject), slog.Any("error", err))
	}
}

// RequestPasswordReset asks the identity provider to mail a reset link.
func (srv *userService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	user, err := srv.userRepo.FindUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Password reset for unknown email", slog.String("email", email))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user by email")
	}
	if !user.IsActive {
		srv.log(ctx).Info("Password reset for inactive user", slog.String("userID", user.ID.String()))

		return nil
	}

	if err := srv.identities.SendPasswordReset(ctx, email, srv.resetRedirect); err != nil {
		srv.log(ctx).Error("Failed to send password reset", slog.String("userID", user.ID.String()), slog.Any("error", err))

		return nil
	}
	srv.log(ctx).Info("Password reset sent", slog.String("userID", user.ID.String()))

	return nil
}
