package impl

import (
	"context"
	"log/slog"
	"strings"

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

// soldMachineService implements the SoldMachineUsecase interface.
type soldMachineService struct {
	txManager   repository.TransactionManager
	machineRepo repository.MachineRepository
	soldRepo    repository.SoldMachineRepository
	store       service.ObjectStore
	logger      *slog.Logger
}

// SoldMachineServiceParams holds dependencies for SoldMachineService, injected by Fx.
type SoldMachineServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	MachineRepo repository.MachineRepository
	SoldRepo    repository.SoldMachineRepository
	Store       service.ObjectStore
	Logger      *slog.Logger
}

// NewSoldMachineService is the constructor for soldMachineService.
func NewSoldMachineService(params SoldMachineServiceParams) usecase.SoldMachineUsecase {
	return &soldMachineService{
		txManager:   params.TxManager,
		machineRepo: params.MachineRepo,
		soldRepo:    params.SoldRepo,
		store:       params.Store,
		logger:      params.Logger,
	}
}

func (srv *soldMachineService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSoldMachine records a sale made by actor.
func (srv *soldMachineService) CreateSoldMachine(ctx context.Context, actor *entity.User, input *usecase.CreateSoldMachineInput) (*entity.SoldMachine, error) {
	serialNo := strings.TrimSpace(input.SerialNo)
	if serialNo == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("serial_no is required")
	}

	if _, err := srv.machineRepo.FindMachineByID(ctx, input.MachineID); err != nil {
		return nil, machineLookupError(err, input.MachineID)
	}

	sold := &entity.SoldMachine{MachineID: input.MachineID}
	if actor != nil {
		sold.UserID = &actor.ID
	}
	fields := &usecase.SaleFields{
		SerialNo:            &serialNo,
		CustomerCompany:     input.CustomerCompany,
		CustomerName:        input.CustomerName,
		CustomerContact:     input.CustomerContact,
		CustomerEmail:       input.CustomerEmail,
		CustomerAddress:     input.CustomerAddress,
		DateOfManufacturing: input.DateOfManufacturing,
	}
	if err := applySaleFields(ctx, srv.soldRepo, sold, fields); err != nil {
		return nil, err
	}

	if err := srv.soldRepo.CreateSoldMachine(ctx, sold); err != nil {
		return nil, saleWriteError(err, sold)
	}

	srv.log(ctx).Info("Sale recorded", slog.String("soldMachineID", sold.ID.String()), slog.String("serialNo", sold.SerialNo))

	return srv.findVisible(ctx, srv.soldRepo, actor, sold.ID)
}

// GetSoldMachine returns a sale visible to actor.
func (srv *soldMachineService) GetSoldMachine(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.SoldMachine, error) {
	return srv.findVisible(ctx, srv.soldRepo, actor, id)
}

// ListSoldMachines pages sales. Distributors only get their own.
func (srv *soldMachineService) ListSoldMachines(ctx context.Context, actor *entity.User, query entity.ListQuery) (*entity.Page[*entity.SoldMachine], error) {
	q, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	if actor == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	var filter repository.SoldMachineFilter
	if !actor.IsAdmin() {
		filter.RecordedBy = &actor.ID
	}

	page, err := srv.soldRepo.ListSoldMachines(ctx, filter, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sold machines")
	}

	return page, nil
}

// UpdateSoldMachine changes the supplied sale fields.
func (srv *soldMachineService) UpdateSoldMachine(ctx context.Context, actor *entity.User, id uuid.UUID, input *usecase.SaleFields) (*entity.SoldMachine, error) {
	sold, err := srv.findVisible(ctx, srv.soldRepo, actor, id)
	if err != nil {
		return nil, err
	}

	if err := applySaleFields(ctx, srv.soldRepo, sold, input); err != nil {
		return nil, err
	}
	if err := srv.soldRepo.UpdateSoldMachine(ctx, sold); err != nil {
		return nil, saleWriteError(err, sold)
	}

	return srv.findVisible(ctx, srv.soldRepo, actor, id)
}

// DeleteSoldMachine removes the sale and its reports. The catalog entry
// stays.
func (srv *soldMachineService) DeleteSoldMachine(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	var keys []string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		soldRepo := repoFactory.NewSoldMachineRepository()
		reportRepo := repoFactory.NewServiceReportRepository()

		if _, err := srv.findVisible(ctx, soldRepo, actor, id); err != nil {
			return err
		}

		reportIDs, err := reportRepo.FindServiceReportIDsBySoldMachines(ctx, []uuid.UUID{id})
		if err != nil {
			return errors.Wrap(err, "failed to find reports of sale")
		}
		keys, err = purgeReports(ctx, reportRepo, reportIDs)
		if err != nil {
			return err
		}

		if err := soldRepo.DeleteSoldMachine(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete sold machine")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete sold machine", slog.String("soldMachineID", id.String()), slog.Any("error", err))

		return err
	}

	removeObjects(ctx, srv.store, srv.log(ctx), keys)

	return nil
}

// findVisible hides sales recorded by someone else behind NotFound.
func (srv *soldMachineService) findVisible(ctx context.Context, soldRepo repository.SoldMachineRepository, actor *entity.User, id uuid.UUID) (*entity.SoldMachine, error) {
	sold, err := soldRepo.FindSoldMachineByID(ctx, id)
	if errors.Is(err, repository.ErrSoldMachineNotFound) {
		return nil, domainerrors.ErrSoldMachineNotFound.WithDetails(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sold machine")
	}

	if !ownedBy(actor, sold.UserID) {
		return nil, domainerrors.ErrSoldMachineNotFound.WithDetails(id.String())
	}

	return sold, nil
}
