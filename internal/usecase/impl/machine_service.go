package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"vacuum/config"
	deliverycontext "vacuum/internal/delivery/context"
	"vacuum/internal/domain/entity"
	domainerrors "vacuum/internal/domain/errors"
	"vacuum/internal/domain/repository"
	"vacuum/internal/domain/service"
	"vacuum/internal/usecase"
	"vacuum/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const machineFolder = "machines"

// machineService implements the MachineUsecase interface.
type machineService struct {
	txManager   repository.TransactionManager
	catalogRepo repository.CatalogRepository
	machineRepo repository.MachineRepository
	soldRepo    repository.SoldMachineRepository
	store       service.ObjectStore
	presignTTL  time.Duration
	logger      *slog.Logger
}

// MachineServiceParams holds dependencies for MachineService, injected by Fx.
type MachineServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CatalogRepo repository.CatalogRepository
	MachineRepo repository.MachineRepository
	SoldRepo    repository.SoldMachineRepository
	Store       service.ObjectStore
	Config      *config.Config
	Logger      *slog.Logger
}

// NewMachineService is the constructor for machineService.
func NewMachineService(params MachineServiceParams) usecase.MachineUsecase {
	return &machineService{
		txManager:   params.TxManager,
		catalogRepo: params.CatalogRepo,
		machineRepo: params.MachineRepo,
		soldRepo:    params.SoldRepo,
		store:       params.Store,
		presignTTL:  params.Config.ObjectStore.PresignTTL,
		logger:      params.Logger,
	}
}

func (srv *machineService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMachine adds a catalog entry and stores its attachment.
func (srv *machineService) CreateMachine(ctx context.Context, input *usecase.CreateMachineInput) (*entity.Machine, error) {
	modelNo := strings.TrimSpace(input.ModelNo)
	if modelNo == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("model_no is required")
	}
	partNo := trimmedOrNil(input.PartNo)

	equipmentType, err := srv.findEquipmentType(ctx, input.TypeName)
	if err != nil {
		return nil, err
	}
	if partNo != nil {
		if err := srv.ensurePartNoFree(ctx, *partNo, uuid.Nil); err != nil {
			return nil, err
		}
	}

	machine := &entity.Machine{
		ModelNo:         modelNo,
		PartNo:          partNo,
		EquipmentTypeID: equipmentType.ID,
		EquipmentType:   equipmentType,
	}

	if input.File != nil {
		key, err := srv.uploadMachineFile(ctx, machine, input.File)
		if err != nil {
			return nil, err
		}
		machine.FileKey = &key
	}

	if err := srv.machineRepo.CreateMachine(ctx, machine); err != nil {
		if machine.FileKey != nil {
			removeObjects(ctx, srv.store, srv.log(ctx), []string{*machine.FileKey})
		}

		return nil, machineWriteError(err, machine)
	}

	srv.log(ctx).Info("Machine created", slog.String("machineID", machine.ID.String()), slog.String("type", equipmentType.TypeName))

	return machine, nil
}

// GetMachine returns a catalog entry with its sales.
func (srv *machineService) GetMachine(ctx context.Context, id uuid.UUID) (*entity.Machine, error) {
	machine, err := srv.machineRepo.FindMachineByID(ctx, id)
	if err != nil {
		return nil, machineLookupError(err, id)
	}

	sales, err := srv.soldRepo.FindSoldMachinesByMachine(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sales of machine")
	}
	machine.SoldMachines = sales

	return machine, nil
}

// ListMachinesByType pages the machines of one equipment type.
func (srv *machineService) ListMachinesByType(ctx context.Context, typeName string, query entity.ListQuery) (*entity.Page[*entity.Machine], error) {
	q, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	equipmentType, err := srv.findEquipmentType(ctx, typeName)
	if err != nil {
		return nil, err
	}

	page, err := srv.machineRepo.ListMachinesByType(ctx, equipmentType.ID, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list machines")
	}

	return page, nil
}

// UpdateMachine changes the supplied fields. A replacement file is uploaded
// before the transaction and the previous one is removed after the commit.
func (srv *machineService) UpdateMachine(ctx context.Context, actor *entity.User, id uuid.UUID, input *usecase.UpdateMachineInput) (*entity.Machine, error) {
	machine, err := srv.machineRepo.FindMachineByID(ctx, id)
	if err != nil {
		return nil, machineLookupError(err, id)
	}

	if err := srv.applyMachineFields(ctx, machine, input); err != nil {
		return nil, err
	}

	var uploadedKey, previousKey *string
	if input.File != nil {
		key, err := srv.uploadMachineFile(ctx, machine, input.File)
		if err != nil {
			return nil, err
		}
		uploadedKey = &key
		previousKey = machine.FileKey
		machine.FileKey = uploadedKey
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewMachineRepository().UpdateMachine(ctx, machine); err != nil {
			return machineWriteError(err, machine)
		}
		if input.Sale == nil {
			return nil
		}

		return srv.upsertSale(ctx, repoFactory.NewSoldMachineRepository(), machine.ID, actor, input.Sale)
	})
	if err != nil {
		if uploadedKey != nil {
			removeObjects(ctx, srv.store, srv.log(ctx), []string{*uploadedKey})
		}
		srv.log(ctx).Error("Failed to update machine", slog.String("machineID", id.String()), slog.Any("error", err))

		return nil, err
	}

	if previousKey != nil {
		removeObjects(ctx, srv.store, srv.log(ctx), []string{*previousKey})
	}

	return srv.GetMachine(ctx, id)
}

func (srv *machineService) applyMachineFields(ctx context.Context, machine *entity.Machine, input *usecase.UpdateMachineInput) error {
	if input.TypeName != nil {
		equipmentType, err := srv.findEquipmentType(ctx, *input.TypeName)
		if err != nil {
			return err
		}
		machine.EquipmentTypeID = equipmentType.ID
		machine.EquipmentType = equipmentType
	}

	if input.ModelNo != nil {
		modelNo := strings.TrimSpace(*input.ModelNo)
		if modelNo == "" {
			return domainerrors.ErrValidationFailed.WithDetails("model_no must not be empty")
		}
		machine.ModelNo = modelNo
	}

	if input.PartNo != nil {
		partNo := trimmedOrNil(input.PartNo)
		if partNo != nil {
			if err := srv.ensurePartNoFree(ctx, *partNo, machine.ID); err != nil {
				return err
			}
		}
		machine.PartNo = partNo
	}

	return nil
}

// upsertSale writes the sale block of a machine update. Without an explicit
// id, a machine without sales gets a new one and a machine with exactly one
// sale has it updated.
func (srv *machineService) upsertSale(ctx context.Context, soldRepo repository.SoldMachineRepository, machineID uuid.UUID, actor *entity.User, input *usecase.SaleInput) error {
	if input.SoldMachineID != nil {
		sold, err := soldRepo.FindSoldMachineByID(ctx, *input.SoldMachineID)
		if errors.Is(err, repository.ErrSoldMachineNotFound) {
			return domainerrors.ErrSoldMachineNotFound.WithDetails(input.SoldMachineID.String())
		}
		if err != nil {
			return errors.Wrap(err, "failed to find sold machine")
		}
		if sold.MachineID != machineID {
			return domainerrors.ErrValidationFailed.WithDetailsf("sold machine %s does not belong to machine %s", sold.ID, machineID)
		}

		return srv.updateSale(ctx, soldRepo, sold, &input.SaleFields)
	}

	sales, err := soldRepo.FindSoldMachinesByMachine(ctx, machineID)
	if err != nil {
		return errors.Wrap(err, "failed to load sales of machine")
	}

	switch len(sales) {
	case 0:
		if input.SerialNo == nil || strings.TrimSpace(*input.SerialNo) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("serial_no is required to record a sale")
		}

		sold := &entity.SoldMachine{MachineID: machineID}
		if actor != nil {
			sold.UserID = &actor.ID
		}
		if err := applySaleFields(ctx, soldRepo, sold, &input.SaleFields); err != nil {
			return err
		}
		if err := soldRepo.CreateSoldMachine(ctx, sold); err != nil {
			return saleWriteError(err, sold)
		}

		return nil
	case 1:
		return srv.updateSale(ctx, soldRepo, sales[0], &input.SaleFields)
	default:
		return domainerrors.ErrValidationFailed.WithDetails("sold_machine_id is required when the machine has several sales")
	}
}

func (srv *machineService) updateSale(ctx context.Context, soldRepo repository.SoldMachineRepository, sold *entity.SoldMachine, fields *usecase.SaleFields) error {
	if err := applySaleFields(ctx, soldRepo, sold, fields); err != nil {
		return err
	}
	if err := soldRepo.UpdateSoldMachine(ctx, sold); err != nil {
		return saleWriteError(err, sold)
	}

	return nil
}

// DeleteMachine removes the machine with its sales, their reports and the
// part lines that consumed it.
func (srv *machineService) DeleteMachine(ctx context.Context, id uuid.UUID) (*entity.MachineSummary, error) {
	var summary *entity.MachineSummary
	var keys []string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		machineRepo := repoFactory.NewMachineRepository()
		soldRepo := repoFactory.NewSoldMachineRepository()
		reportRepo := repoFactory.NewServiceReportRepository()

		machine, err := machineRepo.FindMachineByID(ctx, id)
		if err != nil {
			return machineLookupError(err, id)
		}

		sales, err := soldRepo.FindSoldMachinesByMachine(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load sales of machine")
		}
		saleIDs := make([]uuid.UUID, 0, len(sales))
		for _, sold := range sales {
			saleIDs = append(saleIDs, sold.ID)
		}

		reportIDs, err := reportRepo.FindServiceReportIDsBySoldMachines(ctx, saleIDs)
		if err != nil {
			return errors.Wrap(err, "failed to find reports of sales")
		}
		keys, err = purgeReports(ctx, reportRepo, reportIDs)
		if err != nil {
			return err
		}

		for _, saleID := range saleIDs {
			if err := soldRepo.DeleteSoldMachine(ctx, saleID); err != nil {
				return errors.Wrap(err, "failed to delete sold machine")
			}
		}
		if err := reportRepo.DeletePartsByMachine(ctx, id); err != nil {
			return err
		}
		if err := machineRepo.DeleteMachine(ctx, id); err != nil {
			return machineLookupError(err, id)
		}

		if machine.FileKey != nil {
			keys = append(keys, *machine.FileKey)
		}
		summary = &entity.MachineSummary{
			ID:       machine.ID,
			ModelNo:  machine.ModelNo,
			PartNo:   machine.PartNo,
			TypeName: machine.TypeName(),
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete machine", slog.String("machineID", id.String()), slog.Any("error", err))

		return nil, err
	}

	removeObjects(ctx, srv.store, srv.log(ctx), keys)
	srv.log(ctx).Info("Machine deleted", slog.String("machineID", id.String()), slog.Int("files", len(keys)))

	return summary, nil
}

// LookupBySerial finds the sale carrying serialNo together with its catalog
// entry and a download link for the catalog file.
func (srv *machineService) LookupBySerial(ctx context.Context, serialNo string) (*usecase.MachineLookup, error) {
	serialNo = strings.TrimSpace(serialNo)
	if serialNo == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("serial_no is required")
	}

	sold, err := srv.soldRepo.FindSoldMachineBySerialNo(ctx, serialNo)
	if errors.Is(err, repository.ErrSoldMachineNotFound) {
		return nil, domainerrors.ErrSoldMachineNotFound.WithDetails(serialNo)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sold machine by serial number")
	}

	lookup := &usecase.MachineLookup{Machine: sold.Machine, SoldMachine: sold}
	if sold.Machine != nil && sold.Machine.FileKey != nil {
		lookup.FileURL = fileURL(ctx, srv.store, srv.log(ctx), *sold.Machine.FileKey, srv.presignTTL)
	}

	return lookup, nil
}

// ListEquipmentTypes returns every equipment type.
func (srv *machineService) ListEquipmentTypes(ctx context.Context) ([]*entity.EquipmentType, error) {
	types, err := srv.catalogRepo.ListEquipmentTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list equipment types")
	}

	return types, nil
}

func (srv *machineService) findEquipmentType(ctx context.Context, name string) (*entity.EquipmentType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("equipment type is required")
	}

	equipmentType, err := srv.catalogRepo.FindEquipmentTypeByName(ctx, name)
	if errors.Is(err, repository.ErrEquipmentTypeNotFound) {
		return nil, domainerrors.ErrEquipmentTypeNotFound.WithDetails(name)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find equipment type")
	}

	return equipmentType, nil
}

func (srv *machineService) ensurePartNoFree(ctx context.Context, partNo string, excludeID uuid.UUID) error {
	taken, err := srv.machineRepo.PartNoExists(ctx, partNo, excludeID)
	if err != nil {
		return errors.Wrap(err, "failed to check part number")
	}
	if taken {
		return domainerrors.ErrPartNoAlreadyExists.WithDetails(partNo)
	}

	return nil
}

// uploadMachineFile stores a catalog attachment under the part number, or
// the model number when the machine has none.
func (srv *machineService) uploadMachineFile(ctx context.Context, machine *entity.Machine, file *usecase.FileUpload) (string, error) {
	label := machine.ModelNo
	if machine.PartNo != nil {
		label = *machine.PartNo
	}

	key, err := srv.store.Upload(ctx, service.UploadObject{
		Folder:      machineFolder + "/" + label,
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Data:        file.Data,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to upload machine file", slog.String("filename", file.Filename), slog.Any("error", err))

		return "", domainerrors.ErrFileUploadFailed.WithDetails(file.Filename)
	}
	srv.log(ctx).Debug("Machine file stored", slog.String("key", key), slog.String("size", util.FormatBytes(int64(len(file.Data)))))

	return key, nil
}

func machineLookupError(err error, id uuid.UUID) error {
	if errors.Is(err, repository.ErrMachineNotFound) {
		return domainerrors.ErrMachineNotFound.WithDetails(id.String())
	}

	return errors.Wrap(err, "failed to find machine")
}

func machineWriteError(err error, machine *entity.Machine) error {
	switch {
	case errors.Is(err, repository.ErrDuplicatePartNo):
		partNo := ""
		if machine.PartNo != nil {
			partNo = *machine.PartNo
		}

		return domainerrors.ErrPartNoAlreadyExists.WithDetails(partNo)
	case errors.Is(err, repository.ErrEquipmentTypeNotFound):
		return domainerrors.ErrEquipmentTypeNotFound.WithDetails(machine.EquipmentTypeID.String())
	case errors.Is(err, repository.ErrMachineNotFound):
		return domainerrors.ErrMachineNotFound.WithDetails(machine.ID.String())
	default:
		return errors.Wrap(err, "failed to save machine")
	}
}
