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
	"vacuum/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const serviceReportFolder = "service_reports"

// serviceReportService implements the ServiceReportUsecase interface.
type serviceReportService struct {
	txManager   repository.TransactionManager
	catalogRepo repository.CatalogRepository
	machineRepo repository.MachineRepository
	soldRepo    repository.SoldMachineRepository
	reportRepo  repository.ServiceReportRepository
	store       service.ObjectStore
	renderer    service.DocumentRenderer
	assembler   *reportAssembler
	logger      *slog.Logger
}

// ServiceReportServiceParams holds dependencies for ServiceReportService, injected by Fx.
type ServiceReportServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CatalogRepo repository.CatalogRepository
	MachineRepo repository.MachineRepository
	SoldRepo    repository.SoldMachineRepository
	ReportRepo  repository.ServiceReportRepository
	Store       service.ObjectStore
	Renderer    service.DocumentRenderer
	Config      *config.Config
	Logger      *slog.Logger
}

// NewServiceReportService is the constructor for serviceReportService.
func NewServiceReportService(params ServiceReportServiceParams) usecase.ServiceReportUsecase {
	return &serviceReportService{
		txManager:   params.TxManager,
		catalogRepo: params.CatalogRepo,
		machineRepo: params.MachineRepo,
		soldRepo:    params.SoldRepo,
		reportRepo:  params.ReportRepo,
		store:       params.Store,
		renderer:    params.Renderer,
		assembler: &reportAssembler{
			store:            params.Store,
			presignTTL:       params.Config.ObjectStore.PresignTTL,
			organizationName: params.Config.Report.OrganizationName,
		},
		logger: params.Logger,
	}
}

func (srv *serviceReportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateServiceReport checks every reference, uploads the attachments and
// writes the report with its parts and files in one transaction.
func (srv *serviceReportService) CreateServiceReport(ctx context.Context, actor *entity.User, input *usecase.CreateServiceReportInput) (*entity.ServiceReportView, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	parts, err := srv.validateReferences(ctx, input)
	if err != nil {
		return nil, err
	}

	reportID, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate report ID")
	}
	for _, part := range parts {
		part.ServiceReportID = reportID
	}

	report := &entity.ServiceReport{
		ID:                reportID,
		UserID:            actor.ID,
		SoldMachineID:     input.SoldMachineID,
		ServiceTypeID:     input.ServiceTypeID,
		Problem:           trimmedOrNil(input.Problem),
		Solution:          trimmedOrNil(input.Solution),
		ServicePersonName: trimmedOrNil(input.ServicePersonName),
	}

	files := srv.uploadAttachments(ctx, reportID, input.Files)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reportRepo := repoFactory.NewServiceReportRepository()

		if err := reportRepo.CreateServiceReport(ctx, report); err != nil {
			return err
		}
		if err := reportRepo.CreateParts(ctx, parts); err != nil {
			if errors.Is(err, repository.ErrMachineNotFound) {
				return domainerrors.ErrMachineNotFound.WithDetails("part machine no longer exists")
			}

			return err
		}

		return reportRepo.CreateFiles(ctx, files)
	})
	if err != nil {
		keys := make([]string, 0, len(files))
		for _, file := range files {
			keys = append(keys, file.FileKey)
		}
		removeObjects(ctx, srv.store, srv.log(ctx), keys)
		srv.log(ctx).Error("Failed to create service report", slog.String("reportID", reportID.String()), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Service report created",
		slog.String("reportID", reportID.String()),
		slog.Int("parts", len(parts)),
		slog.Int("files", len(files)),
	)

	return srv.GetServiceReport(ctx, actor, reportID)
}

// validateReferences resolves every id the report points at before anything
// is written and returns the part lines to insert.
func (srv *serviceReportService) validateReferences(ctx context.Context, input *usecase.CreateServiceReportInput) ([]*entity.ServiceReportPart, error) {
	if _, err := srv.catalogRepo.FindServiceTypeByID(ctx, input.ServiceTypeID); err != nil {
		if errors.Is(err, repository.ErrServiceTypeNotFound) {
			return nil, domainerrors.ErrServiceTypeNotFound.WithDetails(input.ServiceTypeID.String())
		}

		return nil, errors.Wrap(err, "failed to find service type")
	}

	if input.SoldMachineID != nil {
		if _, err := srv.soldRepo.FindSoldMachineByID(ctx, *input.SoldMachineID); err != nil {
			if errors.Is(err, repository.ErrSoldMachineNotFound) {
				return nil, domainerrors.ErrSoldMachineNotFound.WithDetails(input.SoldMachineID.String())
			}

			return nil, errors.Wrap(err, "failed to find sold machine")
		}
	}

	parts := make([]*entity.ServiceReportPart, 0, len(input.Parts))
	machineIDs := make([]uuid.UUID, 0, len(input.Parts))
	for _, line := range input.Parts {
		quantity := entity.DefaultPartQuantity
		if line.Quantity != nil {
			quantity = *line.Quantity
		}
		if quantity < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetailsf("quantity of part %s must be at least 1", line.MachineID)
		}

		parts = append(parts, &entity.ServiceReportPart{MachineID: line.MachineID, Quantity: quantity})
		machineIDs = append(machineIDs, line.MachineID)
	}

	machines, err := srv.machineRepo.FindMachinesByIDs(ctx, uniqueIDs(machineIDs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find part machines")
	}
	known := make(map[uuid.UUID]struct{}, len(machines))
	for _, machine := range machines {
		known[machine.ID] = struct{}{}
	}
	for _, id := range machineIDs {
		if _, ok := known[id]; !ok {
			return nil, domainerrors.ErrMachineNotFound.WithDetails(id.String())
		}
	}

	return parts, nil
}

// uploadAttachments stores each named file. Failed uploads are skipped.
func (srv *serviceReportService) uploadAttachments(ctx context.Context, reportID uuid.UUID, uploads []usecase.FileUpload) []*entity.ServiceReportFile {
	files := make([]*entity.ServiceReportFile, 0, len(uploads))

	for _, upload := range uploads {
		if strings.TrimSpace(upload.Filename) == "" {
			continue
		}

		key, err := srv.store.Upload(ctx, service.UploadObject{
			Folder:      serviceReportFolder + "/" + reportID.String(),
			Filename:    upload.Filename,
			ContentType: upload.ContentType,
			Data:        upload.Data,
		})
		if err != nil {
			srv.log(ctx).Warn("Skipping attachment that failed to upload",
				slog.String("reportID", reportID.String()),
				slog.String("filename", upload.Filename),
				slog.Any("error", err),
			)

			continue
		}

		srv.log(ctx).Debug("Attachment stored", slog.String("key", key), slog.String("size", util.FormatBytes(int64(len(upload.Data)))))
		files = append(files, &entity.ServiceReportFile{ServiceReportID: reportID, FileKey: key})
	}

	return files
}

// GetServiceReport returns the read model of a report visible to actor.
func (srv *serviceReportService) GetServiceReport(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.ServiceReportView, error) {
	report, err := srv.findVisible(ctx, srv.reportRepo, actor, id)
	if err != nil {
		return nil, err
	}

	return srv.assembler.assemble(ctx, srv.log(ctx), report), nil
}

// RenderServiceReport prints a report visible to actor.
func (srv *serviceReportService) RenderServiceReport(ctx context.Context, actor *entity.User, id uuid.UUID) (*usecase.RenderedDocument, error) {
	view, err := srv.GetServiceReport(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	data, err := srv.renderer.RenderServiceReport(ctx, view)
	if err != nil {
		srv.log(ctx).Error("Failed to render service report", slog.String("reportID", id.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render service report")
	}

	return &usecase.RenderedDocument{
		Filename:    "service-report-" + id.String() + ".pdf",
		ContentType: srv.renderer.ContentType(),
		Data:        data,
	}, nil
}

// ListServiceReports pages reports. Distributors only get their own.
func (srv *serviceReportService) ListServiceReports(ctx context.Context, actor *entity.User, query entity.ListQuery) (*entity.Page[*entity.ServiceReport], error) {
	q, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	var filter repository.ServiceReportFilter
	if !actor.IsAdmin() {
		filter.AuthorID = &actor.ID
	}

	page, err := srv.reportRepo.ListServiceReports(ctx, filter, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service reports")
	}

	return page, nil
}

// DeleteServiceReport removes a report with its parts and files.
func (srv *serviceReportService) DeleteServiceReport(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	var keys []string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reportRepo := repoFactory.NewServiceReportRepository()

		if _, err := srv.findVisible(ctx, reportRepo, actor, id); err != nil {
			return err
		}

		var err error
		keys, err = purgeReports(ctx, reportRepo, []uuid.UUID{id})

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete service report", slog.String("reportID", id.String()), slog.Any("error", err))

		return err
	}

	removeObjects(ctx, srv.store, srv.log(ctx), keys)

	return nil
}

// ListServiceTypes returns every service type.
func (srv *serviceReportService) ListServiceTypes(ctx context.Context) ([]*entity.ServiceType, error) {
	types, err := srv.catalogRepo.ListServiceTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service types")
	}

	return types, nil
}

// findVisible hides reports written by someone else behind NotFound.
func (srv *serviceReportService) findVisible(ctx context.Context, reportRepo repository.ServiceReportRepository, actor *entity.User, id uuid.UUID) (*entity.ServiceReport, error) {
	report, err := reportRepo.FindServiceReportByID(ctx, id)
	if errors.Is(err, repository.ErrServiceReportNotFound) {
		return nil, domainerrors.ErrServiceReportNotFound.WithDetails(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service report")
	}

	if !ownedBy(actor, &report.UserID) {
		return nil, domainerrors.ErrServiceReportNotFound.WithDetails(id.String())
	}

	return report, nil
}
