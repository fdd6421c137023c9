package usecase

import (
	"context"

	"vacuum/internal/domain/entity"

	"github.com/google/uuid"
)

// PartInput is a part consumed during the visit. A nil quantity means one.
type PartInput struct {
	MachineID uuid.UUID
	Quantity  *int
}

// CreateServiceReportInput defines the data required to file a report.
type CreateServiceReportInput struct {
	ServiceTypeID     uuid.UUID
	SoldMachineID     *uuid.UUID
	Problem           *string
	Solution          *string
	ServicePersonName *string
	Parts             []PartInput
	Files             []FileUpload
}

// RenderedDocument is a printable report ready to download.
type RenderedDocument struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ServiceReportUsecase defines the interface for service report use cases.
// Distributors only see the reports they wrote.
type ServiceReportUsecase interface {
	// CreateServiceReport validates every reference before writing anything.
	// Attachments that fail to upload are skipped.
	CreateServiceReport(ctx context.Context, actor *entity.User, input *CreateServiceReportInput) (*entity.ServiceReportView, error)

	GetServiceReport(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.ServiceReportView, error)
	RenderServiceReport(ctx context.Context, actor *entity.User, id uuid.UUID) (*RenderedDocument, error)
	ListServiceReports(ctx context.Context, actor *entity.User, query entity.ListQuery) (*entity.Page[*entity.ServiceReport], error)
	DeleteServiceReport(ctx context.Context, actor *entity.User, id uuid.UUID) error
	ListServiceTypes(ctx context.Context) ([]*entity.ServiceType, error)
}
