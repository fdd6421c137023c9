package repository

import (
	"context"

	"vacuum/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrServiceReportNotFound is returned when a report does not exist.
var ErrServiceReportNotFound = errors.New("service report not found")

// ServiceReportFilter narrows a report listing.
type ServiceReportFilter struct {
	AuthorID *uuid.UUID
}

// ServiceReportRepository covers reports and their part and file rows.
type ServiceReportRepository interface {
	// CreateServiceReport persists the report row only.
	CreateServiceReport(ctx context.Context, report *entity.ServiceReport) error
	CreateParts(ctx context.Context, parts []*entity.ServiceReportPart) error
	CreateFiles(ctx context.Context, files []*entity.ServiceReportFile) error

	// FindServiceReportByID loads the report with author and role, service
	// type, sold unit with machine and type, parts with machines, and files.
	FindServiceReportByID(ctx context.Context, id uuid.UUID) (*entity.ServiceReport, error)

	FindServiceReportIDsBySoldMachines(ctx context.Context, soldMachineIDs []uuid.UUID) ([]uuid.UUID, error)
	FindServiceReportIDsByAuthor(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	FindFileKeysByReports(ctx context.Context, reportIDs []uuid.UUID) ([]string, error)

	DeleteFilesByReports(ctx context.Context, reportIDs []uuid.UUID) error
	DeletePartsByReports(ctx context.Context, reportIDs []uuid.UUID) error
	// DeletePartsByMachine removes part lines that consumed machineID.
	DeletePartsByMachine(ctx context.Context, machineID uuid.UUID) error
	DeleteServiceReports(ctx context.Context, ids []uuid.UUID) error

	// ListServiceReports pages reports with author and service type attached.
	ListServiceReports(ctx context.Context, filter ServiceReportFilter, query entity.ListQuery) (*entity.Page[*entity.ServiceReport], error)

	// ListRecentActivities pages reports searching author name, author email
	// and service type name.
	ListRecentActivities(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.ServiceReport], error)
}
