package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"vacuum/internal/delivery/api/response"
	domainerrors "vacuum/internal/domain/errors"
	"vacuum/internal/errors"
	"vacuum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServiceReportHandlerParams holds dependencies for ServiceReportHandler, injected by Fx.
type ServiceReportHandlerParams struct {
	fx.In

	ServiceReportUC usecase.ServiceReportUsecase
	Logger          *slog.Logger
}

// ServiceReportHandler serves service reports and their printable form.
type ServiceReportHandler struct {
	serviceReportUC usecase.ServiceReportUsecase
	logger          *slog.Logger
}

// NewServiceReportHandler is the constructor for ServiceReportHandler.
func NewServiceReportHandler(params ServiceReportHandlerParams) *ServiceReportHandler {
	return &ServiceReportHandler{
		serviceReportUC: params.ServiceReportUC,
		logger:          params.Logger,
	}
}

// partLine is one element of the JSON encoded "parts" form field.
type partLine struct {
	MachineID uuid.UUID `json:"machine_id"`
	Quantity  *int      `json:"quantity"`
}

// CreateServiceReport files a report from a multipart form. Parts arrive as
// a JSON array in the "parts" field, attachments as repeated "files".
func (h *ServiceReportHandler) CreateServiceReport(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	values, err := formValues(c)
	if err != nil {
		return err
	}

	serviceTypeID, err := parseOptionalID("service_type_id", optionalField(values, "service_type_id"))
	if err != nil {
		return err
	}
	if serviceTypeID == nil {
		return domainerrors.ErrValidationFailed.WithDetails("service_type_id is required")
	}
	soldMachineID, err := parseOptionalID("sold_machine_id", optionalField(values, "sold_machine_id"))
	if err != nil {
		return err
	}
	parts, err := parseParts(optionalField(values, "parts"))
	if err != nil {
		return err
	}
	files, err := uploads(c, "files")
	if err != nil {
		return err
	}

	view, err := h.serviceReportUC.CreateServiceReport(c.Request().Context(), actor, &usecase.CreateServiceReportInput{
		ServiceTypeID:     *serviceTypeID,
		SoldMachineID:     soldMachineID,
		Problem:           optionalField(values, "problem"),
		Solution:          optionalField(values, "solution"),
		ServicePersonName: optionalField(values, "service_person_name"),
		Parts:             parts,
		Files:             files,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, "Service report created", view)
}

// ListServiceReports pages the reports visible to the current user.
func (h *ServiceReportHandler) ListServiceReports(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	query, err := bindListQuery(c)
	if err != nil {
		return err
	}

	page, err := h.serviceReportUC.ListServiceReports(c.Request().Context(), actor, query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetServiceReport returns the assembled report view.
func (h *ServiceReportHandler) GetServiceReport(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.serviceReportUC.GetServiceReport(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// DownloadServiceReport streams the rendered report.
func (h *ServiceReportHandler) DownloadServiceReport(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	doc, err := h.serviceReportUC.RenderServiceReport(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Attachment(c, doc.Filename, doc.ContentType, doc.Data)
}

// DeleteServiceReport removes a report with its parts and attachments.
func (h *ServiceReportHandler) DeleteServiceReport(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.serviceReportUC.DeleteServiceReport(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Service report deleted", nil)
}

// ListServiceTypes returns every service type.
func (h *ServiceReportHandler) ListServiceTypes(c echo.Context) error {
	types, err := h.serviceReportUC.ListServiceTypes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, types)
}

func parseParts(raw *string) ([]usecase.PartInput, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}

	var lines []partLine
	if err := json.Unmarshal([]byte(*raw), &lines); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("parts must be a JSON array of {machine_id, quantity}")
	}

	parts := make([]usecase.PartInput, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, usecase.PartInput{MachineID: line.MachineID, Quantity: line.Quantity})
	}

	return parts, nil
}
