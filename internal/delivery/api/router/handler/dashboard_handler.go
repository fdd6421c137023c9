package handler

import (
	"log/slog"
	"net/http"

	"vacuum/internal/delivery/api/response"
	"vacuum/internal/errors"
	"vacuum/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the dashboard rollups.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler.
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

func (h *DashboardHandler) GetStatistics(c echo.Context) error {
	stats, err := h.dashboardUC.GetStatistics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}

func (h *DashboardHandler) GetServiceTypeStatistics(c echo.Context) error {
	histogram, err := h.dashboardUC.GetServiceTypeHistogram(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, histogram)
}

func (h *DashboardHandler) GetPartNumberStatistics(c echo.Context) error {
	usage, err := h.dashboardUC.GetPartNumberUsage(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usage)
}

// ListCustomers groups sales by customer; ?company= narrows the companies.
func (h *DashboardHandler) ListCustomers(c echo.Context) error {
	customers, err := h.dashboardUC.ListUniqueCustomers(c.Request().Context(), c.QueryParam("company"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customers)
}

func (h *DashboardHandler) ListRecentActivities(c echo.Context) error {
	query, err := bindListQuery(c)
	if err != nil {
		return err
	}

	page, err := h.dashboardUC.ListRecentActivities(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}
