package handler

import (
	"log/slog"
	"net/http"

	"vacuum/internal/delivery/api/response"
	"vacuum/internal/errors"
	"vacuum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SoldMachineHandlerParams holds dependencies for SoldMachineHandler, injected by Fx.
type SoldMachineHandlerParams struct {
	fx.In

	SoldMachineUC usecase.SoldMachineUsecase
	Logger        *slog.Logger
}

// SoldMachineHandler serves the sales ledger.
type SoldMachineHandler struct {
	soldMachineUC usecase.SoldMachineUsecase
	logger        *slog.Logger
}

// NewSoldMachineHandler is the constructor for SoldMachineHandler.
func NewSoldMachineHandler(params SoldMachineHandlerParams) *SoldMachineHandler {
	return &SoldMachineHandler{
		soldMachineUC: params.SoldMachineUC,
		logger:        params.Logger,
	}
}

// CreateSoldMachineRequest represents the request body for recording a sale.
type CreateSoldMachineRequest struct {
	MachineID           string  `json:"machine_id" validate:"required,uuid"`
	SerialNo            string  `json:"serial_no" validate:"required"`
	CustomerCompany     *string `json:"customer_company"`
	CustomerName        *string `json:"customer_name"`
	CustomerContact     *string `json:"customer_contact"`
	CustomerEmail       *string `json:"customer_email" validate:"omitempty,email"`
	CustomerAddress     *string `json:"customer_address"`
	DateOfManufacturing *string `json:"date_of_manufacturing"`
}

// UpdateSoldMachineRequest carries the sale fields to change. Omitted fields
// stay as they are.
type UpdateSoldMachineRequest struct {
	SerialNo            *string `json:"serial_no"`
	CustomerCompany     *string `json:"customer_company"`
	CustomerName        *string `json:"customer_name"`
	CustomerContact     *string `json:"customer_contact"`
	CustomerEmail       *string `json:"customer_email" validate:"omitempty,email"`
	CustomerAddress     *string `json:"customer_address"`
	DateOfManufacturing *string `json:"date_of_manufacturing"`
}

// CreateSoldMachine records a sale by the current user.
func (h *SoldMachineHandler) CreateSoldMachine(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateSoldMachineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid sale input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	dom, err := parseDate("date_of_manufacturing", req.DateOfManufacturing)
	if err != nil {
		return err
	}

	sold, err := h.soldMachineUC.CreateSoldMachine(c.Request().Context(), actor, &usecase.CreateSoldMachineInput{
		MachineID:           uuid.MustParse(req.MachineID),
		SerialNo:            req.SerialNo,
		CustomerCompany:     req.CustomerCompany,
		CustomerName:        req.CustomerName,
		CustomerContact:     req.CustomerContact,
		CustomerEmail:       req.CustomerEmail,
		CustomerAddress:     req.CustomerAddress,
		DateOfManufacturing: dom,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, "Sale recorded", sold)
}

// ListSoldMachines pages the sales visible to the current user.
func (h *SoldMachineHandler) ListSoldMachines(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	query, err := bindListQuery(c)
	if err != nil {
		return err
	}

	page, err := h.soldMachineUC.ListSoldMachines(c.Request().Context(), actor, query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetSoldMachine returns one sale.
func (h *SoldMachineHandler) GetSoldMachine(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	sold, err := h.soldMachineUC.GetSoldMachine(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sold)
}

// UpdateSoldMachine changes the submitted sale fields.
func (h *SoldMachineHandler) UpdateSoldMachine(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateSoldMachineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid sale input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	dom, err := parseDate("date_of_manufacturing", req.DateOfManufacturing)
	if err != nil {
		return err
	}

	sold, err := h.soldMachineUC.UpdateSoldMachine(c.Request().Context(), actor, id, &usecase.SaleFields{
		SerialNo:                 req.SerialNo,
		CustomerCompany:          req.CustomerCompany,
		CustomerName:             req.CustomerName,
		CustomerContact:          req.CustomerContact,
		CustomerEmail:            req.CustomerEmail,
		CustomerAddress:          req.CustomerAddress,
		DateOfManufacturing:      dom,
		ClearDateOfManufacturing: isBlank(req.DateOfManufacturing),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Sale updated", sold)
}

// DeleteSoldMachine removes a sale and its service reports.
func (h *SoldMachineHandler) DeleteSoldMachine(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.soldMachineUC.DeleteSoldMachine(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Sale and its service reports deleted", nil)
}
