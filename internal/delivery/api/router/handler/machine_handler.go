package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"vacuum/internal/delivery/api/response"
	domainerrors "vacuum/internal/domain/errors"
	"vacuum/internal/errors"
	"vacuum/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Form keys of the machine endpoints.
const (
	fieldTypeName = "type_name"
	fieldModelNo  = "model_no"
	fieldPartNo   = "part_no"
	fieldFile     = "file"
)

// saleFieldKeys open a sale block on machine updates when any is present.
var saleFieldKeys = []string{
	"sold_machine_id", "serial_no", "customer_company", "customer_name",
	"customer_contact", "customer_email", "customer_address", "date_of_manufacturing",
}

// MachineHandlerParams holds dependencies for MachineHandler, injected by Fx.
type MachineHandlerParams struct {
	fx.In

	MachineUC usecase.MachineUsecase
	Logger    *slog.Logger
}

// MachineHandler serves the equipment catalog.
type MachineHandler struct {
	machineUC usecase.MachineUsecase
	logger    *slog.Logger
}

// NewMachineHandler is the constructor for MachineHandler.
func NewMachineHandler(params MachineHandlerParams) *MachineHandler {
	return &MachineHandler{
		machineUC: params.MachineUC,
		logger:    params.Logger,
	}
}

// ListEquipmentTypes returns every equipment type.
func (h *MachineHandler) ListEquipmentTypes(c echo.Context) error {
	types, err := h.machineUC.ListEquipmentTypes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, types)
}

// ListMachinesByType pages the machines of the equipment type in the path.
func (h *MachineHandler) ListMachinesByType(c echo.Context) error {
	query, err := bindListQuery(c)
	if err != nil {
		return err
	}

	page, err := h.machineUC.ListMachinesByType(c.Request().Context(), c.Param("type"), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// CreateMachine adds a catalog entry from a multipart form.
func (h *MachineHandler) CreateMachine(c echo.Context) error {
	values, err := formValues(c)
	if err != nil {
		return err
	}

	input := &usecase.CreateMachineInput{
		PartNo: optionalField(values, fieldPartNo),
	}
	if typeName := optionalField(values, fieldTypeName); typeName != nil {
		input.TypeName = *typeName
	}
	if modelNo := optionalField(values, fieldModelNo); modelNo != nil {
		input.ModelNo = *modelNo
	}
	if strings.TrimSpace(input.TypeName) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("type_name is required")
	}

	if input.File, err = optionalUpload(c, fieldFile); err != nil {
		return err
	}

	machine, err := h.machineUC.CreateMachine(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, "Machine created", machine)
}

// GetMachine returns one machine with its sales.
func (h *MachineHandler) GetMachine(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	machine, err := h.machineUC.GetMachine(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, machine)
}

// UpdateMachine applies the submitted fields. Sale fields upsert the sale of
// the machine.
func (h *MachineHandler) UpdateMachine(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	values, err := formValues(c)
	if err != nil {
		return err
	}

	input := &usecase.UpdateMachineInput{
		TypeName: optionalField(values, fieldTypeName),
		ModelNo:  optionalField(values, fieldModelNo),
		PartNo:   optionalField(values, fieldPartNo),
	}
	if input.File, err = optionalUpload(c, fieldFile); err != nil {
		return err
	}
	if input.Sale, err = saleInput(values); err != nil {
		return err
	}

	machine, err := h.machineUC.UpdateMachine(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Machine updated", machine)
}

// DeleteMachine removes a machine and everything recorded against it.
func (h *MachineHandler) DeleteMachine(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.machineUC.DeleteMachine(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Machine and related records deleted", summary)
}

// LookupBySerial finds the machine behind a sold serial number.
func (h *MachineHandler) LookupBySerial(c echo.Context) error {
	serialNo := c.QueryParam("serial_no")
	if strings.TrimSpace(serialNo) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("serial_no is required")
	}

	lookup, err := h.machineUC.LookupBySerial(c.Request().Context(), serialNo)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lookup)
}

func saleInput(values map[string][]string) (*usecase.SaleInput, error) {
	present := false
	for _, key := range saleFieldKeys {
		if optionalField(values, key) != nil {
			present = true

			break
		}
	}
	if !present {
		return nil, nil
	}

	soldMachineID, err := parseOptionalID("sold_machine_id", optionalField(values, "sold_machine_id"))
	if err != nil {
		return nil, err
	}
	dom, err := parseDate("date_of_manufacturing", optionalField(values, "date_of_manufacturing"))
	if err != nil {
		return nil, err
	}

	return &usecase.SaleInput{
		SoldMachineID: soldMachineID,
		SaleFields: usecase.SaleFields{
			SerialNo:                 optionalField(values, "serial_no"),
			CustomerCompany:          optionalField(values, "customer_company"),
			CustomerName:             optionalField(values, "customer_name"),
			CustomerContact:          optionalField(values, "customer_contact"),
			CustomerEmail:            optionalField(values, "customer_email"),
			CustomerAddress:          optionalField(values, "customer_address"),
			DateOfManufacturing:      dom,
			ClearDateOfManufacturing: isBlank(optionalField(values, "date_of_manufacturing")),
		},
	}, nil
}
