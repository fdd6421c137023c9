package impl

import (
	"context"
	"strings"

	"vacuum/internal/domain/entity"
	domainerrors "vacuum/internal/domain/errors"
	"vacuum/internal/domain/repository"
	"vacuum/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// applySaleFields copies the supplied fields onto sold. A supplied serial
// number must not be blank and must not belong to another sale.
func applySaleFields(ctx context.Context, soldRepo repository.SoldMachineRepository, sold *entity.SoldMachine, fields *usecase.SaleFields) error {
	if fields == nil {
		return nil
	}

	if fields.SerialNo != nil {
		serialNo := strings.TrimSpace(*fields.SerialNo)
		if serialNo == "" {
			return domainerrors.ErrValidationFailed.WithDetails("serial_no must not be empty")
		}
		if err := ensureSerialNoFree(ctx, soldRepo, serialNo, sold.ID); err != nil {
			return err
		}
		sold.SerialNo = serialNo
	}

	if fields.CustomerCompany != nil {
		sold.CustomerCompany = trimmedOrNil(fields.CustomerCompany)
	}
	if fields.CustomerName != nil {
		sold.CustomerName = trimmedOrNil(fields.CustomerName)
	}
	if fields.CustomerContact != nil {
		sold.CustomerContact = trimmedOrNil(fields.CustomerContact)
	}
	if fields.CustomerEmail != nil {
		sold.CustomerEmail = trimmedOrNil(fields.CustomerEmail)
	}
	if fields.CustomerAddress != nil {
		sold.CustomerAddress = trimmedOrNil(fields.CustomerAddress)
	}
	switch {
	case fields.ClearDateOfManufacturing:
		sold.DateOfManufacturing = nil
	case fields.DateOfManufacturing != nil:
		manufactured := *fields.DateOfManufacturing
		sold.DateOfManufacturing = &manufactured
	}

	return nil
}

func ensureSerialNoFree(ctx context.Context, soldRepo repository.SoldMachineRepository, serialNo string, excludeID uuid.UUID) error {
	taken, err := soldRepo.SerialNoExists(ctx, serialNo, excludeID)
	if err != nil {
		return errors.Wrap(err, "failed to check serial number")
	}
	if taken {
		return domainerrors.ErrSerialNoAlreadyExists.WithDetails(serialNo)
	}

	return nil
}

// saleWriteError maps repository failures of a sale insert or update.
func saleWriteError(err error, sold *entity.SoldMachine) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateSerialNo):
		return domainerrors.ErrSerialNoAlreadyExists.WithDetails(sold.SerialNo)
	case errors.Is(err, repository.ErrMachineNotFound):
		return domainerrors.ErrMachineNotFound.WithDetails(sold.MachineID.String())
	case errors.Is(err, repository.ErrSoldMachineNotFound):
		return domainerrors.ErrSoldMachineNotFound.WithDetails(sold.ID.String())
	default:
		return errors.Wrap(err, "failed to save sold machine")
	}
}
