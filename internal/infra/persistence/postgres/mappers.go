package postgres

import (
	"vacuum/internal/domain/entity"
	"vacuum/internal/infra/persistence/model"
)

// --- Mapper Functions ---

func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	return &entity.Role{
		ID:        data.ID,
		Name:      entity.RoleName(data.RoleName),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                 data.ID,
		ExternalIdentityID: data.ExternalIdentityID,
		RoleID:             data.RoleID,
		Role:               toRoleDomain(data.Role),
		Name:               data.Name,
		PhoneNumber:        data.PhoneNumber,
		Email:              data.Email,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                 data.ID,
		ExternalIdentityID: data.ExternalIdentityID,
		RoleID:             data.RoleID,
		Name:               data.Name,
		PhoneNumber:        data.PhoneNumber,
		Email:              data.Email,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toEquipmentTypeDomain(data *model.EquipmentTypeModel) *entity.EquipmentType {
	if data == nil {
		return nil
	}

	return &entity.EquipmentType{
		ID:        data.ID,
		TypeName:  data.TypeName,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toServiceTypeDomain(data *model.ServiceTypeModel) *entity.ServiceType {
	if data == nil {
		return nil
	}

	return &entity.ServiceType{
		ID:        data.ID,
		Name:      data.ServiceType,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toMachineDomain(data *model.MachineModel) *entity.Machine {
	if data == nil {
		return nil
	}

	machine := &entity.Machine{
		ID:              data.ID,
		ModelNo:         data.ModelNo,
		PartNo:          data.PartNo,
		EquipmentTypeID: data.EquipmentTypeID,
		EquipmentType:   toEquipmentTypeDomain(data.EquipmentType),
		FileKey:         data.FileKey,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	for i := range data.SoldMachines {
		machine.SoldMachines = append(machine.SoldMachines, toSoldMachineDomain(&data.SoldMachines[i]))
	}

	return machine
}

func fromMachineDomain(data *entity.Machine) *model.MachineModel {
	if data == nil {
		return nil
	}

	return &model.MachineModel{
		ID:              data.ID,
		ModelNo:         data.ModelNo,
		PartNo:          data.PartNo,
		EquipmentTypeID: data.EquipmentTypeID,
		FileKey:         data.FileKey,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toSoldMachineDomain(data *model.SoldMachineModel) *entity.SoldMachine {
	if data == nil {
		return nil
	}

	return &entity.SoldMachine{
		ID:                  data.ID,
		MachineID:           data.MachineID,
		Machine:             toMachineDomain(data.Machine),
		UserID:              data.UserID,
		SerialNo:            data.SerialNo,
		CustomerCompany:     data.CustomerCompany,
		CustomerName:        data.CustomerName,
		CustomerContact:     data.CustomerContact,
		CustomerEmail:       data.CustomerEmail,
		CustomerAddress:     data.CustomerAddress,
		DateOfManufacturing: data.DateOfManufacturing,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromSoldMachineDomain(data *entity.SoldMachine) *model.SoldMachineModel {
	if data == nil {
		return nil
	}

	return &model.SoldMachineModel{
		ID:                  data.ID,
		MachineID:           data.MachineID,
		UserID:              data.UserID,
		SerialNo:            data.SerialNo,
		CustomerCompany:     data.CustomerCompany,
		CustomerName:        data.CustomerName,
		CustomerContact:     data.CustomerContact,
		CustomerEmail:       data.CustomerEmail,
		CustomerAddress:     data.CustomerAddress,
		DateOfManufacturing: data.DateOfManufacturing,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func toServiceReportDomain(data *model.ServiceReportModel) *entity.ServiceReport {
	if data == nil {
		return nil
	}

	report := &entity.ServiceReport{
		ID:                data.ID,
		UserID:            data.UserID,
		User:              toUserDomain(data.User),
		SoldMachineID:     data.SoldMachineID,
		SoldMachine:       toSoldMachineDomain(data.SoldMachine),
		ServiceTypeID:     data.ServiceTypeID,
		ServiceType:       toServiceTypeDomain(data.ServiceType),
		Problem:           data.Problem,
		Solution:          data.Solution,
		ServicePersonName: data.ServicePersonName,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
	for i := range data.Parts {
		report.Parts = append(report.Parts, toServiceReportPartDomain(&data.Parts[i]))
	}
	for i := range data.Files {
		report.Files = append(report.Files, toServiceReportFileDomain(&data.Files[i]))
	}

	return report
}

func fromServiceReportDomain(data *entity.ServiceReport) *model.ServiceReportModel {
	if data == nil {
		return nil
	}

	return &model.ServiceReportModel{
		ID:                data.ID,
		UserID:            data.UserID,
		SoldMachineID:     data.SoldMachineID,
		ServiceTypeID:     data.ServiceTypeID,
		Problem:           data.Problem,
		Solution:          data.Solution,
		ServicePersonName: data.ServicePersonName,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toServiceReportPartDomain(data *model.ServiceReportPartModel) *entity.ServiceReportPart {
	if data == nil {
		return nil
	}

	return &entity.ServiceReportPart{
		ID:              data.ID,
		ServiceReportID: data.ServiceReportID,
		MachineID:       data.MachineID,
		Machine:         toMachineDomain(data.Machine),
		Quantity:        data.Quantity,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromServiceReportPartDomain(data *entity.ServiceReportPart) model.ServiceReportPartModel {
	return model.ServiceReportPartModel{
		ID:              data.ID,
		ServiceReportID: data.ServiceReportID,
		MachineID:       data.MachineID,
		Quantity:        data.Quantity,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toServiceReportFileDomain(data *model.ServiceReportFileModel) *entity.ServiceReportFile {
	if data == nil {
		return nil
	}

	return &entity.ServiceReportFile{
		ID:              data.ID,
		ServiceReportID: data.ServiceReportID,
		FileKey:         data.FileKey,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromServiceReportFileDomain(data *entity.ServiceReportFile) model.ServiceReportFileModel {
	return model.ServiceReportFileModel{
		ID:              data.ID,
		ServiceReportID: data.ServiceReportID,
		FileKey:         data.FileKey,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toDomainList[M any, E any](rows []M, convert func(*M) E) []E {
	result := make([]E, 0, len(rows))
	for i := range rows {
		result = append(result, convert(&rows[i]))
	}

	return result
}
