// Package model holds the GORM structs mirroring the database tables. They are
// exported so the GORM Gen tool can read them from other packages.
package model

import "github.com/google/uuid"

// newID keeps a caller-chosen id and otherwise mints a time-ordered UUIDv7.
func newID(id uuid.UUID) uuid.UUID {
	if id != uuid.Nil {
		return id
	}

	return uuid.Must(uuid.NewV7())
}

// All lists every model in dependency order for migrations and codegen.
func All() []any {
	return []any{
		&RoleModel{},
		&UserModel{},
		&EquipmentTypeModel{},
		&MachineModel{},
		&SoldMachineModel{},
		&ServiceTypeModel{},
		&ServiceReportModel{},
		&ServiceReportPartModel{},
		&ServiceReportFileModel{},
	}
}
