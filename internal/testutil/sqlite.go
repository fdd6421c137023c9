// Package testutil builds throwaway databases and fixtures for tests.
package testutil

import (
	"testing"

	"vacuum/internal/domain/entity"
	"vacuum/internal/infra/persistence/model"
	"vacuum/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a private in-memory database with the production schema
// and lookup rows. The pool holds a single connection, so callers must not
// touch the returned handle while a transaction on it is open.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(db))
	require.NoError(t, postgres.Seed(db))

	return db
}

// RoleID returns the seeded role id for name.
func RoleID(t *testing.T, db *gorm.DB, name entity.RoleName) uuid.UUID {
	t.Helper()

	var role model.RoleModel
	require.NoError(t, db.Where("role_name = ?", name.String()).First(&role).Error)

	return role.ID
}

// EquipmentTypeID returns the seeded equipment type id for name.
func EquipmentTypeID(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()

	var equipmentType model.EquipmentTypeModel
	require.NoError(t, db.Where("type_name = ?", name).First(&equipmentType).Error)

	return equipmentType.ID
}

// ServiceTypeID returns the seeded service type id for name.
func ServiceTypeID(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()

	var serviceType model.ServiceTypeModel
	require.NoError(t, db.Where("service_type = ?", name).First(&serviceType).Error)

	return serviceType.ID
}

// CreateUser inserts an active user holding role.
func CreateUser(t *testing.T, db *gorm.DB, name, email string, role entity.RoleName) *model.UserModel {
	t.Helper()

	roleID := RoleID(t, db, role)
	user := &model.UserModel{
		RoleID:   &roleID,
		Name:     optional(name),
		Email:    email,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)

	return user
}

// CreateMachine inserts a catalog entry. An empty partNo stays NULL.
func CreateMachine(t *testing.T, db *gorm.DB, typeName, modelNo, partNo string) *model.MachineModel {
	t.Helper()

	machine := &model.MachineModel{
		ModelNo:         modelNo,
		PartNo:          optional(partNo),
		EquipmentTypeID: EquipmentTypeID(t, db, typeName),
	}
	require.NoError(t, db.Omit("SoldMachines", "EquipmentType").Create(machine).Error)

	return machine
}

// SoldMachineFixture holds the optional columns of a sale.
type SoldMachineFixture struct {
	RecordedBy      *uuid.UUID
	CustomerName    string
	CustomerCompany string
	CustomerEmail   string
}

// CreateSoldMachine inserts a sale of machineID.
func CreateSoldMachine(t *testing.T, db *gorm.DB, machineID uuid.UUID, serialNo string, fixture SoldMachineFixture) *model.SoldMachineModel {
	t.Helper()

	sold := &model.SoldMachineModel{
		MachineID:       machineID,
		UserID:          fixture.RecordedBy,
		SerialNo:        serialNo,
		CustomerName:    optional(fixture.CustomerName),
		CustomerCompany: optional(fixture.CustomerCompany),
		CustomerEmail:   optional(fixture.CustomerEmail),
	}
	require.NoError(t, db.Omit("Machine", "User").Create(sold).Error)

	return sold
}

// CreateServiceReport inserts a report with one file row per key.
func CreateServiceReport(t *testing.T, db *gorm.DB, authorID uuid.UUID, soldMachineID *uuid.UUID, serviceType, problem string, fileKeys ...string) *model.ServiceReportModel {
	t.Helper()

	report := &model.ServiceReportModel{
		UserID:        authorID,
		SoldMachineID: soldMachineID,
		ServiceTypeID: ServiceTypeID(t, db, serviceType),
		Problem:       optional(problem),
	}
	require.NoError(t, db.Omit("User", "SoldMachine", "ServiceType", "Parts", "Files").Create(report).Error)

	for _, key := range fileKeys {
		file := &model.ServiceReportFileModel{ServiceReportID: report.ID, FileKey: key}
		require.NoError(t, db.Create(file).Error)
	}

	return report
}

// AddPart records machineID as consumed by reportID.
func AddPart(t *testing.T, db *gorm.DB, reportID, machineID uuid.UUID, quantity int) *model.ServiceReportPartModel {
	t.Helper()

	part := &model.ServiceReportPartModel{
		ServiceReportID: reportID,
		MachineID:       machineID,
		Quantity:        quantity,
	}
	require.NoError(t, db.Omit("Machine").Create(part).Error)

	return part
}

// Count returns the number of rows in the table behind m.
func Count(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(m).Count(&count).Error)

	return count
}

func optional(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
