package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"vacuum/internal/domain/entity"
	domainerrors "vacuum/internal/domain/errors"
	"vacuum/internal/domain/service"
	"vacuum/internal/infra/persistence/model"
	"vacuum/internal/infra/persistence/postgres"
	mockService "vacuum/internal/mocks/service"
	"vacuum/internal/testutil"
	"vacuum/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// machineServiceFixtures holds all test dependencies for machine service tests.
type machineServiceFixtures struct {
	db      *gorm.DB
	service usecase.MachineUsecase
}

func createTestMachineService(t *testing.T, store service.ObjectStore) machineServiceFixtures {
	db := testutil.NewSQLiteDB(t)

	return machineServiceFixtures{
		db: db,
		service: NewMachineService(MachineServiceParams{
			TxManager:   postgres.NewTransactionManager(db),
			CatalogRepo: postgres.NewCatalogRepository(db),
			MachineRepo: postgres.NewMachineRepository(db),
			SoldRepo:    postgres.NewSoldMachineRepository(db),
			Store:       store,
			Config:      newTestConfig(),
			Logger:      newDiscardLogger(),
		}),
	}
}

func TestMachineService_CreateMachine(t *testing.T) {
	store, bucket := newMemStore(t)
	fx := createTestMachineService(t, store)
	ctx := context.Background()

	machine, err := fx.service.CreateMachine(ctx, &usecase.CreateMachineInput{
		TypeName: "PUMP",
		ModelNo:  " VP-100 ",
		PartNo:   ptr("P-100"),
		File:     &usecase.FileUpload{Filename: "manual.pdf", ContentType: "application/pdf", Data: []byte("%PDF")},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, machine.ID)
	assert.Equal(t, "VP-100", machine.ModelNo)
	assert.Equal(t, entity.EquipmentTypePump, machine.TypeName())
	require.NotNil(t, machine.FileKey)
	assert.True(t, strings.HasPrefix(*machine.FileKey, "machines/P-100/"))

	data, err := bucket.ReadAll(ctx, *machine.FileKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)

	t.Run("duplicate part number", func(t *testing.T) {
		_, err := fx.service.CreateMachine(ctx, &usecase.CreateMachineInput{TypeName: "pump", ModelNo: "VP-101", PartNo: ptr("P-100")})
		assert.ErrorIs(t, err, domainerrors.ErrPartNoAlreadyExists)
	})

	t.Run("unknown equipment type", func(t *testing.T) {
		_, err := fx.service.CreateMachine(ctx, &usecase.CreateMachineInput{TypeName: "valve", ModelNo: "V-1"})
		assert.ErrorIs(t, err, domainerrors.ErrEquipmentTypeNotFound)
	})

	t.Run("blank model number", func(t *testing.T) {
		_, err := fx.service.CreateMachine(ctx, &usecase.CreateMachineInput{TypeName: "pump", ModelNo: "  "})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("blank part number is stored as none", func(t *testing.T) {
		part, err := fx.service.CreateMachine(ctx, &usecase.CreateMachineInput{TypeName: "part", ModelNo: "Bolt", PartNo: ptr(" ")})
		require.NoError(t, err)
		assert.Nil(t, part.PartNo)
	})

	assert.EqualValues(t, 2, testutil.Count(t, fx.db, &model.MachineModel{}))
}

func TestMachineService_CreateMachine_UploadFailure(t *testing.T) {
	store := mockService.NewMockObjectStore(t)
	fx := createTestMachineService(t, store)
	ctx := context.Background()

	store.EXPECT().
		Upload(ctx, mock.AnythingOfType("service.UploadObject")).
		Return("", errors.New("bucket unavailable"))

	_, err := fx.service.CreateMachine(ctx, &usecase.CreateMachineInput{
		TypeName: "pump",
		ModelNo:  "VP-100",
		File:     &usecase.FileUpload{Filename: "manual.pdf", Data: []byte("x")},
	})
	assert.ErrorIs(t, err, domainerrors.ErrFileUploadFailed)
	assert.Zero(t, testutil.Count(t, fx.db, &model.MachineModel{}))
}

func TestMachineService_UpdateMachine_ReplacesFile(t *testing.T) {
	store := mockService.NewMockObjectStore(t)
	fx := createTestMachineService(t, store)
	ctx := context.Background()

	pump := testutil.CreateMachine(t, fx.db, entity.EquipmentTypePump, "VP-100", "P-100")
	require.NoError(t, fx.db.Model(&model.MachineModel{}).Where("id = ?", pump.ID).UpdateColumn("file_key", "machines/P-100/old.pdf").Error)

	store.EXPECT().
		Upload(ctx, mock.MatchedBy(func(obj service.UploadObject) bool {
			return obj.Folder == "machines/P-200" && obj.Filename == "new.pdf"
		})).
		Return("machines/P-200/new.pdf", nil)
	store.EXPECT().Delete(ctx, "machines/P-100/old.pdf").Return(nil)

	updated, err := fx.service.UpdateMachine(ctx, nil, pump.ID, &usecase.UpdateMachineInput{
		PartNo: ptr("P-200"),
		File:   &usecase.FileUpload{Filename: "new.pdf", Data: []byte("%PDF")},
	})
	require.NoError(t, err)
	assert.Equal(t, "VP-100", updated.ModelNo)
	require.NotNil(t, updated.PartNo)
	assert.Equal(t, "P-200", *updated.PartNo)
	require.NotNil(t, updated.FileKey)
	assert.Equal(t, "machines/P-200/new.pdf", *updated.FileKey)
}

func TestMachineService_UpdateMachine_FailedTransactionDropsUpload(t *testing.T) {
	store := mockService.NewMockObjectStore(t)
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	svc := NewMachineService(MachineServiceParams{
		TxManager:   failingTxManager{err: errors.New("database down")},
		CatalogRepo: postgres.NewCatalogRepository(db),
		MachineRepo: postgres.NewMachineRepository(db),
		SoldRepo:    postgres.NewSoldMachineRepository(db),
		Store:       store,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	pump := testutil.CreateMachine(t, db, entity.EquipmentTypePump, "VP-100", "")

	store.EXPECT().Upload(ctx, mock.Anything).Return("machines/VP-100/new.pdf", nil)
	store.EXPECT().Delete(ctx, "machines/VP-100/new.pdf").Return(nil)

	_, err := svc.UpdateMachine(ctx, nil, pump.ID, &usecase.UpdateMachineInput{
		File: &usecase.FileUpload{Filename: "new.pdf", Data: []byte("%PDF")},
	})
	require.Error(t, err)
}

func TestMachineService_UpdateMachine_PartNoConflict(t *testing.T) {
	store, _ := newMemStore(t)
	fx := createTestMachineService(t, store)
	ctx := context.Background()

	testutil.CreateMachine(t, fx.db, entity.EquipmentTypePart, "Seal", "S-1")
	other := testutil.CreateMachine(t, fx.db, entity.EquipmentTypePart, "Gasket", "G-1")

	_, err := fx.service.UpdateMachine(ctx, nil, other.ID, &usecase.UpdateMachineInput{PartNo: ptr("S-1")})
	assert.ErrorIs(t, err, domainerrors.ErrPartNoAlreadyExists)

	updated, err := fx.service.UpdateMachine(ctx, nil, other.ID, &usecase.UpdateMachineInput{PartNo: ptr("G-1"), ModelNo: ptr("Gasket XL")})
	require.NoError(t, err, "keeping its own part number is not a conflict")
	assert.Equal(t, "Gasket XL", updated.ModelNo)

	_, err = fx.service.UpdateMachine(ctx, nil, uuid.New(), &usecase.UpdateMachineInput{ModelNo: ptr("x")})
	assert.ErrorIs(t, err, domainerrors.ErrMachineNotFound)
}

func TestMachineService_UpdateMachine_SaleBlock(t *testing.T) {
	store, _ := newMemStore(t)
	fx := createTestMachineService(t, store)
	ctx := context.Background()

	dee := testutil.CreateUser(t, fx.db, "Dee", "dee@example.com", entity.RoleDistributor)
	actor := loadActor(t, fx.db, dee.ID)
	pump := testutil.CreateMachine(t, fx.db, entity.EquipmentTypePump, "VP-100", "P-100")

	t.Run("first sale needs a serial number", func(t *testing.T) {
		_, err := fx.service.UpdateMachine(ctx, actor, pump.ID, &usecase.UpdateMachineInput{
			Sale: &usecase.SaleInput{SaleFields: usecase.SaleFields{CustomerName: ptr("Jo")}},
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("machine without sales gets one", func(t *testing.T) {
		updated, err := fx.service.UpdateMachine(ctx, actor, pump.ID, &usecase.UpdateMachineInput{
			Sale: &usecase.SaleInput{SaleFields: usecase.SaleFields{SerialNo: ptr("SN-1"), CustomerName: ptr("Jo")}},
		})
		require.NoError(t, err)
		require.Len(t, updated.SoldMachines, 1)
		sold := updated.SoldMachines[0]
		assert.Equal(t, "SN-1", sold.SerialNo)
		require.NotNil(t, sold.UserID)
		assert.Equal(t, dee.ID, *sold.UserID)
	})

	t.Run("single sale is updated in place", func(t *testing.T) {
		updated, err := fx.service.UpdateMachine(ctx, actor, pump.ID, &usecase.UpdateMachineInput{
			Sale: &usecase.SaleInput{SaleFields: usecase.SaleFields{CustomerCompany: ptr("Acme")}},
		})
		require.NoError(t, err)
		require.Len(t, updated.SoldMachines, 1)
		assert.Equal(t, "SN-1", updated.SoldMachines[0].SerialNo)
		require.NotNil(t, updated.SoldMachines[0].CustomerCompany)
		assert.Equal(t, "Acme", *updated.SoldMachines[0].CustomerCompany)
	})

	second := testutil.CreateSoldMachine(t, fx.db, pump.ID, "SN-2", testutil.SoldMachineFixture{})

	t.Run("several sales need an explicit id", func(t *testing.T) {
		_, err := fx.service.UpdateMachine(ctx, actor, pump.ID, &usecase.UpdateMachineInput{
			Sale: &usecase.SaleInput{SaleFields: usecase.SaleFields{CustomerName: ptr("Kim")}},
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("explicit id picks the sale", func(t *testing.T) {
		updated, err := fx.service.UpdateMachine(ctx, actor, pump.ID, &usecase.UpdateMachineInput{
			Sale: &usecase.SaleInput{SoldMachineID: &second.ID, SaleFields: usecase.SaleFields{CustomerName: ptr("Kim")}},
		})
		require.NoError(t, err)
		require.Len(t, updated.SoldMachines, 2)
		for _, sold := range updated.SoldMachines {
			if sold.ID == second.ID {
				require.NotNil(t, sold.CustomerName)
				assert.Equal(t, "Kim", *sold.CustomerName)
			} else {
				assert.Equal(t, "Jo", *sold.CustomerName)
			}
		}
	})

	t.Run("sale of another machine is rejected", func(t *testing.T) {
		other := testutil.CreateMachine(t, fx.db, entity.EquipmentTypePump, "VP-200", "P-200")
		foreign := testutil.CreateSoldMachine(t, fx.db, other.ID, "SN-9", testutil.SoldMachineFixture{})

		_, err := fx.service.UpdateMachine(ctx, actor, pump.ID, &usecase.UpdateMachineInput{
			Sale: &usecase.SaleInput{SoldMachineID: &foreign.ID, SaleFields: usecase.SaleFields{CustomerName: ptr("X")}},
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("serial number taken by another sale", func(t *testing.T) {
		_, err := fx.service.UpdateMachine(ctx, actor, pump.ID, &usecase.UpdateMachineInput{
			Sale: &usecase.SaleInput{SoldMachineID: &second.ID, SaleFields: usecase.SaleFields{SerialNo: ptr("SN-1")}},
		})
		assert.ErrorIs(t, err, domainerrors.ErrSerialNoAlreadyExists)
	})
}

func TestMachineService_DeleteMachine_Cascade(t *testing.T) {
	store := mockService.NewMockObjectStore(t)
	fx := createTestMachineService(t, store)
	ctx := context.Background()

	dee := testutil.CreateUser(t, fx.db, "Dee", "dee@example.com", entity.RoleDistributor)
	pump := testutil.CreateMachine(t, fx.db, entity.EquipmentTypePump, "VP-100", "P-100")
	seal := testutil.CreateMachine(t, fx.db, entity.EquipmentTypePart, "Seal", "S-1")
	require.NoError(t, fx.db.Model(&model.MachineModel{}).Where("id = ?", pump.ID).UpdateColumn("file_key", "machines/P-100/manual.pdf").Error)

	sold1 := testutil.CreateSoldMachine(t, fx.db, pump.ID, "SN-1", testutil.SoldMachineFixture{RecordedBy: &dee.ID})
	sold2 := testutil.CreateSoldMachine(t, fx.db, pump.ID, "SN-2", testutil.SoldMachineFixture{})
	r1 := testutil.CreateServiceReport(t, fx.db, dee.ID, &sold1.ID, "Warranty", "noise", "service_reports/a/1.jpg")
	testutil.CreateServiceReport(t, fx.db, dee.ID, &sold2.ID, "AMC", "leak", "service_reports/b/2.jpg", "service_reports/b/3.jpg")
	testutil.AddPart(t, fx.db, r1.ID, seal.ID, 2)

	// A report on an unrelated unit that consumed the pump as a part.
	other := testutil.CreateMachine(t, fx.db, entity.EquipmentTypePump, "VP-200", "P-200")
	otherSold := testutil.CreateSoldMachine(t, fx.db, other.ID, "SN-9", testutil.SoldMachineFixture{})
	kept := testutil.CreateServiceReport(t, fx.db, dee.ID, &otherSold.ID, "Paid", "swap")
	testutil.AddPart(t, fx.db, kept.ID, pump.ID, 1)
	testutil.AddPart(t, fx.db, kept.ID, seal.ID, 1)

	for _, key := range []string{"machines/P-100/manual.pdf", "service_reports/a/1.jpg", "service_reports/b/2.jpg", "service_reports/b/3.jpg"} {
		store.EXPECT().Delete(ctx, key).Return(nil).Once()
	}

	summary, err := fx.service.DeleteMachine(ctx, pump.ID)
	require.NoError(t, err)
	assert.Equal(t, pump.ID, summary.ID)
	assert.Equal(t, "VP-100", summary.ModelNo)
	require.NotNil(t, summary.PartNo)
	assert.Equal(t, "P-100", *summary.PartNo)
	assert.Equal(t, entity.EquipmentTypePump, summary.TypeName)

	var remainingMachines []model.MachineModel
	require.NoError(t, fx.db.Order("model_no").Find(&remainingMachines).Error)
	require.Len(t, remainingMachines, 2)
	assert.Equal(t, "Seal", remainingMachines[0].ModelNo)
	assert.Equal(t, "VP-200", remainingMachines[1].ModelNo)

	assert.EqualValues(t, 1, testutil.Count(t, fx.db, &model.SoldMachineModel{}))
	assert.EqualValues(t, 1, testutil.Count(t, fx.db, &model.ServiceReportModel{}))
	assert.Zero(t, testutil.Count(t, fx.db, &model.ServiceReportFileModel{}))

	var parts []model.ServiceReportPartModel
	require.NoError(t, fx.db.Find(&parts).Error)
	require.Len(t, parts, 1)
	assert.Equal(t, kept.ID, parts[0].ServiceReportID)
	assert.Equal(t, seal.ID, parts[0].MachineID)

	_, err = fx.service.DeleteMachine(ctx, pump.ID)
	assert.ErrorIs(t, err, domainerrors.ErrMachineNotFound)
}

func TestMachineService_DeleteMachine_StoreFailureIsIgnored(t *testing.T) {
	store := mockService.NewMockObjectStore(t)
	fx := createTestMachineService(t, store)
	ctx := context.Background()

	pump := testutil.CreateMachine(t, fx.db, entity.EquipmentTypePump, "VP-100", "")
	require.NoError(t, fx.db.Model(&model.MachineModel{}).Where("id = ?", pump.ID).UpdateColumn("file_key", "machines/VP-100/a.pdf").Error)

	store.EXPECT().Delete(ctx, "machines/VP-100/a.pdf").Return(errors.New("denied"))

	_, err := fx.service.DeleteMachine(ctx, pump.ID)
	require.NoError(t, err)
	assert.Zero(t, testutil.Count(t, fx.db, &model.MachineModel{}))
}

func TestMachineService_ListMachinesByType(t *testing.T) {
	store, _ := newMemStore(t)
	fx := createTestMachineService(t, store)
	ctx := context.Background()

	testutil.CreateMachine(t, fx.db, entity.EquipmentTypePump, "VP-100", "P-100")
	testutil.CreateMachine(t, fx.db, entity.EquipmentTypePart, "Seal", "S-1")

	page, err := fx.service.ListMachinesByType(ctx, "pump", entity.ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, entity.DefaultLimit, page.Limit)

	_, err = fx.service.ListMachinesByType(ctx, "valve", entity.ListQuery{})
	assert.ErrorIs(t, err, domainerrors.ErrEquipmentTypeNotFound)

	invalid := []entity.ListQuery{
		{Page: -1},
		{Limit: entity.MaxLimit + 1},
		{Limit: -5},
		{SortOrder: "sideways"},
	}
	for _, query := range invalid {
		_, err := fx.service.ListMachinesByType(ctx, "pump", query)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "%+v", query)
	}
}

func TestMachineService_LookupBySerial(t *testing.T) {
	store := mockService.NewMockObjectStore(t)
	fx := createTestMachineService(t, store)
	ctx := context.Background()

	pump := testutil.CreateMachine(t, fx.db, entity.EquipmentTypePump, "VP-100", "P-100")
	require.NoError(t, fx.db.Model(&model.MachineModel{}).Where("id = ?", pump.ID).UpdateColumn("file_key", "machines/P-100/manual.pdf").Error)
	testutil.CreateSoldMachine(t, fx.db, pump.ID, "SN-1", testutil.SoldMachineFixture{CustomerName: "Jo"})

	t.Run("presigned catalog file", func(t *testing.T) {
		store.EXPECT().PresignURL(ctx, "machines/P-100/manual.pdf", newTestConfig().ObjectStore.PresignTTL).
			Return("https://signed.example.com/manual.pdf", nil).Once()

		lookup, err := fx.service.LookupBySerial(ctx, " SN-1 ")
		require.NoError(t, err)
		assert.Equal(t, "SN-1", lookup.SoldMachine.SerialNo)
		assert.Equal(t, "VP-100", lookup.Machine.ModelNo)
		assert.Equal(t, "https://signed.example.com/manual.pdf", lookup.FileURL)
	})

	t.Run("falls back to the public location", func(t *testing.T) {
		store.EXPECT().PresignURL(ctx, "machines/P-100/manual.pdf", mock.Anything).
			Return("", errors.New("signing disabled")).Once()
		store.EXPECT().PublicURL("machines/P-100/manual.pdf").
			Return("https://files.example.com/machines/P-100/manual.pdf").Once()

		lookup, err := fx.service.LookupBySerial(ctx, "SN-1")
		require.NoError(t, err)
		assert.Equal(t, "https://files.example.com/machines/P-100/manual.pdf", lookup.FileURL)
	})

	t.Run("unknown serial", func(t *testing.T) {
		_, err := fx.service.LookupBySerial(ctx, "SN-404")
		assert.ErrorIs(t, err, domainerrors.ErrSoldMachineNotFound)
	})
}

// TestMachineLifecycle walks a machine from catalog entry through a sale and
// a service visit to its cascading removal.
func TestMachineLifecycle(t *testing.T) {
	store, bucket := newMemStore(t)
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	txManager := postgres.NewTransactionManager(db)
	catalogRepo := postgres.NewCatalogRepository(db)
	machineRepo := postgres.NewMachineRepository(db)
	soldRepo := postgres.NewSoldMachineRepository(db)
	reportRepo := postgres.NewServiceReportRepository(db)

	machines := NewMachineService(MachineServiceParams{
		TxManager: txManager, CatalogRepo: catalogRepo, MachineRepo: machineRepo, SoldRepo: soldRepo,
		Store: store, Config: newTestConfig(), Logger: newDiscardLogger(),
	})
	sales := NewSoldMachineService(SoldMachineServiceParams{
		TxManager: txManager, MachineRepo: machineRepo, SoldRepo: soldRepo,
		Store: store, Logger: newDiscardLogger(),
	})
	reports := NewServiceReportService(ServiceReportServiceParams{
		TxManager: txManager, CatalogRepo: catalogRepo, MachineRepo: machineRepo, SoldRepo: soldRepo,
		ReportRepo: reportRepo, Store: store, Renderer: mockService.NewMockDocumentRenderer(t),
		Config: newTestConfig(), Logger: newDiscardLogger(),
	})
	admin := loadActor(t, db, testutil.CreateUser(t, db, "Ada", "ada@example.com", entity.RoleAdmin).ID)
	gasket := testutil.CreateMachine(t, db, entity.EquipmentTypePart, "Gasket", "G-1")

	px100, err := machines.CreateMachine(ctx, &usecase.CreateMachineInput{TypeName: "pump", ModelNo: "PX100", PartNo: ptr("P-1")})
	require.NoError(t, err)

	_, err = machines.CreateMachine(ctx, &usecase.CreateMachineInput{TypeName: "pump", ModelNo: "PX200", PartNo: ptr("P-1")})
	require.ErrorIs(t, err, domainerrors.ErrPartNoAlreadyExists)

	sold, err := sales.CreateSoldMachine(ctx, admin, &usecase.CreateSoldMachineInput{
		MachineID:    px100.ID,
		SerialNo:     "SN-001",
		CustomerName: ptr("Acme"),
	})
	require.NoError(t, err)

	created, err := reports.CreateServiceReport(ctx, admin, &usecase.CreateServiceReportInput{
		ServiceTypeID: testutil.ServiceTypeID(t, db, "Warranty"),
		SoldMachineID: &sold.ID,
		Parts:         []usecase.PartInput{{MachineID: gasket.ID, Quantity: ptr(2)}},
		Files:         []usecase.FileUpload{{Filename: "site.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")}},
	})
	require.NoError(t, err)

	view, err := reports.GetServiceReport(ctx, admin, created.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Machine)
	assert.Equal(t, "SN-001", view.Machine.SerialNo)
	require.Len(t, view.Parts, 1)
	assert.Equal(t, 2, view.Parts[0].Quantity)
	require.Len(t, view.Files, 1)

	_, err = machines.DeleteMachine(ctx, px100.ID)
	require.NoError(t, err)

	_, err = reports.GetServiceReport(ctx, admin, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrServiceReportNotFound)
	_, err = sales.GetSoldMachine(ctx, admin, sold.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSoldMachineNotFound)
	assert.EqualValues(t, 0, testutil.Count(t, db, &model.SoldMachineModel{}))
	assert.EqualValues(t, 0, testutil.Count(t, db, &model.ServiceReportModel{}))
	assert.EqualValues(t, 0, testutil.Count(t, db, &model.ServiceReportPartModel{}))
	assert.EqualValues(t, 0, testutil.Count(t, db, &model.ServiceReportFileModel{}))

	iter := bucket.List(nil)
	_, err = iter.Next(ctx)
	assert.ErrorIs(t, err, io.EOF, "attachments are removed from the store")
}
