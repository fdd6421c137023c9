package impl

import (
	"context"
	"strings"
	"testing"

	"vacuum/internal/domain/entity"
	domainerrors "vacuum/internal/domain/errors"
	"vacuum/internal/domain/repository"
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

type serviceReportServiceFixtures struct {
	db          *gorm.DB
	service     usecase.ServiceReportUsecase
	renderer    *mockService.MockDocumentRenderer
	admin       *entity.User
	distributor *entity.User
	rival       *entity.User
	pump        *model.MachineModel
	seal        *model.MachineModel
	sold        *model.SoldMachineModel
	warrantyID  uuid.UUID
}

func createTestServiceReportService(t *testing.T, store service.ObjectStore, txManager repository.TransactionManager) serviceReportServiceFixtures {
	db := testutil.NewSQLiteDB(t)
	if txManager == nil {
		txManager = postgres.NewTransactionManager(db)
	}
	renderer := mockService.NewMockDocumentRenderer(t)

	admin := testutil.CreateUser(t, db, "Ada", "ada@example.com", entity.RoleAdmin)
	dee := testutil.CreateUser(t, db, "Dee", "dee@example.com", entity.RoleDistributor)
	rival := testutil.CreateUser(t, db, "", "rex@example.com", entity.RoleDistributor)
	pump := testutil.CreateMachine(t, db, entity.EquipmentTypePump, "VP-100", "P-100")

	return serviceReportServiceFixtures{
		db: db,
		service: NewServiceReportService(ServiceReportServiceParams{
			TxManager:   txManager,
			CatalogRepo: postgres.NewCatalogRepository(db),
			MachineRepo: postgres.NewMachineRepository(db),
			SoldRepo:    postgres.NewSoldMachineRepository(db),
			ReportRepo:  postgres.NewServiceReportRepository(db),
			Store:       store,
			Renderer:    renderer,
			Config:      newTestConfig(),
			Logger:      newDiscardLogger(),
		}),
		renderer:    renderer,
		admin:       loadActor(t, db, admin.ID),
		distributor: loadActor(t, db, dee.ID),
		rival:       loadActor(t, db, rival.ID),
		pump:        pump,
		seal:        testutil.CreateMachine(t, db, entity.EquipmentTypePart, "Seal", "S-1"),
		sold: testutil.CreateSoldMachine(t, db, pump.ID, "SN-1", testutil.SoldMachineFixture{
			RecordedBy:      &dee.ID,
			CustomerName:    "Jo",
			CustomerCompany: "Acme Labs",
		}),
		warrantyID: testutil.ServiceTypeID(t, db, "Warranty"),
	}
}

func TestServiceReportService_CreateServiceReport(t *testing.T) {
	store, bucket := newMemStore(t)
	fx := createTestServiceReportService(t, store, nil)
	ctx := context.Background()

	view, err := fx.service.CreateServiceReport(ctx, fx.distributor, &usecase.CreateServiceReportInput{
		ServiceTypeID:     fx.warrantyID,
		SoldMachineID:     &fx.sold.ID,
		Problem:           ptr("Noisy bearing"),
		Solution:          ptr("Replaced seal"),
		ServicePersonName: ptr(" "),
		Parts: []usecase.PartInput{
			{MachineID: fx.seal.ID},
			{MachineID: fx.pump.ID, Quantity: ptr(3)},
		},
		Files: []usecase.FileUpload{
			{Filename: "before.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")},
			{Filename: "", Data: []byte("ignored")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Dee", view.AuthorName)
	assert.Equal(t, "dee@example.com", view.AuthorEmail)
	assert.Equal(t, "Warranty", view.ServiceTypeName)
	assert.Equal(t, "Noisy bearing", *view.Problem)
	assert.Nil(t, view.ServicePersonName)

	require.NotNil(t, view.Machine)
	assert.Equal(t, "SN-1", view.Machine.SerialNo)
	assert.Equal(t, "VP-100", view.Machine.ModelNo)
	assert.Equal(t, entity.EquipmentTypePump, view.Machine.TypeName)
	require.NotNil(t, view.Customer)
	assert.Equal(t, "Acme Labs", *view.Customer.Company)

	require.Len(t, view.Parts, 2)
	quantities := map[string]int{}
	for _, part := range view.Parts {
		quantities[part.ModelNo] = part.Quantity
	}
	assert.Equal(t, map[string]int{"Seal": entity.DefaultPartQuantity, "VP-100": 3}, quantities)

	require.Len(t, view.Files, 1)
	key := view.Files[0].FileKey
	assert.True(t, strings.HasPrefix(key, "service_reports/"+view.ID.String()+"/"), key)
	assert.NotEmpty(t, view.Files[0].URL)
	data, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), data)
}

func TestServiceReportService_CreateServiceReport_WithoutSoldMachine(t *testing.T) {
	store, _ := newMemStore(t)
	fx := createTestServiceReportService(t, store, nil)

	view, err := fx.service.CreateServiceReport(context.Background(), fx.admin, &usecase.CreateServiceReportInput{
		ServiceTypeID: fx.warrantyID,
	})
	require.NoError(t, err)
	assert.Equal(t, testOrganization, view.AuthorName, "admins report under the organization name")
	assert.Nil(t, view.Machine)
	assert.Nil(t, view.Customer)
	assert.Empty(t, view.Parts)
	assert.Empty(t, view.Files)
}

func TestServiceReportService_CreateServiceReport_RejectsBadReferences(t *testing.T) {
	// The mock store has no expectations: nothing may be uploaded.
	store := mockService.NewMockObjectStore(t)
	fx := createTestServiceReportService(t, store, nil)
	ctx := context.Background()
	files := []usecase.FileUpload{{Filename: "a.jpg", Data: []byte("x")}}

	tests := []struct {
		name    string
		input   *usecase.CreateServiceReportInput
		wantErr error
	}{
		{
			name:    "unknown service type",
			input:   &usecase.CreateServiceReportInput{ServiceTypeID: uuid.New(), Files: files},
			wantErr: domainerrors.ErrServiceTypeNotFound,
		},
		{
			name:    "unknown sold machine",
			input:   &usecase.CreateServiceReportInput{ServiceTypeID: fx.warrantyID, SoldMachineID: ptr(uuid.New()), Files: files},
			wantErr: domainerrors.ErrSoldMachineNotFound,
		},
		{
			name: "unknown part machine",
			input: &usecase.CreateServiceReportInput{
				ServiceTypeID: fx.warrantyID,
				Parts:         []usecase.PartInput{{MachineID: fx.seal.ID}, {MachineID: uuid.New()}},
				Files:         files,
			},
			wantErr: domainerrors.ErrMachineNotFound,
		},
		{
			name: "quantity below one",
			input: &usecase.CreateServiceReportInput{
				ServiceTypeID: fx.warrantyID,
				Parts:         []usecase.PartInput{{MachineID: fx.seal.ID, Quantity: ptr(0)}},
				Files:         files,
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.CreateServiceReport(ctx, fx.distributor, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Zero(t, testutil.Count(t, fx.db, &model.ServiceReportModel{}))
	assert.Zero(t, testutil.Count(t, fx.db, &model.ServiceReportPartModel{}))
}

func TestServiceReportService_CreateServiceReport_SkipsFailedUploads(t *testing.T) {
	store := mockService.NewMockObjectStore(t)
	fx := createTestServiceReportService(t, store, nil)
	ctx := context.Background()

	store.EXPECT().
		Upload(ctx, mock.MatchedBy(func(obj service.UploadObject) bool { return obj.Filename == "broken.jpg" })).
		Return("", errors.New("timeout"))
	store.EXPECT().
		Upload(ctx, mock.MatchedBy(func(obj service.UploadObject) bool { return obj.Filename == "fine.jpg" })).
		Return("service_reports/x/fine.jpg", nil)
	store.EXPECT().
		PresignURL(ctx, "service_reports/x/fine.jpg", mock.Anything).
		Return("https://signed.example.com/fine.jpg", nil)

	view, err := fx.service.CreateServiceReport(ctx, fx.distributor, &usecase.CreateServiceReportInput{
		ServiceTypeID: fx.warrantyID,
		Files: []usecase.FileUpload{
			{Filename: "broken.jpg", Data: []byte("a")},
			{Filename: "fine.jpg", Data: []byte("b")},
		},
	})
	require.NoError(t, err)
	require.Len(t, view.Files, 1)
	assert.Equal(t, "service_reports/x/fine.jpg", view.Files[0].FileKey)
	assert.Equal(t, "https://signed.example.com/fine.jpg", view.Files[0].URL)
}

func TestServiceReportService_CreateServiceReport_FailedTransactionDropsUploads(t *testing.T) {
	store := mockService.NewMockObjectStore(t)
	fx := createTestServiceReportService(t, store, failingTxManager{err: errors.New("database down")})
	ctx := context.Background()

	store.EXPECT().Upload(ctx, mock.Anything).Return("service_reports/x/a.jpg", nil)
	store.EXPECT().Delete(ctx, "service_reports/x/a.jpg").Return(nil)

	_, err := fx.service.CreateServiceReport(ctx, fx.distributor, &usecase.CreateServiceReportInput{
		ServiceTypeID: fx.warrantyID,
		Files:         []usecase.FileUpload{{Filename: "a.jpg", Data: []byte("a")}},
	})
	require.Error(t, err)
}

func TestServiceReportService_Visibility(t *testing.T) {
	store, _ := newMemStore(t)
	fx := createTestServiceReportService(t, store, nil)
	ctx := context.Background()

	own := testutil.CreateServiceReport(t, fx.db, fx.distributor.ID, &fx.sold.ID, "Warranty", "mine")
	foreign := testutil.CreateServiceReport(t, fx.db, fx.rival.ID, nil, "AMC", "theirs")

	_, err := fx.service.GetServiceReport(ctx, fx.distributor, foreign.ID)
	assert.ErrorIs(t, err, domainerrors.ErrServiceReportNotFound)

	view, err := fx.service.GetServiceReport(ctx, fx.admin, foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, "rex@example.com", view.AuthorName, "authors without a name are shown by email")

	page, err := fx.service.ListServiceReports(ctx, fx.distributor, entity.ListQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, own.ID, page.Items[0].ID)

	page, err = fx.service.ListServiceReports(ctx, fx.admin, entity.ListQuery{Search: "THEIRS"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, foreign.ID, page.Items[0].ID)

	err = fx.service.DeleteServiceReport(ctx, fx.distributor, foreign.ID)
	assert.ErrorIs(t, err, domainerrors.ErrServiceReportNotFound)
	assert.EqualValues(t, 2, testutil.Count(t, fx.db, &model.ServiceReportModel{}))
}

func TestServiceReportService_RenderServiceReport(t *testing.T) {
	store, _ := newMemStore(t)
	fx := createTestServiceReportService(t, store, nil)
	ctx := context.Background()

	report := testutil.CreateServiceReport(t, fx.db, fx.distributor.ID, &fx.sold.ID, "Warranty", "noise")

	fx.renderer.EXPECT().
		RenderServiceReport(ctx, mock.MatchedBy(func(view *entity.ServiceReportView) bool {
			return view.ID == report.ID && view.Machine != nil && view.Machine.SerialNo == "SN-1"
		})).
		Return([]byte("%PDF-1.3"), nil)
	fx.renderer.EXPECT().ContentType().Return("application/pdf")

	doc, err := fx.service.RenderServiceReport(ctx, fx.distributor, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "service-report-"+report.ID.String()+".pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, []byte("%PDF-1.3"), doc.Data)

	_, err = fx.service.RenderServiceReport(ctx, fx.rival, report.ID)
	assert.ErrorIs(t, err, domainerrors.ErrServiceReportNotFound)
}

func TestServiceReportService_DeleteServiceReport(t *testing.T) {
	store := mockService.NewMockObjectStore(t)
	fx := createTestServiceReportService(t, store, nil)
	ctx := context.Background()

	report := testutil.CreateServiceReport(t, fx.db, fx.distributor.ID, &fx.sold.ID, "Warranty", "noise",
		"service_reports/r/1.jpg", "service_reports/r/2.jpg")
	testutil.AddPart(t, fx.db, report.ID, fx.seal.ID, 2)

	store.EXPECT().Delete(ctx, "service_reports/r/1.jpg").Return(nil).Once()
	store.EXPECT().Delete(ctx, "service_reports/r/2.jpg").Return(errors.New("gone")).Once()

	require.NoError(t, fx.service.DeleteServiceReport(ctx, fx.distributor, report.ID))
	assert.Zero(t, testutil.Count(t, fx.db, &model.ServiceReportModel{}))
	assert.Zero(t, testutil.Count(t, fx.db, &model.ServiceReportPartModel{}))
	assert.Zero(t, testutil.Count(t, fx.db, &model.ServiceReportFileModel{}))
	assert.EqualValues(t, 1, testutil.Count(t, fx.db, &model.SoldMachineModel{}))
}

func TestServiceReportService_ListServiceTypes(t *testing.T) {
	store, _ := newMemStore(t)
	fx := createTestServiceReportService(t, store, nil)

	types, err := fx.service.ListServiceTypes(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(types))
	for _, serviceType := range types {
		names = append(names, serviceType.Name)
	}
	assert.ElementsMatch(t, entity.DefaultServiceTypes, names)
}
