package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vacuum/internal/delivery/api/middleware"
	"vacuum/internal/delivery/api/router/handler"
	"vacuum/internal/delivery/api/validator"
	"vacuum/internal/domain/entity"
	"vacuum/internal/domain/service"
	mockService "vacuum/internal/mocks/service"
	mockUsecase "vacuum/internal/mocks/usecase"
	"vacuum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixture struct {
	echo        *echo.Echo
	machineUC   *mockUsecase.MockMachineUsecase
	dashboardUC *mockUsecase.MockDashboardUsecase
}

func newRouterFixture(t *testing.T) *routerFixture {
	logger := slog.New(slog.DiscardHandler)

	verifier := mockService.NewMockSessionVerifier(t)
	userUC := mockUsecase.NewMockUserUsecase(t)
	machineUC := mockUsecase.NewMockMachineUsecase(t)
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)

	users := map[string]*entity.User{
		"admin-token":       {ID: uuid.New(), Email: "ada@example.com", Role: &entity.Role{Name: entity.RoleAdmin}},
		"distributor-token": {ID: uuid.New(), Email: "dee@example.com", Role: &entity.Role{Name: entity.RoleDistributor}},
	}
	for token, user := range users {
		identity := &service.SessionIdentity{Subject: token, Email: user.Email}
		verifier.EXPECT().VerifySession(mock.Anything, token).Return(identity, nil).Maybe()
		userUC.EXPECT().ResolveIdentity(mock.Anything, identity).Return(user, nil).Maybe()
	}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
		MachineHandler: handler.NewMachineHandler(handler.MachineHandlerParams{
			MachineUC: machineUC, Logger: logger,
		}),
		SoldMachineHandler: handler.NewSoldMachineHandler(handler.SoldMachineHandlerParams{
			SoldMachineUC: mockUsecase.NewMockSoldMachineUsecase(t), Logger: logger,
		}),
		ServiceReportHandler: handler.NewServiceReportHandler(handler.ServiceReportHandlerParams{
			ServiceReportUC: mockUsecase.NewMockServiceReportUsecase(t), Logger: logger,
		}),
		DashboardHandler: handler.NewDashboardHandler(handler.DashboardHandlerParams{
			DashboardUC: dashboardUC, Logger: logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			Verifier: verifier, UserUC: userUC, Logger: logger,
		}),
	}).RegisterRoutes(e)

	return &routerFixture{echo: e, machineUC: machineUC, dashboardUC: dashboardUC}
}

func (f *routerFixture) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_RoleGates(t *testing.T) {
	f := newRouterFixture(t)

	f.machineUC.EXPECT().LookupBySerial(mock.Anything, "SN-1").
		Return(&usecase.MachineLookup{Machine: &entity.Machine{ID: uuid.New()}}, nil)
	f.dashboardUC.EXPECT().ListUniqueCustomers(mock.Anything, "").Return([]*entity.CustomerSummary{}, nil)

	tests := []struct {
		name       string
		method     string
		target     string
		token      string
		wantStatus int
	}{
		{"health is public", http.MethodGet, "/health", "", http.StatusOK},
		{"api needs a session", http.MethodGet, "/api/me", "", http.StatusUnauthorized},
		{"forgot password needs no session", http.MethodPost, "/api/auth/forgot-password", "", http.StatusBadRequest},
		{"profile", http.MethodGet, "/api/me", "distributor-token", http.StatusOK},
		{"distributor cannot edit the catalog", http.MethodPost, "/api/machines", "distributor-token", http.StatusForbidden},
		{"distributor cannot manage users", http.MethodGet, "/api/roles", "distributor-token", http.StatusForbidden},
		{"distributor can look up serials", http.MethodGet, "/api/machines/lookup?serial_no=SN-1", "distributor-token", http.StatusOK},
		{"customers are admin only", http.MethodGet, "/api/dashboard/customer-machines", "distributor-token", http.StatusForbidden},
		{"admin sees customers", http.MethodGet, "/api/dashboard/customer-machines", "admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(tt.method, tt.target, tt.token)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}
