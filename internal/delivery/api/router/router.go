// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vacuum/internal/delivery/api/middleware"
	"vacuum/internal/delivery/api/router/handler"
	"vacuum/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler          *handler.UserHandler
	MachineHandler       *handler.MachineHandler
	SoldMachineHandler   *handler.SoldMachineHandler
	ServiceReportHandler *handler.ServiceReportHandler
	DashboardHandler     *handler.DashboardHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler          *handler.UserHandler
	machineHandler       *handler.MachineHandler
	soldMachineHandler   *handler.SoldMachineHandler
	serviceReportHandler *handler.ServiceReportHandler
	dashboardHandler     *handler.DashboardHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:          params.UserHandler,
		machineHandler:       params.MachineHandler,
		soldMachineHandler:   params.SoldMachineHandler,
		serviceReportHandler: params.ServiceReportHandler,
		dashboardHandler:     params.DashboardHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.POST("/api/auth/forgot-password", r.userHandler.ForgotPassword)

	// Every other API route requires a session; admins and distributors share the
	// field work routes.
	api := e.Group("/api", r.authMiddleware.Authenticate)
	anyRole := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleDistributor)
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	api.GET("/me", r.userHandler.GetProfile)

	// User administration
	users := api.Group("/users", adminOnly)
	{
		users.POST("", r.userHandler.RegisterUser)
		users.GET("/:id", r.userHandler.GetUser)
		users.DELETE("/:id", r.userHandler.DeleteUser)
	}
	roles := api.Group("/roles", adminOnly)
	{
		roles.GET("", r.userHandler.ListRoles)
		roles.GET("/:role/users", r.userHandler.ListUsersByRole)
	}

	// Catalog; the serial lookup also serves distributors filing reports.
	equipmentTypes := api.Group("/equipment-types", adminOnly)
	{
		equipmentTypes.GET("", r.machineHandler.ListEquipmentTypes)
		equipmentTypes.GET("/:type/machines", r.machineHandler.ListMachinesByType)
	}
	machines := api.Group("/machines")
	{
		machines.GET("/lookup", r.machineHandler.LookupBySerial, anyRole)
		machines.POST("", r.machineHandler.CreateMachine, adminOnly)
		machines.GET("/:id", r.machineHandler.GetMachine, adminOnly)
		machines.PATCH("/:id", r.machineHandler.UpdateMachine, adminOnly)
		machines.DELETE("/:id", r.machineHandler.DeleteMachine, adminOnly)
	}

	// Sales
	sales := api.Group("/sold-machines", anyRole)
	{
		sales.POST("", r.soldMachineHandler.CreateSoldMachine)
		sales.GET("", r.soldMachineHandler.ListSoldMachines)
		sales.GET("/:id", r.soldMachineHandler.GetSoldMachine)
		sales.PATCH("/:id", r.soldMachineHandler.UpdateSoldMachine)
		sales.DELETE("/:id", r.soldMachineHandler.DeleteSoldMachine)
	}

	// Service reports
	api.GET("/service-types", r.serviceReportHandler.ListServiceTypes, anyRole)
	reports := api.Group("/service-reports", anyRole)
	{
		reports.POST("", r.serviceReportHandler.CreateServiceReport)
		reports.GET("", r.serviceReportHandler.ListServiceReports)
		reports.GET("/:id", r.serviceReportHandler.GetServiceReport)
		reports.GET("/:id/pdf", r.serviceReportHandler.DownloadServiceReport)
		reports.DELETE("/:id", r.serviceReportHandler.DeleteServiceReport)
	}

	// Dashboard
	dashboard := api.Group("/dashboard", anyRole)
	{
		dashboard.GET("/statistics", r.dashboardHandler.GetStatistics)
		dashboard.GET("/service-type-statistics", r.dashboardHandler.GetServiceTypeStatistics)
		dashboard.GET("/part-number-statistics", r.dashboardHandler.GetPartNumberStatistics)
		dashboard.GET("/recent-activities", r.dashboardHandler.ListRecentActivities)
		dashboard.GET("/customer-machines", r.dashboardHandler.ListCustomers, adminOnly)
	}
}
