package main

import (
	"context"
	"log/slog"
	"os"

	"vacuum/config"
	"vacuum/internal/delivery"
	"vacuum/internal/delivery/api"
	"vacuum/internal/delivery/api/middleware"
	"vacuum/internal/delivery/api/router/handler"
	"vacuum/internal/infra/auth"
	"vacuum/internal/infra/cache"
	logs "vacuum/internal/infra/log"
	"vacuum/internal/infra/pdf"
	"vacuum/internal/infra/persistence/postgres"
	"vacuum/internal/infra/qrcode"
	"vacuum/internal/infra/storage"
	"vacuum/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRoleRepository,
			postgres.NewCatalogRepository,
			postgres.NewMachineRepository,
			postgres.NewSoldMachineRepository,
			postgres.NewServiceReportRepository,
			postgres.NewStatisticsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		auth.Module,
		storage.Module,
		cache.Module,
		fx.Provide(
			qrcode.NewQRCodeService,
			pdf.NewReportRenderer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewMachineService,
			impl.NewSoldMachineService,
			impl.NewServiceReportService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewMachineHandler,
			handler.NewSoldMachineHandler,
			handler.NewServiceReportHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
