package main

import (
	"context"
	"log/slog"
	"os"

	"hangar/config"
	"hangar/internal/delivery"
	"hangar/internal/delivery/http"
	httpmiddleware "hangar/internal/delivery/http/middleware"
	"hangar/internal/delivery/http/router/handler"
	deliverymiddleware "hangar/internal/delivery/middleware"
	"hangar/internal/infra/auth"
	logs "hangar/internal/infra/log"
	"hangar/internal/infra/persistence/postgres"
	"hangar/internal/usecase/impl"

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
			postgres.NewManufacturerRepository,
			postgres.NewModelRepository,
			postgres.NewPriceHistoryRepository,
			postgres.NewTransactionManager,
			fx.Annotate(
				postgres.NewFavoriteRepository,
				fx.ResultTags(`name:"favorite"`),
			),
			fx.Annotate(
				postgres.NewPurchaseRepository,
				fx.ResultTags(`name:"purchase"`),
			),
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewManufacturerService,
			impl.NewModelService,
			impl.NewCollectionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewManufacturerHandler,
			handler.NewModelHandler,
			handler.NewCollectionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
