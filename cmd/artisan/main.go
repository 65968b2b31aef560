package main

import (
	"context"
	"log/slog"
	"os"

	"artisanconnect/config"
	"artisanconnect/internal/delivery"
	"artisanconnect/internal/delivery/api"
	"artisanconnect/internal/delivery/api/middleware"
	"artisanconnect/internal/delivery/api/router/handler"
	"artisanconnect/internal/infra/ai"
	"artisanconnect/internal/infra/auth"
	logs "artisanconnect/internal/infra/log"
	"artisanconnect/internal/infra/pubsub"
	"artisanconnect/internal/infra/qrcode"
	"artisanconnect/internal/infra/storage"
	"artisanconnect/internal/usecase/impl"

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
			seedCategories,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewFirebaseVerifier,
			qrcode.NewQRCodeServiceFromConfig,
		),
		pubsub.Module,
		storage.Module,
		ai.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewProfileService,
			impl.NewCatalogService,
			impl.NewProductService,
			impl.NewInquiryService,
			impl.NewFavoriteService,
			impl.NewReviewService,
			impl.NewAssistantService,
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
			handler.NewAuthHandler,
			handler.NewCategoryHandler,
			handler.NewProductHandler,
			handler.NewAssistantHandler,
			handler.NewInquiryHandler,
			handler.NewFavoriteHandler,
			handler.NewReviewHandler,
			handler.NewUploadHandler,
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
