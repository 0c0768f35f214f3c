package main

import (
	"context"
	"log/slog"
	"os"

	"iloveyou/config"
	"iloveyou/internal/delivery"
	"iloveyou/internal/delivery/http"
	"iloveyou/internal/delivery/http/middleware"
	"iloveyou/internal/delivery/http/router/handler"
	"iloveyou/internal/infra/auth"
	"iloveyou/internal/infra/firebase"
	logs "iloveyou/internal/infra/log"
	"iloveyou/internal/infra/notification"
	"iloveyou/internal/infra/persistence/firestore"
	"iloveyou/internal/infra/pubsub"
	"iloveyou/internal/infra/qrcode"
	"iloveyou/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			firebase.NewApp,
		),
		firestore.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewPushService,
			auth.NewTokenVerifier,
			newQRCodeConfig,
			qrcode.NewQRCodeService,
		),
		pubsub.Module,
	)
}

// newQRCodeConfig exposes the QR code config for the QR code service
func newQRCodeConfig(cfg *config.Config) *config.QRCodeConfig {
	if cfg.QRCode == nil {
		return &config.QRCodeConfig{}
	}

	return cfg.QRCode
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			func(cfg *config.Config) *config.NotificationConfig { return cfg.Notification },
			impl.NewDispatchService,
			impl.NewReminderService,
			impl.NewUserService,
			impl.NewCoupleService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewReminderHandler,
			handler.NewCoupleHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
