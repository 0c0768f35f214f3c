package main

import (
	"context"
	"log/slog"
	"os"

	"iloveyou/config"
	"iloveyou/internal/delivery"
	"iloveyou/internal/delivery/scheduler"
	"iloveyou/internal/infra/firebase"
	logs "iloveyou/internal/infra/log"
	"iloveyou/internal/infra/notification"
	"iloveyou/internal/infra/persistence/firestore"
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
		injectUsecase(),
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
			notification.NewPushService,
		),
		firestore.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			func(cfg *config.Config) *config.NotificationConfig { return cfg.Notification },
			func(cfg *config.Config) *config.SchedulerConfig { return cfg.Scheduler },
			impl.NewDispatchService,
			impl.NewJobsService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				scheduler.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start scheduler", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
