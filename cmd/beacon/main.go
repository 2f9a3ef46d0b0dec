package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"beacon/config"
	"beacon/internal/delivery"
	"beacon/internal/delivery/http"
	"beacon/internal/delivery/http/middleware"
	"beacon/internal/delivery/http/router/handler"
	"beacon/internal/domain/service"
	"beacon/internal/infra/auth"
	"beacon/internal/infra/cache"
	logs "beacon/internal/infra/log"
	"beacon/internal/infra/notification"
	"beacon/internal/infra/persistence/postgres"
	"beacon/internal/infra/pubsub"
	"beacon/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
		newInboxCache,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewMemberRepository,
			postgres.NewTokenRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newPushService,
		),
		pubsub.Module,
	)
}

// newPushService creates the FCM-backed push service
func newPushService(ctx context.Context, cfg *config.Config) (service.PushService, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required")
	}

	svc, err := notification.NewFCMService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create FCM service: %w", err)
	}

	return svc, nil
}

// newInboxCache creates the TTL page cache for inbox listings
func newInboxCache(cfg *config.Config) *cache.InboxCache {
	return cache.NewInboxCache(cfg.Inbox.CacheTTL, cfg.Inbox.CacheMaxEntries, nil)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewInboxService,
			impl.NewRegistryService,
			impl.NewDispatchService,
			impl.NewPreferencesService,
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
			handler.NewInboxHandler,
			handler.NewRegistryHandler,
			handler.NewPreferencesHandler,
			handler.NewDispatchHandler,
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
