package main

import (
	"context"
	"log/slog"
	"os"

	"shopmart/config"
	"shopmart/internal/delivery"
	"shopmart/internal/delivery/http"
	"shopmart/internal/delivery/http/middleware"
	"shopmart/internal/delivery/http/router/handler"
	"shopmart/internal/domain/service"
	"shopmart/internal/infra/auth"
	"shopmart/internal/infra/cache"
	"shopmart/internal/infra/event"
	logs "shopmart/internal/infra/log"
	"shopmart/internal/infra/persistence/postgres"
	"shopmart/internal/infra/qrcode"
	"shopmart/internal/usecase/impl"

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
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			newProductCache,
			newOrderEventPublisher,
		),
	)
}

// newProductCache creates the Redis product cache when Redis is configured.
// Without it, catalog reads simply go straight to the repository.
func newProductCache(params cache.Params) (service.ProductCache, error) {
	if params.Config.Redis == nil {
		return nil, nil // Cache is optional
	}

	client, err := cache.NewRedisClient(params)
	if err != nil {
		return nil, err
	}

	return cache.NewProductCache(client, params.Config), nil
}

// newOrderEventPublisher creates the RabbitMQ publisher when a broker is
// configured. Without it, checkout completes without emitting events.
func newOrderEventPublisher(params event.Params) (service.OrderEventPublisher, error) {
	if params.Config.RabbitMQ == nil {
		return nil, nil // Event publishing is optional
	}

	return event.NewRabbitPublisher(params)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCartService,
			impl.NewProductService,
			impl.NewOrderService,
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
			handler.NewAuthHandler,
			handler.NewCartHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
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
