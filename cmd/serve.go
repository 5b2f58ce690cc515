package main

import (
	"context"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/tractorcare/order-service/internal/app"
	"github.com/tractorcare/order-service/internal/config"
	"github.com/tractorcare/order-service/internal/handler"
	"github.com/tractorcare/order-service/internal/idempotency"
	"github.com/tractorcare/order-service/internal/middleware"
	"github.com/tractorcare/order-service/internal/postgres"
	"github.com/tractorcare/order-service/internal/publisher"
	"github.com/tractorcare/order-service/internal/repo"
	"github.com/tractorcare/order-service/internal/seed"
	"github.com/tractorcare/order-service/internal/service"
	"github.com/tractorcare/order-service/pkg/cache"
	"github.com/tractorcare/order-service/pkg/trm"
)

type storage interface {
	service.OrderRepo
	service.Catalog
	service.CustomerDirectory
	service.CustomerStore
	seed.Seeder
}

type eventPublisher interface {
	service.EventPublisher
	io.Closer
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the customer consumer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	handler.RegisterMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var (
		store     storage
		txManager trm.Manager
	)
	switch conf.Storage.Driver {
	case config.StorageDriverMemory:
		store, txManager = repo.NewMemoryRepo(), trm.NopManager{}
		logger.Warn("using in-memory storage, data is lost on restart")
	default:
		db, err := postgres.New(conf.Postgres)
		panicIfErr("failed to connect to db", err)
		defer db.Close()
		logger.Info("postgres connected")

		panicIfErr("failed to apply migrations", postgres.MigrateUp(ctx, db))
		store, txManager = repo.NewPostgresRepo(db), trm.NewManager(db)
	}

	if conf.Storage.SeedFile != "" {
		f, err := seed.Load(conf.Storage.SeedFile)
		panicIfErr("failed to load seed file", err)
		panicIfErr("failed to seed storage", seed.Apply(ctx, logger, store, f))
	}

	var events eventPublisher
	if len(conf.Kafka.Brokers) > 0 {
		events = publisher.NewKafkaPublisher(logger, conf.Kafka)
	} else {
		events = publisher.NewLogPublisher(logger)
		logger.Warn("kafka brokers are not set, order events are only logged")
	}
	defer events.Close()

	cache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	service.RegisterCacheMetrics(cache.Stats)
	orderService := service.NewOrderService(logger, txManager, store, store, store, cache, events)

	app := app.New(logger, conf)

	if conf.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		defer client.Close()
		panicIfErr("failed to connect to redis", client.Ping(ctx).Err())
		logger.Info("redis connected")

		app.UseAPI(middleware.Idempotency(logger, idempotency.NewRedisStore(client, conf.Redis.IdempotencyTTL)))
	}

	app.SetHTTPHandlers(handler.NewHTTPHandler(logger, orderService))
	if len(conf.Kafka.Brokers) > 0 {
		customerService := service.NewCustomerService(logger, store)
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, customerService))
	}
	app.SetStarters(cache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})

	if err := app.Start(ctx); err != nil {
		return err
	}
	if err := app.Wait(ctx); err != nil {
		logger.Error("application failed", slog.Any("error", err))
	}
	return app.Stop()
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
