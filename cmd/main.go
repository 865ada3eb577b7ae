package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/store-service/internal/access"
	"github.com/SergeyBogomolovv/store-service/internal/app"
	"github.com/SergeyBogomolovv/store-service/internal/auth"
	"github.com/SergeyBogomolovv/store-service/internal/config"
	"github.com/SergeyBogomolovv/store-service/internal/events"
	"github.com/SergeyBogomolovv/store-service/internal/handler"
	"github.com/SergeyBogomolovv/store-service/internal/middleware"
	"github.com/SergeyBogomolovv/store-service/internal/postgres"
	"github.com/SergeyBogomolovv/store-service/internal/repo"
	"github.com/SergeyBogomolovv/store-service/internal/service"
	"github.com/SergeyBogomolovv/store-service/pkg/cache"
	"github.com/SergeyBogomolovv/store-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title                       Store Service API
// @version                     1.0
// @description                 Документация HTTP API магазина
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	policy, err := access.New()
	panicIfErr("failed to build access policy", err)

	storeRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	productCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL, cache.WithName("product"))
	tokens := auth.NewTokenManager(conf.Auth.JWTSecret, conf.Auth.TokenTTL)
	publisher := newPublisher(logger, conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, storeRepo, storeRepo, policy, publisher)
	productService := service.NewProductService(logger, storeRepo, productCache, policy)
	reviewService := service.NewReviewService(logger, storeRepo, storeRepo, policy)
	collectionService := service.NewCollectionService(logger, txManager, storeRepo, storeRepo, policy)

	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.Use(middleware.Authenticate(tokens))
	app.SetHTTPHandlers(
		handler.NewProductHandler(logger, productService),
		handler.NewOrderHandler(logger, orderService),
		handler.NewReviewHandler(logger, reviewService),
		handler.NewCollectionHandler(logger, collectionService),
	)
	app.SetStarters(productCache, cacheWarmUpAdapter{svc: productService, count: conf.Cache.Capacity})
	app.SetClosers(publisher)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

type publisher interface {
	service.EventPublisher
	app.Closer
}

func newPublisher(logger *slog.Logger, cfg config.Kafka) publisher {
	if !cfg.Enabled {
		logger.Info("kafka disabled, order events are dropped")
		return events.Nop{}
	}
	return events.NewKafkaPublisher(logger, cfg)
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
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
