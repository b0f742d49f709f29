// Package app собирает приложение: клиенты, репозитории, юзкейсы и
// HTTP-сервер. Состояние загружается из снапшотов один раз при старте;
// при их отсутствии используются сид-данные.
package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/akshop/go-backend/internal/cfg"
	v1Http "github.com/akshop/go-backend/internal/delivery/v1/http"
	"github.com/akshop/go-backend/internal/infrastructure/assistant"
	minioRepo "github.com/akshop/go-backend/internal/repository/minio"
	redisRepo "github.com/akshop/go-backend/internal/repository/redis"
	"github.com/akshop/go-backend/internal/repository/redis/converter"
	"github.com/akshop/go-backend/internal/repository/state"
	"github.com/akshop/go-backend/internal/usecase"
	"github.com/akshop/go-backend/pkg/clients"
	"github.com/akshop/go-backend/pkg/closer"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/akshop/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// Корзины, не менявшиеся дольше этого срока, удаляются при старте.
const cartMaxAge = 30 * 24 * time.Hour

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.New(2 * time.Second)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		log.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("redis client", func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		log.Errorf(err, "failed to initialize minio client")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		log.Errorf(err, "failed to initialize MinIO bucket")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	snapshots := redisRepo.NewSnapshotRepo(redisClient, converter.NewSnapshotConverter(), cfg.Shop, log)

	store := state.NewStore()
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer loadCancel()
	if err := loadState(loadCtx, snapshots, store, log); err != nil {
		log.Errorf(err, "failed to load state snapshots")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if removed := store.CleanupCarts(cartMaxAge); removed > 0 {
		log.Infof("removed %d stale carts", removed)
	}

	imageRepo := minioRepo.NewImageRepo(minioClient, cfg.Minio)
	assistantClient := assistant.NewClient(cfg.Assistant, log)

	catalogUC := usecase.NewCatalogUC(store, snapshots, imageRepo, log)
	cartUC := usecase.NewCartUC(store, store, snapshots, log)
	orderUC := usecase.NewOrderUC(store, store, store, snapshots, log)
	sessionUC := usecase.NewSessionUC(store, store, cfg.Shop, log)
	settingsUC := usecase.NewSettingsUC(store, snapshots, log)
	chatUC := usecase.NewChatUC(store, assistantClient, cfg.Shop, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, cfg.Shop, log)
	router.Init(v1Http.UseCases{
		Catalog:  catalogUC,
		Cart:     cartUC,
		Order:    orderUC,
		Session:  sessionUC,
		Settings: settingsUC,
		Chat:     chatUC,
	})

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add("http server", httpSrv.Stop)

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: httpSrv,
		closer:  cl,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки
// или фатальной ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown error: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

// loadState читает снапшоты коллекций; отсутствующие заменяются сид-данными.
func loadState(ctx context.Context, snapshots *redisRepo.SnapshotRepo, store *state.Store, log logger.Logger) error {
	products, ok, err := snapshots.LoadCatalog(ctx)
	if err != nil {
		return err
	}
	if !ok {
		products = state.SeedProducts()
		log.Infof("catalog snapshot missing, seeded %d products", len(products))
	}
	store.SetProducts(products)

	categories, ok, err := snapshots.LoadCategories(ctx)
	if err != nil {
		return err
	}
	if !ok {
		categories = state.SeedCategories()
	}
	store.SetCategories(categories)

	settings, ok, err := snapshots.LoadSettings(ctx)
	if err != nil {
		return err
	}
	if !ok {
		settings = state.SeedSettings()
	}
	store.SetSettings(settings)

	orders, _, err := snapshots.LoadOrders(ctx)
	if err != nil {
		return err
	}
	store.SetOrders(orders)

	carts, _, err := snapshots.LoadCarts(ctx)
	if err != nil {
		return err
	}
	store.SetCarts(carts)

	return nil
}
