package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "nest_configurator/docs"
	"nest_configurator/internal/adapter/http/handlers"
	"nest_configurator/internal/adapter/persistence/repository"
	"nest_configurator/internal/domain/pricing"
	"nest_configurator/internal/domain/view"
	"nest_configurator/internal/infrastructure/assets"
	"nest_configurator/internal/infrastructure/background"
	"nest_configurator/internal/infrastructure/clock"
	"nest_configurator/internal/infrastructure/config"
	"nest_configurator/internal/infrastructure/database"
	"nest_configurator/internal/infrastructure/markers"
	"nest_configurator/internal/infrastructure/payments"
	"nest_configurator/internal/infrastructure/pricingfile"
	"nest_configurator/internal/infrastructure/tracking"
	"nest_configurator/internal/usecase"
	"nest_configurator/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gomodule/redigo/redis"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// app holds what has to be stopped on shutdown.
type app struct {
	router    *gin.Engine
	registry  *usecase.SessionRegistry
	debouncer *background.Debouncer
	watcher   *pricingfile.Watcher
	redisPool *redis.Pool
}

// Run wires the service and serves HTTP until ctx is done.
func Run(ctx context.Context, cfg *config.Config) error {
	a, err := build(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	go a.registry.RunExpiryLoop(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info().Msg("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func build(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}
	clk := clock.System{}

	table, err := loadTable(cfg.Pricing)
	if err != nil {
		return nil, err
	}
	engine := pricing.NewEngine(table)
	if cfg.Pricing.TableFile != "" {
		w, err := pricingfile.New(cfg.Pricing.TableFile, engine, cfg.Pricing.ReloadDebounce)
		if err != nil {
			return nil, fmt.Errorf("watch pricing table: %w", err)
		}
		if err := w.Start(); err != nil {
			log.Warn().Err(err).Str("path", cfg.Pricing.TableFile).Msg("pricing table hot reload disabled")
		} else {
			a.watcher = w
		}
	}

	manifest := view.DefaultManifest()
	assetStore, err := assets.NewURLStore(cfg.Assets.BaseURL, cfg.Assets.Extension, manifest)
	if err != nil {
		return nil, err
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, err
	}
	configRepo := repository.NewConfigurationDynamoRepository(ddb, cfg.DynamoDB.ConfigurationsTable)
	cartRepo := repository.NewCartItemDynamoRepository(ddb, cfg.DynamoDB.CartTable)
	paymentRepo := repository.NewDepositPaymentDynamoRepository(ddb, cfg.DynamoDB.PaymentsTable)

	var markerStore interfaces.ISessionMarkerStore
	if cfg.Redis.Addr != "" {
		a.redisPool = markers.NewRedisPool(cfg.Redis.Addr)
		markerStore = markers.NewRedis(a.redisPool, cfg.Session.MarkerTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("session markers in redis")
	} else {
		markerStore = markers.NewMemory(cfg.Session.MarkerTTL, clk)
		log.Info().Msg("session markers in memory")
	}

	a.debouncer = background.NewDebouncer(background.Options{
		Delay:       cfg.Sync.Debounce,
		QueueSize:   cfg.Sync.QueueSize,
		TaskTimeout: cfg.Sync.TaskTimeout,
	})

	deps := usecase.SessionDeps{
		Engine:      engine,
		Resolver:    view.NewResolver(manifest),
		Assets:      assetStore,
		Repo:        configRepo,
		Tracker:     tracking.NewLogTracker(log.Logger),
		Sync:        a.debouncer,
		Clock:       clk,
		IdleTimeout: cfg.Session.IdleTimeout,
	}
	a.registry = usecase.NewSessionRegistry(deps, markerStore, usecase.RegistryOptions{
		CheckInterval: cfg.Session.ExpiryCheckInterval,
		EvictAfter:    cfg.Session.EvictAfter,
	})

	var gateway interfaces.IPaymentGateway
	if !cfg.Payments.Mock {
		mp, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken)
		if err != nil {
			log.Warn().Err(err).Msg("mercado pago gateway not configured")
		} else {
			gateway = mp
		}
	}

	configuratorUseCase := usecase.NewConfiguratorUseCase(a.registry, engine)
	checkoutUseCase := usecase.NewCheckoutUseCase(a.registry, cartRepo, clk)
	depositUseCase := usecase.NewDepositPaymentUseCase(paymentRepo, cartRepo, gateway, clk, usecase.DepositOptions{
		MockMode:           cfg.Payments.Mock,
		DepositRate:        cfg.Payments.DepositRate,
		Sandbox:            cfg.Payments.Sandbox(),
		SandboxPayerEmail:  cfg.Payments.TestPayerEmail,
		SandboxPayerUserID: cfg.Payments.TestPayerUserID,
	})

	a.router = newRouter(
		handlers.NewConfiguratorHandler(configuratorUseCase),
		handlers.NewCartHandler(checkoutUseCase),
		handlers.NewDepositPaymentHandler(depositUseCase, cfg.Payments.Mock),
	)
	return a, nil
}

func loadTable(cfg config.PricingConfig) (*pricing.Table, error) {
	if cfg.TableFile == "" {
		return pricing.DefaultTable()
	}
	t, err := pricing.LoadTableFile(cfg.TableFile)
	if err != nil {
		return nil, fmt.Errorf("load pricing table %s: %w", cfg.TableFile, err)
	}
	log.Info().Str("path", cfg.TableFile).Msg("pricing table loaded")
	return t, nil
}

func newRouter(configurator *handlers.ConfiguratorHandler, cart *handlers.CartHandler, deposits *handlers.DepositPaymentHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConfiguratorRoutes(v1, configurator, cart)
	addCartRoutes(v1, cart, deposits)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.FullPath()).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

// close flushes pending persistence before the process exits.
func (a *app) close() {
	if a.watcher != nil {
		if err := a.watcher.Stop(); err != nil {
			log.Warn().Err(err).Msg("stopping pricing table watcher")
		}
	}
	if a.debouncer != nil {
		a.debouncer.Close()
	}
	if a.redisPool != nil {
		if err := a.redisPool.Close(); err != nil {
			log.Warn().Err(err).Msg("closing redis pool")
		}
	}
}
