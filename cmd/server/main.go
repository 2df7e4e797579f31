package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	appcatalog "github.com/sportshop/backend/internal/application/catalog"
	appidentity "github.com/sportshop/backend/internal/application/identity"
	"github.com/sportshop/backend/internal/application/report"
	appshopping "github.com/sportshop/backend/internal/application/shopping"
	"github.com/sportshop/backend/internal/infrastructure/auth"
	"github.com/sportshop/backend/internal/infrastructure/config"
	"github.com/sportshop/backend/internal/infrastructure/imagecache"
	"github.com/sportshop/backend/internal/infrastructure/logger"
	"github.com/sportshop/backend/internal/infrastructure/persistence"
	"github.com/sportshop/backend/internal/interfaces/http/handler"
	"github.com/sportshop/backend/internal/interfaces/http/router"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Directory containing config.toml")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	db, err := persistence.NewDatabase(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = db.Close() }()

	// Token blacklist: Redis when configured, in-process otherwise
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		blacklist = redisBlacklist
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Info("using in-memory token blacklist; logouts do not survive restarts")
	}

	imageCache, err := imagecache.NewCache(cfg.ImageCache.Dir, &http.Client{
		Timeout: cfg.ImageCache.RequestTimeout,
	}, log)
	if err != nil {
		return fmt.Errorf("create image cache: %w", err)
	}

	productRepo := persistence.NewGormProductRepository(db.DB)
	brandRepo := persistence.NewGormBrandRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	salesRepo := persistence.NewGormSalesReportRepository(db.DB)

	jwtService := auth.NewJWTService(cfg.JWT)

	productService := appcatalog.NewProductService(productRepo, log)
	brandService := appcatalog.NewBrandService(brandRepo, log)
	authService := appidentity.NewAuthService(userRepo, jwtService, blacklist, log)
	employeeService := appidentity.NewEmployeeService(employeeRepo, userRepo, log)
	cartService := appshopping.NewCartService(cartRepo, productRepo, userRepo, log)
	orderService := appshopping.NewOrderService(orderRepo, cartRepo, productRepo, userRepo, log)
	salesService := report.NewSalesService(salesRepo, log)

	engine := router.New(router.Config{
		HTTP:       cfg.HTTP,
		JWTService: jwtService,
		Blacklist:  blacklist,
		Logger:     log,
		Handlers: router.Handlers{
			System:   handler.NewSystemHandler(db),
			Auth:     handler.NewAuthHandler(authService),
			Catalog:  handler.NewCatalogHandler(productService, brandService, brandRepo),
			Cart:     handler.NewCartHandler(cartService),
			Order:    handler.NewOrderHandler(orderService),
			Employee: handler.NewEmployeeHandler(employeeService),
			Report:   handler.NewReportHandler(salesService),
			Image:    handler.NewImageHandler(imageCache, productRepo, brandRepo),
		},
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening",
			zap.String("addr", server.Addr),
			zap.String("environment", cfg.App.Environment))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
