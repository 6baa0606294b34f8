package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storefront/config"
	_ "storefront/docs" // Swagger docs
	"storefront/internal/httpserver"
	"storefront/pkg/authapi"
	"storefront/pkg/dummyjson"
	"storefront/pkg/log"
)

// @title       Storefront API
// @description Paginated product catalog, carts and auth over a remote collection API.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Storefront...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Catalog URL: %s", cfg.Catalog.BaseURL)

	// 3. Collaborators
	catalogClient := dummyjson.NewClient(cfg.Catalog.BaseURL).
		WithTimeout(cfg.Catalog.Timeout).
		WithRateLimit(cfg.Catalog.RequestsPerSecond)

	authClient := authapi.NewClient(cfg.Auth.BaseURL).
		WithPaths(cfg.Auth.LoginPath, cfg.Auth.RegisterPath).
		WithTimeout(cfg.Auth.Timeout)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		CatalogClient:   catalogClient,
		AuthClient:      authClient,
		CategoriesTTL:   cfg.Catalog.CategoriesTTL,
		Cookie:          cfg.Cookie,
		Pagination:      cfg.Pagination,
		Session:         cfg.Session,
		RateLimit:       cfg.RateLimit,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
