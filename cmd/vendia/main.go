package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/vendia-pos/vendia-pos/internal/app"
	"github.com/vendia-pos/vendia-pos/internal/clients"
	"github.com/vendia-pos/vendia-pos/internal/company"
	"github.com/vendia-pos/vendia-pos/internal/intake"
	"github.com/vendia-pos/vendia-pos/internal/platform/db"
	"github.com/vendia-pos/vendia-pos/internal/products"
	"github.com/vendia-pos/vendia-pos/internal/sales"
)

func main() {
	// .env is optional; real deployments configure via the environment.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN, cfg.PGMaxConns)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	productsHandler := products.NewHandler(logger, products.NewService(products.NewRepository(pool)))
	clientsHandler := clients.NewHandler(logger, clients.NewService(clients.NewRepository(pool)))
	salesHandler := sales.NewHandler(logger, sales.NewService(sales.NewRepository(pool)))
	companyHandler := company.NewHandler(logger, company.NewService(company.NewRepository(pool)))
	intakeHandler := intake.NewHandler(logger, intake.NewService(intake.NewRepository(pool)))

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		ProductsHandler: productsHandler,
		ClientsHandler:  clientsHandler,
		SalesHandler:    salesHandler,
		CompanyHandler:  companyHandler,
		IntakeHandler:   intakeHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("api listening", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
