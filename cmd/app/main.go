package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parcels/cmd"
	httpadapter "parcels/internal/adapters/in/http"
	"parcels/internal/adapters/out/postgres"
	"parcels/internal/generated/servers"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		log.Fatalf("%v", err)
	}
}

// run wires the application and serves HTTP until a shutdown signal arrives.
func run(logger *slog.Logger) error {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.Open(configs.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	if err = postgres.Migrate(ctx, gormDB); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, logger)
	if err != nil {
		return fmt.Errorf("building application: %w", err)
	}
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("starting jobs: %w", err)
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs.HTTPPort, logger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return fmt.Errorf("loading OpenAPI document: %w", err)
	}

	server := httpadapter.NewServer(app.CreateHTTPHandlers(), logger)
	e, err := httpadapter.NewEcho(server, swagger, httpadapter.NewMetrics())
	if err != nil {
		return fmt.Errorf("building router: %w", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown", "error", err)
		}
	}()

	logger.Info("Starting HTTP server", "port", port)
	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving HTTP: %w", err)
	}
	logger.Info("HTTP server stopped")
	return nil
}
