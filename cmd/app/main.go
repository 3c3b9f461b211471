package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelpos/cmd"
	httpadapter "hotelpos/internal/adapters/in/http"
	"hotelpos/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	settings, err := cmd.LoadSettings(config.SettingsFile)
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, sqlDB := openDatabases(config)
	defer sqlDB.Close()

	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(ctx, config, settings, gormDB, sqlDB, logger)
	if err != nil {
		log.Fatalf("Error wiring application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to release resources", "error", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, config.HTTPPort, logger)
}

func openDatabases(config cmd.Config) (*gorm.DB, *sql.DB) {
	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	sqlDB, err := sql.Open("postgres", config.DSN())
	if err != nil {
		log.Fatalf("Error opening reporting connection: %v", err)
	}
	return gormDB, sqlDB
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := httpadapter.NewRouter(app.CreateHTTPServer(), app.CreateIdentityProvider(), logger)
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down server", "error", err)
	}
}
