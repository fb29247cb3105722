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

	"logistics/cmd"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.Open(ctx, config.DSN(), config.DBOptions())
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err = postgres.Migrate(ctx, gormDB); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		log.Fatalf("compose application: %v", err)
	}

	if config.BootstrapAdminEnabled() {
		if err = bootstrapAdmin(ctx, app, config); err != nil {
			log.Fatalf("bootstrap admin: %v", err)
		}
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, config.HTTPPort, logger)
}

func bootstrapAdmin(ctx context.Context, app *cmd.CompositionRoot, config cmd.Config) error {
	command, err := commands.NewEnsureAdminCommand(
		config.BootstrapAdminEmail, config.BootstrapAdminPassword, commands.DefaultAdminCompany)
	if err != nil {
		return err
	}
	_, err = app.CreateEnsureAdminCommandHandler().Handle(ctx, command)
	return err
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("build router: %v", err)
	}

	go func() {
		logger.Info("starting http server", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", "error", err)
	}
}
