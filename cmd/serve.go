// submodule cmd contains command definitions and actions for the icon data server CLI
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/undefined06855/Extra-Icon-Data-Server/internal/repositories"
	"github.com/undefined06855/Extra-Icon-Data-Server/internal/server"
	"github.com/undefined06855/Extra-Icon-Data-Server/internal/services"
	"github.com/undefined06855/Extra-Icon-Data-Server/internal/shared"
	"github.com/undefined06855/Extra-Icon-Data-Server/internal/tasks"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 5 * time.Second

// serveCommand runs the HTTP server
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the icon data HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Serve,
	}
}

// Serve opens the database, runs pending migrations, and serves the
// HTTP API until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd.String("config"))

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	players := repositories.NewPlayerRepository(db)
	validator := services.NewArgonService(config.Argon.BaseURL, r.httpClient, r.logger)
	sessions := tasks.NewSessionEngine(validator, players, r.logger)
	icons := tasks.NewIconEngine(players, r.logger)

	router := server.NewBasicRouter()
	router.Use(server.RequestLogger(r.logger))
	router.Handler(server.NewTokenHandler(sessions, r.logger))
	router.Handler(server.NewIconsHandler(icons, r.logger))
	router.Handler(server.NewRedirectHandler())
	router.Handler(server.NewTokenPageHandler(r.httpClient, r.logger))

	httpServer := &http.Server{
		Addr:    config.Addr(),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		r.logger.Info("listening", "addr", httpServer.Addr, "argon", config.Argon.BaseURL)
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		r.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down cleanly: %w", err)
		}
	}

	return nil
}
