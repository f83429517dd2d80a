package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arca/investment-simulator/internal/config"
	"github.com/arca/investment-simulator/internal/httpapi"
	"github.com/arca/investment-simulator/internal/simulator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var addr, configPath, logLevel string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the simulator HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			settings, err := config.ParseServerSettings()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				settings.Addr = addr
			}
			if cmd.Flags().Changed("config") {
				settings.ConfigPath = configPath
			}
			if cmd.Flags().Changed("log-level") {
				settings.LogLevel = logLevel
			}
			return serve(settings)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (env SIMULATOR_ADDR)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file (env SIMULATOR_CONFIG)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error (env SIMULATOR_LOG_LEVEL)")
	return cmd
}

func serve(settings config.ServerSettings) error {
	logger, err := initLogger(settings.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := config.NewInputParser().LoadFromFile(settings.ConfigPath)
	if err != nil {
		return err
	}
	sim, err := simulator.New(*cfg)
	if err != nil {
		return fmt.Errorf("build simulator: %w", err)
	}
	sim.SetLogger(logger.Sugar())

	handler := httpapi.NewRouter(httpapi.SimulatorHandler{Simulator: sim, Logger: logger}, settings.CORSOrigins)
	server := &http.Server{
		Addr:         settings.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("simulator listening", zap.String("addr", settings.Addr), zap.Int("regimes", len(cfg.Regimes)))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("start server: %w", err)
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), settings.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server exited")
	return nil
}
