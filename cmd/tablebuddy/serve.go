package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	agentToolsHandler "github.com/m04kA/table-buddy/internal/api/handlers/agent_tools"
	checkAvailabilityHandler "github.com/m04kA/table-buddy/internal/api/handlers/check_availability"
	createReservationHandler "github.com/m04kA/table-buddy/internal/api/handlers/create_reservation"
	getReservationHandler "github.com/m04kA/table-buddy/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/m04kA/table-buddy/internal/api/handlers/list_reservations"
	nextAvailableSlotHandler "github.com/m04kA/table-buddy/internal/api/handlers/next_available_slot"
	operatingHoursHandler "github.com/m04kA/table-buddy/internal/api/handlers/operating_hours"
	tablesHandler "github.com/m04kA/table-buddy/internal/api/handlers/tables"
	turnaroundHandler "github.com/m04kA/table-buddy/internal/api/handlers/turnaround"
	updateReservationStatusHandler "github.com/m04kA/table-buddy/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/table-buddy/internal/api/router"
	reservationsService "github.com/m04kA/table-buddy/internal/service/reservations"
	settingsService "github.com/m04kA/table-buddy/internal/service/settings"
	tablesService "github.com/m04kA/table-buddy/internal/service/tables"
)

func newServeCmd(configPath *string) *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the voice agent tool webhook",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(*configPath, migrateUp)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "apply database migrations on startup")
	cmd.Flags().Lookup("migrate").NoOptDefVal = "true"

	return cmd
}

func serve(configPath string, migrateUp bool) error {
	cfg, log, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting table-buddy for %q...", cfg.Restaurant.Name)
	log.Info("Configuration loaded from %s", configPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, log, migrateUp)
	if err != nil {
		return err
	}
	defer a.close()

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(a.reservations, log)
	tableSvc := tablesService.NewService(a.tables, log)
	settingsSvc := settingsService.NewService(a.settings, cfg.Booking.DefaultTurnaroundMinutes, log)

	// Инициализируем handlers
	handlers := &router.Handlers{
		CheckAvailability:       checkAvailabilityHandler.NewHandler(a.checkAvailability, log),
		NextAvailableSlot:       nextAvailableSlotHandler.NewHandler(a.findNextSlot, log),
		CreateReservation:       createReservationHandler.NewHandler(a.createReservation, log),
		GetReservation:          getReservationHandler.NewHandler(reservationSvc, log),
		ListReservations:        listReservationsHandler.NewHandler(reservationSvc, log),
		UpdateReservationStatus: updateReservationStatusHandler.NewHandler(reservationSvc, log),
		Tables:                  tablesHandler.NewHandler(tableSvc, log),
		OperatingHours:          operatingHoursHandler.NewHandler(settingsSvc, log),
		Turnaround:              turnaroundHandler.NewHandler(settingsSvc, log),
		AgentTools:              agentToolsHandler.NewHandler(a.checkAvailability, a.findNextSlot, a.createReservation, log),
	}

	var metricsOpts *router.Metrics
	if cfg.Metrics.Enabled {
		metricsOpts = &router.Metrics{
			Path:     cfg.Metrics.Path,
			Recorder: a.metrics,
			Handler:  promhttp.Handler(),
		}
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router.New(handlers, metricsOpts),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Ожидаем сигнал завершения
	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
