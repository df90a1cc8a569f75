package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/table-buddy/internal/config"
	"github.com/m04kA/table-buddy/internal/domain"
	"github.com/m04kA/table-buddy/internal/infra/storage/memory"
	reservationRepo "github.com/m04kA/table-buddy/internal/infra/storage/reservation"
	settingsRepo "github.com/m04kA/table-buddy/internal/infra/storage/settings"
	tableRepo "github.com/m04kA/table-buddy/internal/infra/storage/table"
	"github.com/m04kA/table-buddy/internal/migrations"
	checkAvailabilityUC "github.com/m04kA/table-buddy/internal/usecase/check_availability"
	createReservationUC "github.com/m04kA/table-buddy/internal/usecase/create_reservation"
	findNextSlotUC "github.com/m04kA/table-buddy/internal/usecase/find_next_slot"
	"github.com/m04kA/table-buddy/pkg/dbmetrics"
	"github.com/m04kA/table-buddy/pkg/logger"
	"github.com/m04kA/table-buddy/pkg/metrics"
	"github.com/m04kA/table-buddy/pkg/txmanager"
)

type tableStore interface {
	GetWithCapacityAtLeast(ctx context.Context, partySize int) ([]*domain.Table, error)
	GetAll(ctx context.Context) ([]*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	Create(ctx context.Context, table *domain.Table) (*domain.Table, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TableStatus) error
}

type reservationStore interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetInWindow(ctx context.Context, filter domain.ReservationWindowFilter) ([]*domain.Reservation, error)
	GetByDate(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, from []domain.ReservationStatus) error
	LockTableForDate(ctx context.Context, tableID int64, date time.Time) error
}

type settingsStore interface {
	GetAllOperatingHours(ctx context.Context) ([]*domain.OperatingHours, error)
	UpsertOperatingHours(ctx context.Context, hours *domain.OperatingHours) (*domain.OperatingHours, error)
	DeleteOperatingHours(ctx context.Context, day string) error
	GetTurnaround(ctx context.Context) (int, error)
	SetTurnaround(ctx context.Context, minutes int) error
}

type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// app общие зависимости команд: конфигурация, логгер, хранилище и use cases
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics

	db     *sql.DB
	stopCh chan struct{}

	tables       tableStore
	reservations reservationStore
	settings     settingsStore
	tx           txManager

	checkAvailability *checkAvailabilityUC.UseCase
	findNextSlot      *findNextSlotUC.UseCase
	createReservation *createReservationUC.UseCase
}

func loadConfig(path string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, log, nil
}

// newApp собирает хранилище выбранного драйвера и use cases
func newApp(ctx context.Context, cfg *config.Config, log *logger.Logger, runMigrations bool) (*app, error) {
	location, err := cfg.Restaurant.Location()
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		log:    log,
		stopCh: make(chan struct{}),
	}

	if cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	switch cfg.Database.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		a.tables = store.Tables()
		a.reservations = store.Reservations()
		a.settings = store.Settings()
		a.tx = memory.NewTxManager()
		log.Warn("Using in-memory storage, data will be lost on exit")
		log.Warn("In-memory transactions are serialized by a single lock, concurrent bookings are processed one at a time")

	default:
		db, err := openDB(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		a.db = db
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if runMigrations {
			if err := migrations.Up(db, log); err != nil {
				_ = db.Close()
				return nil, err
			}
		}

		wrapped := dbmetrics.WrapWithDefault(db, a.metrics, a.stopCh)
		a.tables = tableRepo.NewRepository(wrapped)
		a.reservations = reservationRepo.NewRepository(wrapped)
		a.settings = settingsRepo.NewRepository(wrapped)
		a.tx = txmanager.NewTransactionManager(wrapped, cfg.Database.SerializableRetries)
	}

	booking := cfg.Booking

	a.checkAvailability = checkAvailabilityUC.NewUseCase(
		a.tables,
		a.reservations,
		a.settings,
		checkAvailabilityUC.Options{
			DefaultTurnaround: booking.DefaultTurnaroundMinutes,
			PendingBlocks:     booking.PendingBlocks,
			Location:          location,
		},
		a.metrics,
		log,
	)

	a.findNextSlot = findNextSlotUC.NewUseCase(
		a.tables,
		a.reservations,
		a.settings,
		findNextSlotUC.Options{
			DefaultTurnaround: booking.DefaultTurnaroundMinutes,
			PendingBlocks:     booking.PendingBlocks,
			StepMinutes:       booking.SlotStepMinutes,
			ChainNextDay:      booking.ChainNextDaySearch,
			MaxLookaheadDays:  booking.MaxLookaheadDays,
		},
		a.metrics,
		log,
	)

	a.createReservation = createReservationUC.NewUseCase(
		a.tables,
		a.reservations,
		a.settings,
		a.tx,
		createReservationUC.Options{
			DefaultTurnaround: booking.DefaultTurnaroundMinutes,
			PendingBlocks:     booking.PendingBlocks,
			DefaultStatus:     booking.ReservationStatus(),
			Location:          location,
		},
		a.metrics,
		log,
	)

	return a, nil
}

func (a *app) close() {
	close(a.stopCh)
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Error("Failed to close database: %v", err)
		}
	}
}

func openDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
