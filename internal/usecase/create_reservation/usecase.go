package create_reservation

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/table-buddy/internal/domain"
	settingsRepo "github.com/m04kA/table-buddy/internal/infra/storage/settings"
)

// UseCase use case для создания бронирования стола
type UseCase struct {
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	settingsRepo    SettingsRepository
	txManager       TransactionManager
	options         Options
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	options Options,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if options.Location == nil {
		options.Location = time.Local
	}
	if options.DefaultStatus == "" {
		options.DefaultStatus = domain.DefaultReservationStatus
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		settingsRepo:    settingsRepo,
		txManager:       txManager,
		options:         options,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Выбор стола и запись выполняются в сериализуемой транзакции с блокировкой стола на дату,
// поэтому два параллельных запроса не займут один стол.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	in, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateReservation: date=%s, time=%s, party=%d",
		in.date.Format(domain.DateFormat), in.at, in.partySize)

	// 2. Прошедшее время
	now := uc.timeProvider.Now().In(uc.options.Location)
	if domain.IsPast(in.date, in.at, now) {
		uc.logger.Warn("CreateReservation: %s %s is in the past", in.date.Format(domain.DateFormat), in.at)
		return nil, domain.ErrPastDateTime
	}

	// 3. Часы работы
	hours, err := uc.settingsRepo.GetAllOperatingHours(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get operating hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get operating hours: %v", ErrInternal, err)
	}
	calendar := domain.NewOperatingCalendar(hours)

	weekday := domain.WeekdayOf(in.date)
	dayHours, ok := calendar.WindowsFor(weekday)
	if !ok {
		uc.logger.Info("CreateReservation: closed on %s", weekday)
		return nil, &domain.ClosedError{Weekday: weekday}
	}
	if !dayHours.IsOpenAt(in.at) {
		uc.logger.Info("CreateReservation: %s is outside operating hours on %s", in.at, weekday)
		return nil, &domain.ClosedError{Weekday: weekday, Time: in.at, Hours: dayHours}
	}

	// 4. Столы, вмещающие компанию
	tables, err := uc.tableRepo.GetWithCapacityAtLeast(ctx, in.partySize)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}
	eligible := domain.FilterEligible(tables, in.partySize)
	if len(eligible) == 0 {
		uc.logger.Info("CreateReservation: no tables for %d people", in.partySize)
		return nil, fmt.Errorf("%w: party of %d", domain.ErrNoCapacity, in.partySize)
	}

	turnaround, err := uc.turnaround(ctx)
	if err != nil {
		return nil, err
	}

	from, to := turnaround.Window(in.at)
	filter := domain.ReservationWindowFilter{
		Date:     in.date,
		From:     from,
		To:       to,
		Statuses: domain.BlockingStatuses(uc.options.PendingBlocks),
	}

	var result *domain.Reservation

	// 5. Выбор стола и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Блокируем подходящие столы на дату до первого чтения, по возрастанию id.
		// Конкурирующие запросы на те же столы ждут друг друга. Снимок дождавшейся транзакции
		// устарел, ее отклоняет SERIALIZABLE (40001), и txmanager повторяет транзакцию целиком.
		for _, table := range lockOrder(eligible) {
			if err := uc.reservationRepo.LockTableForDate(txCtx, table.ID, in.date); err != nil {
				uc.logger.Error("CreateReservation: failed to lock table id=%d: %v", table.ID, err)
				return fmt.Errorf("%w: failed to lock table: %w", ErrInternal, err)
			}
		}

		// 5.2. Бронирования в окне оборачиваемости (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetInWindow(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
		}

		// 5.3. Столы без единого бронирования в окне, предпочтительный стол первым
		candidates := domain.PreferTable(domain.ConflictFreeTables(eligible, reservations), in.tableHint)
		if len(candidates) == 0 {
			uc.logger.Info("CreateReservation: no tables available at %s on %s (%d eligible, %d reservations in window)",
				in.at, in.date.Format(domain.DateFormat), len(eligible), len(reservations))
			return domain.ErrNoAvailability
		}
		chosen := candidates[0]

		// 5.4. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			TableID:         chosen.ID,
			Date:            in.date,
			Time:            in.at,
			PartySize:       in.partySize,
			Status:          uc.options.DefaultStatus,
			CustomerName:    in.name,
			CustomerPhone:   in.phone,
			Occasion:        in.occasion,
			SpecialRequests: in.specialRequests,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.RecordReservationCreated(string(result.Status))
	uc.logger.Info("CreateReservation: successfully created reservation id=%d on table id=%d", result.ID, result.TableID)

	return &Response{
		ID:              result.ID,
		TableID:         result.TableID,
		Date:            result.Date,
		Time:            result.Time,
		PartySize:       result.PartySize,
		Status:          string(result.Status),
		CustomerName:    result.CustomerName,
		CustomerPhone:   result.CustomerPhone,
		Occasion:        result.Occasion,
		SpecialRequests: result.SpecialRequests,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// turnaround возвращает настройку ресторана или значение по умолчанию
func (uc *UseCase) turnaround(ctx context.Context) (domain.Turnaround, error) {
	minutes, err := uc.settingsRepo.GetTurnaround(ctx)
	if errors.Is(err, settingsRepo.ErrSettingNotFound) {
		return domain.Turnaround(uc.options.DefaultTurnaround), nil
	}
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get turnaround: %v", err)
		return 0, fmt.Errorf("%w: failed to get turnaround: %v", ErrInternal, err)
	}
	turnaround, err := domain.NewTurnaround(minutes)
	if err != nil {
		uc.logger.Error("CreateReservation: stored turnaround is invalid: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return turnaround, nil
}

// lockOrder возвращает столы по возрастанию id, чтобы параллельные транзакции брали блокировки в одном порядке
func lockOrder(tables []*domain.Table) []*domain.Table {
	ordered := slices.Clone(tables)
	slices.SortFunc(ordered, func(a, b *domain.Table) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return ordered
}

type noopMetrics struct{}

func (noopMetrics) RecordReservationCreated(string) {}
