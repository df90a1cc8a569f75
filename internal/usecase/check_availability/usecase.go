package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/table-buddy/internal/domain"
	settingsRepo "github.com/m04kA/table-buddy/internal/infra/storage/settings"
)

// UseCase проверка, можно ли посадить компанию в указанные дату и время
type UseCase struct {
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	settingsRepo    SettingsRepository
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
	options Options,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if options.Location == nil {
		options.Location = time.Local
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		settingsRepo:    settingsRepo,
		options:         options,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет проверку доступности.
// Порядок проверок: вместимость, прошедшее время, выходной день, часы работы, занятость столов.
// Возвращает первый сработавший отказ; если все столы заняты - domain.ErrNoAvailability.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	verdict, err := uc.execute(ctx, req)
	uc.metrics.RecordAvailabilityCheck(domain.Outcome(err))
	return verdict, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	in, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CheckAvailability: date=%s, time=%s, party=%d",
		in.date.Format(domain.DateFormat), in.at, in.partySize)

	// 2. Столы, вмещающие компанию
	tables, err := uc.tableRepo.GetWithCapacityAtLeast(ctx, in.partySize)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}
	eligible := domain.FilterEligible(tables, in.partySize)
	if len(eligible) == 0 {
		uc.logger.Info("CheckAvailability: no tables for %d people", in.partySize)
		return nil, fmt.Errorf("%w: party of %d", domain.ErrNoCapacity, in.partySize)
	}

	// 3. Прошедшее время отклоняем, текущая минута допустима
	now := uc.timeProvider.Now().In(uc.options.Location)
	if domain.IsPast(in.date, in.at, now) {
		uc.logger.Warn("CheckAvailability: %s %s is in the past", in.date.Format(domain.DateFormat), in.at)
		return nil, domain.ErrPastDateTime
	}

	// 4. Часы работы
	hours, err := uc.settingsRepo.GetAllOperatingHours(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get operating hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get operating hours: %v", ErrInternal, err)
	}
	calendar := domain.NewOperatingCalendar(hours)

	weekday := domain.WeekdayOf(in.date)
	dayHours, ok := calendar.WindowsFor(weekday)
	if !ok {
		uc.logger.Info("CheckAvailability: closed on %s", weekday)
		return nil, &domain.ClosedError{Weekday: weekday}
	}
	if !dayHours.IsOpenAt(in.at) {
		uc.logger.Info("CheckAvailability: %s is outside operating hours on %s", in.at, weekday)
		return nil, &domain.ClosedError{Weekday: weekday, Time: in.at, Hours: dayHours}
	}

	// 5. Бронирования в окне оборачиваемости
	turnaround, err := uc.turnaround(ctx)
	if err != nil {
		return nil, err
	}

	from, to := turnaround.Window(in.at)
	reservations, err := uc.reservationRepo.GetInWindow(ctx, domain.ReservationWindowFilter{
		Date:     in.date,
		From:     from,
		To:       to,
		Statuses: domain.BlockingStatuses(uc.options.PendingBlocks),
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Свободные столы по правилу истекшей занятости
	free := domain.FreeTables(eligible, reservations, in.at, turnaround)

	verdict := &domain.Verdict{
		Date:            in.date,
		Time:            in.at,
		PartySize:       in.partySize,
		AvailableTables: len(free),
		TableIDs:        domain.TableIDs(free),
	}

	if !verdict.IsAvailable() {
		uc.logger.Info("CheckAvailability: no tables available at %s on %s (%d eligible, %d reservations in window)",
			in.at, in.date.Format(domain.DateFormat), len(eligible), len(reservations))
		return verdict, domain.ErrNoAvailability
	}

	uc.logger.Info("CheckAvailability: %d of %d tables available at %s on %s",
		len(free), len(eligible), in.at, in.date.Format(domain.DateFormat))

	return verdict, nil
}

// turnaround возвращает настройку ресторана или значение по умолчанию
func (uc *UseCase) turnaround(ctx context.Context) (domain.Turnaround, error) {
	minutes, err := uc.settingsRepo.GetTurnaround(ctx)
	if errors.Is(err, settingsRepo.ErrSettingNotFound) {
		return domain.Turnaround(uc.options.DefaultTurnaround), nil
	}
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get turnaround: %v", err)
		return 0, fmt.Errorf("%w: failed to get turnaround: %v", ErrInternal, err)
	}
	turnaround, err := domain.NewTurnaround(minutes)
	if err != nil {
		uc.logger.Error("CheckAvailability: stored turnaround is invalid: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return turnaround, nil
}

type noopMetrics struct{}

func (noopMetrics) RecordAvailabilityCheck(string) {}
