package find_next_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/table-buddy/internal/domain"
	settingsRepo "github.com/m04kA/table-buddy/internal/infra/storage/settings"
	"github.com/m04kA/table-buddy/pkg/types"
)

// UseCase поиск ближайшего времени, когда компанию можно посадить
type UseCase struct {
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	settingsRepo    SettingsRepository
	options         Options
	metrics         MetricsRecorder
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
	if options.StepMinutes <= 0 {
		options.StepMinutes = domain.DefaultSlotStepMinutes
	}
	if options.MaxLookaheadDays <= 0 {
		options.MaxLookaheadDays = domain.DefaultMaxLookaheadDays
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
		logger:          logger,
	}
}

// Execute ищет ближайший слот начиная с запрошенного времени.
// Проверки прошедшего времени и часов работы для запрошенного момента не выполняются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	slot, err := uc.execute(ctx, req)
	uc.metrics.RecordSlotSearch(domain.Outcome(err))
	return slot, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	in, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("FindNextSlot: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("FindNextSlot: date=%s, from=%s, party=%d",
		in.date.Format(domain.DateFormat), in.at, in.partySize)

	// 2. Столы, вмещающие компанию
	tables, err := uc.tableRepo.GetWithCapacityAtLeast(ctx, in.partySize)
	if err != nil {
		uc.logger.Error("FindNextSlot: failed to get tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}
	eligible := domain.FilterEligible(tables, in.partySize)
	if len(eligible) == 0 {
		uc.logger.Info("FindNextSlot: no tables for %d people", in.partySize)
		return nil, fmt.Errorf("%w: party of %d", domain.ErrNoCapacity, in.partySize)
	}

	// 3. Расписание и оборачиваемость
	hours, err := uc.settingsRepo.GetAllOperatingHours(ctx)
	if err != nil {
		uc.logger.Error("FindNextSlot: failed to get operating hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get operating hours: %v", ErrInternal, err)
	}
	calendar := domain.NewOperatingCalendar(hours)

	turnaround, err := uc.turnaround(ctx)
	if err != nil {
		return nil, err
	}

	// 4. Запрошенный день
	if dayHours, ok := calendar.WindowsOn(in.date); ok {
		at, found, err := uc.searchDay(ctx, in.date, in.at, dayHours, eligible, turnaround)
		if err != nil {
			return nil, err
		}
		if found {
			uc.logger.Info("FindNextSlot: found %s on %s", at, in.date.Format(domain.DateFormat))
			return &domain.Slot{Date: in.date, Time: at, Verified: true}, nil
		}
	}

	// 5. Следующие дни
	if !uc.options.ChainNextDay {
		return uc.nextDayOpening(calendar, in.date)
	}
	return uc.chainedSearch(ctx, calendar, in.date, eligible, turnaround)
}

// nextDayOpening возвращает время открытия обеда следующего дня без проверки столов
func (uc *UseCase) nextDayOpening(calendar *domain.OperatingCalendar, date time.Time) (*Response, error) {
	next := date.AddDate(0, 0, 1)

	dayHours, ok := calendar.WindowsOn(next)
	if !ok {
		uc.logger.Info("FindNextSlot: no operating hours on %s, search exhausted", next.Format(domain.DateFormat))
		return nil, domain.ErrSlotNotFound
	}

	uc.logger.Info("FindNextSlot: nothing left on %s, suggesting opening of %s at %s",
		date.Format(domain.DateFormat), next.Format(domain.DateFormat), dayHours.Lunch.Open)

	return &domain.Slot{Date: next, Time: dayHours.Lunch.Open, Verified: false}, nil
}

// chainedSearch продолжает перебор в следующих днях, не дальше MaxLookaheadDays
func (uc *UseCase) chainedSearch(
	ctx context.Context,
	calendar *domain.OperatingCalendar,
	date time.Time,
	eligible []*domain.Table,
	turnaround domain.Turnaround,
) (*Response, error) {
	for offset := 1; offset <= uc.options.MaxLookaheadDays; offset++ {
		day := date.AddDate(0, 0, offset)

		dayHours, ok := calendar.WindowsOn(day)
		if !ok {
			continue
		}

		at, found, err := uc.searchDay(ctx, day, dayHours.Lunch.Open, dayHours, eligible, turnaround)
		if err != nil {
			return nil, err
		}
		if found {
			uc.logger.Info("FindNextSlot: found %s on %s", at, day.Format(domain.DateFormat))
			return &domain.Slot{Date: day, Time: at, Verified: true}, nil
		}
	}

	uc.logger.Info("FindNextSlot: nothing found within %d days after %s",
		uc.options.MaxLookaheadDays, date.Format(domain.DateFormat))
	return nil, domain.ErrSlotNotFound
}

func (uc *UseCase) searchDay(
	ctx context.Context,
	date time.Time,
	from types.TimeString,
	hours *domain.OperatingHours,
	eligible []*domain.Table,
	turnaround domain.Turnaround,
) (types.TimeString, bool, error) {
	// Все блокирующие бронирования дня читаются один раз, окно turnaround применяется в памяти
	filter := domain.WholeDayFilter(date, domain.BlockingStatuses(uc.options.PendingBlocks))
	reservations, err := uc.reservationRepo.GetInWindow(ctx, filter)
	if err != nil {
		uc.logger.Error("FindNextSlot: failed to get reservations for %s: %v", date.Format(domain.DateFormat), err)
		return "", false, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	walk := &dayWalk{
		hours:        hours,
		eligible:     eligible,
		reservations: reservations,
		turnaround:   turnaround,
		step:         uc.options.StepMinutes,
	}
	at, found := walk.firstFree(from)
	return at, found, nil
}

// turnaround возвращает настройку ресторана или значение по умолчанию
func (uc *UseCase) turnaround(ctx context.Context) (domain.Turnaround, error) {
	minutes, err := uc.settingsRepo.GetTurnaround(ctx)
	if errors.Is(err, settingsRepo.ErrSettingNotFound) {
		return domain.Turnaround(uc.options.DefaultTurnaround), nil
	}
	if err != nil {
		uc.logger.Error("FindNextSlot: failed to get turnaround: %v", err)
		return 0, fmt.Errorf("%w: failed to get turnaround: %v", ErrInternal, err)
	}
	turnaround, err := domain.NewTurnaround(minutes)
	if err != nil {
		uc.logger.Error("FindNextSlot: stored turnaround is invalid: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return turnaround, nil
}

type noopMetrics struct{}

func (noopMetrics) RecordSlotSearch(string) {}
