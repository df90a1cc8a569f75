package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/table-buddy/internal/domain"
	"github.com/m04kA/table-buddy/internal/infra/storage/memory"
	"github.com/m04kA/table-buddy/internal/usecase/check_availability"
	"github.com/m04kA/table-buddy/pkg/logger"
	"github.com/m04kA/table-buddy/pkg/ptr"
	"github.com/m04kA/table-buddy/pkg/types"
)

// 2026-10-19 - понедельник
var monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fixture struct {
	store *memory.Store
	uc    *UseCase
	clock *fixedTimeProvider
}

func newFixture(t *testing.T, opts Options, capacities ...int) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	for _, c := range capacities {
		_, err := store.Tables().Create(ctx, &domain.Table{Capacity: c, Status: domain.TableStatusAvailable})
		require.NoError(t, err)
	}

	_, err := store.Settings().UpsertOperatingHours(ctx, &domain.OperatingHours{
		Day:    "monday",
		Lunch:  domain.Window{Open: "11:30", Close: "14:30"},
		Dinner: domain.Window{Open: "17:00", Close: "22:00"},
	})
	require.NoError(t, err)

	if opts.DefaultTurnaround == 0 {
		opts.DefaultTurnaround = 15
	}
	opts.Location = time.UTC

	uc := NewUseCase(store.Tables(), store.Reservations(), store.Settings(), memory.NewTxManager(), opts, nil, logger.NewNop())
	clock := &fixedTimeProvider{now: monday.Add(9 * time.Hour)}
	uc.timeProvider = clock

	return &fixture{store: store, uc: uc, clock: clock}
}

func request(at string, party int) *Request {
	return &Request{Name: "Asha", Phone: "555", Date: "2026-10-19", Time: at, PartySize: party}
}

func (f *fixture) existing(t *testing.T, tableID int64, at string) {
	t.Helper()
	_, err := f.store.Reservations().Create(context.Background(), &domain.Reservation{
		TableID:       tableID,
		Date:          monday,
		Time:          types.MustTimeString(at),
		PartySize:     2,
		Status:        domain.ReservationStatusConfirmed,
		CustomerName:  "Guest",
		CustomerPhone: "000",
	})
	require.NoError(t, err)
}

func TestExecute_CreationConsumesCapacity(t *testing.T) {
	f := newFixture(t, Options{}, 2)

	resp, err := f.uc.Execute(context.Background(), request("12:00", 2))
	require.NoError(t, err)
	assert.Positive(t, resp.ID)
	assert.Equal(t, int64(1), resp.TableID)
	assert.Equal(t, string(domain.ReservationStatusConfirmed), resp.Status)
	assert.Equal(t, types.TimeString("12:00"), resp.Time)

	check := check_availability.NewUseCase(f.store.Tables(), f.store.Reservations(), f.store.Settings(),
		check_availability.Options{DefaultTurnaround: 15, Location: time.UTC}, nil, logger.NewNop())

	_, err = check.Execute(context.Background(), &check_availability.Request{Date: "2026-10-19", Time: "12:00", PartySize: 2})
	assert.ErrorIs(t, err, domain.ErrNoAvailability)
}

func TestExecute_MissingFields(t *testing.T) {
	f := newFixture(t, Options{}, 2)

	_, err := f.uc.Execute(context.Background(), &Request{Date: "2026-10-19", Time: "12:00", PartySize: 2})

	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"name", "phone"}, missing.Fields)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.uc.Execute(context.Background(), &Request{})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"name", "phone", "date", "time", "party_size"}, missing.Fields)
}

func TestExecute_MalformedInput(t *testing.T) {
	f := newFixture(t, Options{}, 2)

	for _, req := range []*Request{
		{Name: "A", Phone: "1", Date: "2026/10/19", Time: "12:00", PartySize: 2},
		{Name: "A", Phone: "1", Date: "2026-10-19", Time: "25:00", PartySize: 2},
		{Name: "A", Phone: "1", Date: "2026-10-19", Time: "12:00", PartySize: -1},
	} {
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrValidation, "%+v", req)
	}
}

func TestExecute_StrictConflictRule(t *testing.T) {
	f := newFixture(t, Options{}, 4, 4)
	f.existing(t, 1, "18:00")

	// по правилу проверки доступности стол 1 в 18:15 уже свободен, но при создании он исключается
	resp, err := f.uc.Execute(context.Background(), request("18:15", 2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.TableID)

	_, err = f.uc.Execute(context.Background(), request("18:15", 2))
	assert.ErrorIs(t, err, domain.ErrNoAvailability)

	resp, err = f.uc.Execute(context.Background(), request("18:31", 2))
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TableID)
}

func TestExecute_TableHint(t *testing.T) {
	f := newFixture(t, Options{}, 4, 4, 4)
	f.existing(t, 3, "19:00")

	req := request("12:00", 2)
	req.TableHint = ptr.Ptr(int64(2))
	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.TableID)

	// занятый предпочтительный стол - берется первый свободный
	req = request("19:00", 2)
	req.TableHint = ptr.Ptr(int64(3))
	resp, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TableID)
}

func TestExecute_Gates(t *testing.T) {
	f := newFixture(t, Options{}, 4)
	f.clock.now = monday.Add(13 * time.Hour)

	_, err := f.uc.Execute(context.Background(), request("12:00", 2))
	assert.ErrorIs(t, err, domain.ErrPastDateTime)

	_, err = f.uc.Execute(context.Background(), request("15:00", 2))
	assert.ErrorIs(t, err, domain.ErrClosed)

	req := request("12:00", 2)
	req.Date = "2026-10-20"
	_, err = f.uc.Execute(context.Background(), req)
	var closed *domain.ClosedError
	require.ErrorAs(t, err, &closed)
	assert.Equal(t, "tuesday", closed.Weekday)

	_, err = f.uc.Execute(context.Background(), request("18:00", 6))
	assert.ErrorIs(t, err, domain.ErrNoCapacity)
}

func TestExecute_DefaultStatusPending(t *testing.T) {
	f := newFixture(t, Options{DefaultStatus: domain.ReservationStatusPending}, 4)

	resp, err := f.uc.Execute(context.Background(), request("12:00", 2))
	require.NoError(t, err)
	assert.Equal(t, string(domain.ReservationStatusPending), resp.Status)

	// ожидающие бронирования не блокируют стол, пока не включено pending_blocks
	_, err = f.uc.Execute(context.Background(), request("12:00", 2))
	assert.NoError(t, err)

	f.uc.options.PendingBlocks = true
	_, err = f.uc.Execute(context.Background(), request("12:00", 2))
	assert.ErrorIs(t, err, domain.ErrNoAvailability)
}

func TestExecute_ConcurrentRequestsDoNotDoubleBook(t *testing.T) {
	f := newFixture(t, Options{}, 4)

	const workers = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Execute(context.Background(), request("19:00", 2))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrNoAvailability):
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, rejected)
}

type failingReservations struct {
	*memory.ReservationRepository
}

func (failingReservations) Create(context.Context, *domain.Reservation) (*domain.Reservation, error) {
	return nil, errors.New("connection reset")
}

func TestExecute_StoreFailure(t *testing.T) {
	f := newFixture(t, Options{}, 4)
	f.uc.reservationRepo = failingReservations{f.store.Reservations()}

	_, err := f.uc.Execute(context.Background(), request("12:00", 2))
	assert.ErrorIs(t, err, ErrInternal)
}

type recordingReservations struct {
	*memory.ReservationRepository
	calls []string
}

func (r *recordingReservations) LockTableForDate(ctx context.Context, tableID int64, date time.Time) error {
	r.calls = append(r.calls, fmt.Sprintf("lock:%d", tableID))
	return r.ReservationRepository.LockTableForDate(ctx, tableID, date)
}

func (r *recordingReservations) GetInWindow(ctx context.Context, filter domain.ReservationWindowFilter) ([]*domain.Reservation, error) {
	r.calls = append(r.calls, "read")
	return r.ReservationRepository.GetInWindow(ctx, filter)
}

func TestExecute_LocksTablesBeforeReading(t *testing.T) {
	f := newFixture(t, Options{}, 6, 2, 4)
	repo := &recordingReservations{ReservationRepository: f.store.Reservations()}
	f.uc.reservationRepo = repo

	_, err := f.uc.Execute(context.Background(), request("12:00", 2))
	require.NoError(t, err)

	assert.Equal(t, []string{"lock:1", "lock:2", "lock:3", "read"}, repo.calls)
}
