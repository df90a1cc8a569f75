package reservations

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/table-buddy/internal/domain"
	"github.com/m04kA/table-buddy/internal/infra/storage/memory"
	"github.com/m04kA/table-buddy/internal/service/reservations/models"
	"github.com/m04kA/table-buddy/pkg/logger"
	"github.com/m04kA/table-buddy/pkg/ptr"
	"github.com/m04kA/table-buddy/pkg/types"
)

var monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	_, err := store.Tables().Create(context.Background(), &domain.Table{Capacity: 4, Status: domain.TableStatusAvailable})
	require.NoError(t, err)
	return NewService(store.Reservations(), logger.NewNop()), store
}

func seed(t *testing.T, store *memory.Store, date time.Time, at string, status domain.ReservationStatus) int64 {
	t.Helper()
	r, err := store.Reservations().Create(context.Background(), &domain.Reservation{
		TableID:       1,
		Date:          date,
		Time:          types.MustTimeString(at),
		PartySize:     2,
		Status:        status,
		CustomerName:  "Anna",
		CustomerPhone: "+7 900 000-00-00",
		Occasion:      ptr.Ptr("birthday"),
	})
	require.NoError(t, err)
	return r.ID
}

func TestService_GetByID(t *testing.T) {
	svc, store := newService(t)
	id := seed(t, store, monday, "18:00", domain.ReservationStatusConfirmed)

	got, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", got.Date)
	assert.Equal(t, "18:00", got.Time)
	assert.Equal(t, "confirmed", got.Status)
	require.NotNil(t, got.Occasion)
	assert.Equal(t, "birthday", *got.Occasion)

	_, err = svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_ListByDate(t *testing.T) {
	svc, store := newService(t)
	seed(t, store, monday, "19:00", domain.ReservationStatusConfirmed)
	seed(t, store, monday, "12:00", domain.ReservationStatusPending)
	seed(t, store, monday.AddDate(0, 0, 1), "12:00", domain.ReservationStatusConfirmed)

	all, err := svc.ListByDate(context.Background(), &models.ListReservationsRequest{Date: "2026-10-19"})
	require.NoError(t, err)
	require.Len(t, all.Reservations, 2)
	assert.Equal(t, "12:00", all.Reservations[0].Time)
	assert.Equal(t, "19:00", all.Reservations[1].Time)

	pending, err := svc.ListByDate(context.Background(), &models.ListReservationsRequest{
		Date:   "2026-10-19",
		Status: ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	require.Len(t, pending.Reservations, 1)
	assert.Equal(t, "pending", pending.Reservations[0].Status)

	_, err = svc.ListByDate(context.Background(), &models.ListReservationsRequest{Date: "19.10.2026"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListByDate(context.Background(), &models.ListReservationsRequest{Date: "2026-10-19", Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Cancel(t *testing.T) {
	svc, store := newService(t)
	id := seed(t, store, monday, "18:00", domain.ReservationStatusPending)

	got, err := svc.Cancel(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)

	stored, err := store.Reservations().GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, stored.Status)

	_, err = svc.Cancel(context.Background(), id)
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = svc.Cancel(context.Background(), 999)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_Complete(t *testing.T) {
	svc, store := newService(t)
	pending := seed(t, store, monday, "12:00", domain.ReservationStatusPending)
	confirmed := seed(t, store, monday, "18:00", domain.ReservationStatusConfirmed)

	_, err := svc.Complete(context.Background(), pending)
	assert.ErrorIs(t, err, ErrCannotComplete)

	got, err := svc.Complete(context.Background(), confirmed)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)

	_, err = svc.Cancel(context.Background(), confirmed)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

type failingRepo struct{}

func (failingRepo) GetByID(context.Context, int64) (*domain.Reservation, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) GetByDate(context.Context, domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) UpdateStatus(context.Context, int64, domain.ReservationStatus, []domain.ReservationStatus) error {
	return errors.New("connection refused")
}

func TestService_RepositoryFailure(t *testing.T) {
	svc := NewService(failingRepo{}, logger.NewNop())

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.ListByDate(context.Background(), &models.ListReservationsRequest{Date: "2026-10-19"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_ConcurrentTransitionsApplyOnce(t *testing.T) {
	svc, store := newService(t)
	id := seed(t, store, monday, "18:00", domain.ReservationStatusConfirmed)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				_, err = svc.Cancel(context.Background(), id)
			} else {
				_, err = svc.Complete(context.Background(), id)
			}

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrCannotCancel), errors.Is(err, ErrCannotComplete):
				rejected++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, rejected)
}

type staleRepo struct {
	*memory.ReservationRepository
	snapshot *domain.Reservation
}

// GetByID отдает статус, прочитанный до параллельной отмены
func (r staleRepo) GetByID(context.Context, int64) (*domain.Reservation, error) {
	copied := *r.snapshot
	return &copied, nil
}

func TestService_TransitionRejectedAfterConcurrentChange(t *testing.T) {
	_, store := newService(t)
	id := seed(t, store, monday, "18:00", domain.ReservationStatusConfirmed)

	snapshot, err := store.Reservations().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NoError(t, store.Reservations().UpdateStatus(context.Background(), id, domain.ReservationStatusCancelled, nil))

	svc := NewService(staleRepo{ReservationRepository: store.Reservations(), snapshot: snapshot}, logger.NewNop())
	_, err = svc.Complete(context.Background(), id)
	assert.ErrorIs(t, err, ErrCannotComplete)

	got, err := store.Reservations().GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, got.Status)
}
