package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/table-buddy/internal/domain"
	"github.com/m04kA/table-buddy/pkg/ptr"
	"github.com/m04kA/table-buddy/pkg/types"
)

const selectColumns = "SELECT id, table_id, reservation_date, reservation_time, party_size, status, " +
	"customer_name, customer_phone, occasion, special_requests, created_at, updated_at FROM reservations"

var monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func TestWindowQuery_BlockingWindowInsideTransaction(t *testing.T) {
	filter := domain.ReservationWindowFilter{
		Date:     monday,
		From:     "17:45",
		To:       "18:15",
		Statuses: domain.BlockingStatuses(false),
	}

	query, args, err := windowQuery(filter, true).ToSql()
	require.NoError(t, err)

	assert.Equal(t, selectColumns+
		" WHERE reservation_date = $1 AND reservation_time >= $2 AND reservation_time <= $3 AND status IN ($4)"+
		" ORDER BY reservation_time ASC, id ASC FOR UPDATE", query)
	assert.Equal(t, []interface{}{"2026-10-19", types.TimeString("17:45"), types.TimeString("18:15"), "confirmed"}, args)
}

func TestWindowQuery_PendingBlocksAndTableFilter(t *testing.T) {
	filter := domain.ReservationWindowFilter{
		Date:     monday,
		From:     "17:45",
		To:       "18:15",
		Statuses: domain.BlockingStatuses(true),
		TableID:  ptr.Ptr(int64(3)),
	}

	query, args, err := windowQuery(filter, false).ToSql()
	require.NoError(t, err)

	assert.Equal(t, selectColumns+
		" WHERE reservation_date = $1 AND reservation_time >= $2 AND reservation_time <= $3"+
		" AND status IN ($4,$5) AND table_id = $6 ORDER BY reservation_time ASC, id ASC", query)
	assert.Equal(t, []interface{}{
		"2026-10-19", types.TimeString("17:45"), types.TimeString("18:15"), "confirmed", "pending", int64(3),
	}, args)
	assert.NotContains(t, query, "FOR UPDATE")
}

func TestWindowQuery_WholeDay(t *testing.T) {
	query, args, err := windowQuery(domain.WholeDayFilter(monday, domain.BlockingStatuses(false)), false).ToSql()
	require.NoError(t, err)

	assert.Equal(t, selectColumns+
		" WHERE reservation_date = $1 AND reservation_time >= $2 AND reservation_time <= $3 AND status IN ($4)"+
		" ORDER BY reservation_time ASC, id ASC", query)
	assert.Equal(t, []interface{}{"2026-10-19", types.TimeString("00:00"), types.TimeString("23:59"), "confirmed"}, args)
}

func TestWindowQuery_AnyStatus(t *testing.T) {
	query, _, err := windowQuery(domain.ReservationWindowFilter{Date: monday, From: "12:00", To: "12:30"}, false).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "status")
}

func TestByDateQuery(t *testing.T) {
	query, args, err := byDateQuery(domain.ReservationsFilter{Date: monday}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, selectColumns+" WHERE reservation_date = $1 ORDER BY reservation_time ASC, table_id ASC", query)
	assert.Equal(t, []interface{}{"2026-10-19"}, args)

	status := domain.ReservationStatusCancelled
	query, args, err = byDateQuery(domain.ReservationsFilter{Date: monday, Status: &status}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, selectColumns+
		" WHERE reservation_date = $1 AND status = $2 ORDER BY reservation_time ASC, table_id ASC", query)
	assert.Equal(t, []interface{}{"2026-10-19", domain.ReservationStatusCancelled}, args)
}

func TestUpdateStatusQuery(t *testing.T) {
	query, args, err := updateStatusQuery(7, domain.ReservationStatusCancelled, domain.CancellableStatuses()).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE reservations SET status = $1, updated_at = NOW() WHERE id = $2 AND status IN ($3,$4)", query)
	assert.Equal(t, []interface{}{domain.ReservationStatusCancelled, int64(7), "pending", "confirmed"}, args)

	query, _, err = updateStatusQuery(7, domain.ReservationStatusCompleted, nil).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE reservations SET status = $1, updated_at = NOW() WHERE id = $2", query)
}

func TestDateLockKey(t *testing.T) {
	assert.Equal(t, 20261019, dateLockKey(monday))
	assert.Equal(t, 20990105, dateLockKey(time.Date(2099, 1, 5, 0, 0, 0, 0, time.UTC)))
}

func TestLockTableForDate_NoopOutsideTransaction(t *testing.T) {
	repo := NewRepository(nil)
	assert.NoError(t, repo.LockTableForDate(context.Background(), 1, monday))
}
