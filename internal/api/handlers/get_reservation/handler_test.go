package get_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/table-buddy/internal/api/handlers"
	"github.com/m04kA/table-buddy/internal/domain"
	"github.com/m04kA/table-buddy/internal/infra/storage/memory"
	"github.com/m04kA/table-buddy/internal/service/reservations"
	"github.com/m04kA/table-buddy/internal/service/reservations/models"
	"github.com/m04kA/table-buddy/pkg/logger"
)

func routerFor(service ReservationService) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/reservations/{reservationId}", NewHandler(service, logger.NewNop()).Handle).Methods(http.MethodGet)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	_, err := store.Tables().Create(ctx, &domain.Table{Capacity: 4, Status: domain.TableStatusAvailable})
	require.NoError(t, err)
	_, err = store.Reservations().Create(ctx, &domain.Reservation{
		TableID:       1,
		Date:          time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		Time:          "18:00",
		PartySize:     3,
		Status:        domain.ReservationStatusConfirmed,
		CustomerName:  "Asha",
		CustomerPhone: "555",
	})
	require.NoError(t, err)

	r := routerFor(reservations.NewService(store.Reservations(), logger.NewNop()))

	rec := get(r, "/reservations/1")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-10-19", resp.Date)
	assert.Equal(t, "18:00", resp.Time)
	assert.Equal(t, 3, resp.PartySize)
	assert.Equal(t, "Asha", resp.CustomerName)

	var errResp handlers.ErrorResponse

	rec = get(r, "/reservations/42")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, msgNotFound, errResp.Message)

	rec = get(r, "/reservations/abc")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, msgInvalidReservationID, errResp.Message)
}

type failingService struct{}

func (failingService) GetByID(context.Context, int64) (*models.ReservationResponse, error) {
	return nil, reservations.ErrInternal
}

func TestHandle_InternalError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, get(routerFor(failingService{}), "/reservations/1").Code)
}
