package create_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/table-buddy/internal/api/handlers"
	"github.com/m04kA/table-buddy/internal/domain"
	"github.com/m04kA/table-buddy/internal/infra/storage/memory"
	createReservation "github.com/m04kA/table-buddy/internal/usecase/create_reservation"
	"github.com/m04kA/table-buddy/pkg/logger"
)

// 2099-01-05 - понедельник, 2099-01-06 - вторник без расписания, 2000-01-03 - понедельник в прошлом
const mondayDate = "2099-01-05"

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	_, err := store.Tables().Create(ctx, &domain.Table{Capacity: 4, Status: domain.TableStatusAvailable})
	require.NoError(t, err)
	_, err = store.Settings().UpsertOperatingHours(ctx, &domain.OperatingHours{
		Day:    "monday",
		Lunch:  domain.Window{Open: "11:30", Close: "14:30"},
		Dinner: domain.Window{Open: "17:00", Close: "22:00"},
	})
	require.NoError(t, err)

	uc := createReservation.NewUseCase(store.Tables(), store.Reservations(), store.Settings(), memory.NewTxManager(),
		createReservation.Options{DefaultTurnaround: 15, Location: time.UTC}, nil, logger.NewNop())
	return routerFor(uc)
}

func routerFor(uc CreateReservationUseCase) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/reservations", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)
	return r
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(body)))
	return rec
}

func reservationBody(date, at string, partySize int) string {
	raw, _ := json.Marshal(CreateReservationRequest{
		Name:      "Asha",
		Phone:     "555",
		Date:      date,
		Time:      at,
		PartySize: partySize,
	})
	return string(raw)
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, rec.Code, resp.Code)
	return resp.Message
}

func TestHandle_Created(t *testing.T) {
	r := newRouter(t)

	rec := post(r, `{"name": "Asha", "phone": "555", "date": "`+mondayDate+`", "time": "18:00", "partySize": 2, "occasion": "birthday"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(1), resp.TableID)
	assert.Equal(t, mondayDate, resp.Date)
	assert.Equal(t, "18:00", resp.Time)
	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, resp.Occasion)
	assert.Equal(t, "birthday", *resp.Occasion)
	assert.Equal(t,
		"Reservation confirmed! Your reservation ID is 1: table 1 for 2 people on 2099-01-05 at 18:00 under the name Asha.",
		resp.Message)
}

func TestHandle_DoubleBookedSlotConflicts(t *testing.T) {
	r := newRouter(t)

	require.Equal(t, http.StatusCreated, post(r, reservationBody(mondayDate, "12:00", 2)).Code)

	rec := post(r, reservationBody(mondayDate, "12:10", 2))
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t,
		"Sorry, no tables are available for 2 people on 2099-01-05 at 12:10. Would you like me to check the next available slot?",
		errorMessage(t, rec))

	assert.Equal(t, http.StatusCreated, post(r, reservationBody(mondayDate, "12:20", 2)).Code)
}

func TestHandle_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		code    int
		message string
	}{
		{
			name:    "missing fields",
			body:    `{"date": "` + mondayDate + `", "time": "12:00", "partySize": 2}`,
			code:    http.StatusBadRequest,
			message: "Missing required fields: name, phone.",
		},
		{
			name:    "malformed date",
			body:    reservationBody("05.01.2099", "12:00", 2),
			code:    http.StatusBadRequest,
			message: "Invalid request: ",
		},
		{
			name:    "negative party",
			body:    reservationBody(mondayDate, "12:00", -1),
			code:    http.StatusBadRequest,
			message: "Invalid request: party size must be at least 1.",
		},
		{
			name:    "past",
			body:    reservationBody("2000-01-03", "12:00", 2),
			code:    http.StatusBadRequest,
			message: "The requested date and time has already passed. Please choose a future time.",
		},
		{
			name:    "closed day",
			body:    reservationBody("2099-01-06", "12:00", 2),
			code:    http.StatusUnprocessableEntity,
			message: "Sorry, the restaurant is closed on Tuesdays.",
		},
		{
			name:    "outside hours",
			body:    reservationBody(mondayDate, "15:00", 2),
			code:    http.StatusUnprocessableEntity,
			message: "Sorry, the restaurant is not open at 15:00 on Monday.",
		},
		{
			name:    "no capacity",
			body:    reservationBody(mondayDate, "12:00", 10),
			code:    http.StatusUnprocessableEntity,
			message: "Sorry, we have no tables that can accommodate 10 people.",
		},
		{
			name:    "invalid json",
			body:    `{"name": `,
			code:    http.StatusBadRequest,
			message: msgInvalidRequestBody,
		},
		{
			name:    "unknown field",
			body:    `{"name": "Asha", "guests": 2}`,
			code:    http.StatusBadRequest,
			message: msgInvalidRequestBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(newRouter(t), tt.body)
			require.Equal(t, tt.code, rec.Code)
			assert.Contains(t, errorMessage(t, rec), tt.message)
		})
	}
}

type failingUseCase struct{}

func (failingUseCase) Execute(context.Context, *createReservation.Request) (*createReservation.Response, error) {
	return nil, errors.New("connection reset")
}

func TestHandle_InternalError(t *testing.T) {
	rec := post(routerFor(failingUseCase{}), reservationBody(mondayDate, "12:00", 2))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "внутренняя ошибка сервера", errorMessage(t, rec))
}
