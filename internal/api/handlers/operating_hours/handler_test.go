package operating_hours

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/table-buddy/internal/api/handlers"
	"github.com/m04kA/table-buddy/internal/infra/storage/memory"
	"github.com/m04kA/table-buddy/internal/service/settings"
	"github.com/m04kA/table-buddy/internal/service/settings/models"
	"github.com/m04kA/table-buddy/pkg/logger"
)

const mondayHours = `{"lunch": {"open": "11:30", "close": "14:30"}, "dinner": {"open": "17:00", "close": "22:00"}}`

func routerFor(service SettingsService) *mux.Router {
	h := NewHandler(service, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/operating-hours", h.HandleList).Methods(http.MethodGet)
	r.HandleFunc("/operating-hours/{day}", h.HandleUpsert).Methods(http.MethodPut)
	r.HandleFunc("/operating-hours/{day}", h.HandleDelete).Methods(http.MethodDelete)
	return r
}

func newRouter() *mux.Router {
	return routerFor(settings.NewService(memory.NewStore().Settings(), 15, logger.NewNop()))
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Message
}

func TestHandlers_UpsertListDelete(t *testing.T) {
	r := newRouter()

	rec := do(r, http.MethodPut, "/operating-hours/Monday", mondayHours)
	require.Equal(t, http.StatusOK, rec.Code)
	var saved models.OperatingHoursResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "monday", saved.Day)
	assert.Equal(t, models.WindowDTO{Open: "17:00", Close: "22:00"}, saved.Dinner)

	rec = do(r, http.MethodGet, "/operating-hours", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var calendar models.CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &calendar))
	require.Len(t, calendar.Days, 1)
	assert.Equal(t, "monday", calendar.Days[0].Day)
	assert.Len(t, calendar.ClosedDays, 6)

	rec = do(r, http.MethodDelete, "/operating-hours/monday", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(r, http.MethodDelete, "/operating-hours/monday", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgNotFound, errorMessage(t, rec))
}

func TestHandlers_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		code    int
		message string
	}{
		{"unknown weekday", http.MethodPut, "/operating-hours/funday", mondayHours, http.StatusBadRequest, msgInvalidData},
		{
			"window closes before it opens", http.MethodPut, "/operating-hours/monday",
			`{"lunch": {"open": "14:30", "close": "11:30"}, "dinner": {"open": "17:00", "close": "22:00"}}`,
			http.StatusBadRequest, msgInvalidData,
		},
		{
			"malformed time", http.MethodPut, "/operating-hours/monday",
			`{"lunch": {"open": "11.30", "close": "14:30"}, "dinner": {"open": "17:00", "close": "22:00"}}`,
			http.StatusBadRequest, msgInvalidData,
		},
		{"invalid json", http.MethodPut, "/operating-hours/monday", `{"lunch": `, http.StatusBadRequest, msgInvalidRequestBody},
		{"delete unknown weekday", http.MethodDelete, "/operating-hours/funday", "", http.StatusBadRequest, msgInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(newRouter(), tt.method, tt.path, tt.body)
			require.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.message, errorMessage(t, rec))
		})
	}
}

type failingService struct{}

func (failingService) GetCalendar(context.Context) (*models.CalendarResponse, error) {
	return nil, settings.ErrInternal
}

func (failingService) UpsertHours(context.Context, string, *models.OperatingHoursRequest) (*models.OperatingHoursResponse, error) {
	return nil, settings.ErrInternal
}

func (failingService) DeleteHours(context.Context, string) error {
	return settings.ErrInternal
}

func TestHandlers_InternalError(t *testing.T) {
	r := routerFor(failingService{})

	assert.Equal(t, http.StatusInternalServerError, do(r, http.MethodGet, "/operating-hours", "").Code)
	assert.Equal(t, http.StatusInternalServerError, do(r, http.MethodPut, "/operating-hours/monday", mondayHours).Code)
	assert.Equal(t, http.StatusInternalServerError, do(r, http.MethodDelete, "/operating-hours/monday", "").Code)
}
