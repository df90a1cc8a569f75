package tables

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/table-buddy/internal/api/handlers"
	"github.com/m04kA/table-buddy/internal/infra/storage/memory"
	tablesService "github.com/m04kA/table-buddy/internal/service/tables"
	"github.com/m04kA/table-buddy/internal/service/tables/models"
	"github.com/m04kA/table-buddy/pkg/logger"
)

func routerFor(service TableService) *mux.Router {
	h := NewHandler(service, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/tables", h.HandleList).Methods(http.MethodGet)
	r.HandleFunc("/tables", h.HandleCreate).Methods(http.MethodPost)
	r.HandleFunc("/tables/{tableId}/status", h.HandleUpdateStatus).Methods(http.MethodPatch)
	return r
}

func newRouter() *mux.Router {
	return routerFor(tablesService.NewService(memory.NewStore().Tables(), logger.NewNop()))
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

func TestHandlers_CreateListAndUpdate(t *testing.T) {
	r := newRouter()

	rec := do(r, http.MethodPost, "/tables", `{"capacity": 4}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.TableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "available", created.Status)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/tables", `{"capacity": 2, "status": "reserved"}`).Code)

	rec = do(r, http.MethodPatch, "/tables/1/status", `{"status": "occupied"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.TableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "occupied", updated.Status)

	rec = do(r, http.MethodGet, "/tables", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.TableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "occupied", list[0].Status)
	assert.Equal(t, "reserved", list[1].Status)
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
		{"capacity too small", http.MethodPost, "/tables", `{"capacity": 0}`, http.StatusBadRequest, msgInvalidData},
		{"capacity too large", http.MethodPost, "/tables", `{"capacity": 101}`, http.StatusBadRequest, msgInvalidData},
		{"unknown status on create", http.MethodPost, "/tables", `{"capacity": 2, "status": "broken"}`, http.StatusBadRequest, msgInvalidData},
		{"invalid json", http.MethodPost, "/tables", `{`, http.StatusBadRequest, msgInvalidRequestBody},
		{"table not found", http.MethodPatch, "/tables/9/status", `{"status": "occupied"}`, http.StatusNotFound, msgNotFound},
		{"invalid table id", http.MethodPatch, "/tables/abc/status", `{"status": "occupied"}`, http.StatusBadRequest, msgInvalidTableID},
		{"unknown status on update", http.MethodPatch, "/tables/9/status", `{"status": "broken"}`, http.StatusBadRequest, msgInvalidData},
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

func (failingService) List(context.Context) ([]*models.TableResponse, error) {
	return nil, tablesService.ErrInternal
}

func (failingService) Create(context.Context, *models.CreateTableRequest) (*models.TableResponse, error) {
	return nil, errors.New("connection reset")
}

func (failingService) UpdateStatus(context.Context, int64, *models.UpdateTableStatusRequest) (*models.TableResponse, error) {
	return nil, tablesService.ErrInternal
}

func TestHandlers_InternalError(t *testing.T) {
	r := routerFor(failingService{})

	assert.Equal(t, http.StatusInternalServerError, do(r, http.MethodGet, "/tables", "").Code)
	assert.Equal(t, http.StatusInternalServerError, do(r, http.MethodPost, "/tables", `{"capacity": 2}`).Code)
	assert.Equal(t, http.StatusInternalServerError, do(r, http.MethodPatch, "/tables/1/status", `{"status": "occupied"}`).Code)
}
