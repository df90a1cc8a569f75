package check_availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/table-buddy/internal/api/handlers"
	"github.com/m04kA/table-buddy/internal/domain"
	checkAvailability "github.com/m04kA/table-buddy/internal/usecase/check_availability"
	"github.com/m04kA/table-buddy/pkg/logger"
)

type stubUseCase struct {
	verdict *checkAvailability.Response
	err     error
	got     *checkAvailability.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	s.got = req
	return s.verdict, s.err
}

func serve(uc *stubUseCase, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Available(t *testing.T) {
	uc := &stubUseCase{verdict: &domain.Verdict{
		Date:            time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		Time:            "18:20",
		PartySize:       4,
		AvailableTables: 2,
		TableIDs:        []int64{1, 3},
	}}

	rec := serve(uc, "/availability?date=2026-10-19&time=18:20&partySize=4")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, uc.got.PartySize)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Equal(t, []int64{1, 3}, resp.TableIDs)
	assert.Equal(t, "ok", resp.Reason)
	assert.Contains(t, resp.Message, "2 tables available")
}

func TestHandle_DomainRejectionIsNotAnError(t *testing.T) {
	uc := &stubUseCase{err: &domain.ClosedError{Weekday: "sunday"}}

	rec := serve(uc, "/availability?date=2026-10-25&time=12:00&partySize=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.Equal(t, "closed", resp.Reason)
	assert.Empty(t, resp.TableIDs)
}

func TestHandle_Errors(t *testing.T) {
	rec := serve(&stubUseCase{}, "/availability?date=2026-10-19&time=18:00")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(&stubUseCase{}, "/availability?date=2026-10-19&time=18:00&partySize=many")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(&stubUseCase{err: domain.ErrValidation}, "/availability?date=19.10&time=18:00&partySize=2")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(&stubUseCase{err: errors.New("db down")}, "/availability?date=2026-10-19&time=18:00&partySize=2")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandle_PartySizeAbsentOrZero(t *testing.T) {
	uc := &stubUseCase{}
	rec := serve(uc, "/availability?date=2026-10-19&time=18:00")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgMissingParams)
	assert.Nil(t, uc.got)

	uc = &stubUseCase{err: fmt.Errorf("%w: party size must be at least 1", domain.ErrValidation)}
	rec = serve(uc, "/availability?date=2026-10-19&time=18:00&partySize=0")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, 0, uc.got.PartySize)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid request: party size must be at least 1.", resp.Message)
}
