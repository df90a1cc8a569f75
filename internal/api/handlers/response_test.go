package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondBadRequest(rec, "плохой запрос")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 400, body.Code)
	assert.Equal(t, "плохой запрос", body.Message)
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var v struct {
		Minutes int `json:"minutes"`
	}

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"minutes": 30}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, 30, v.Minutes)

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"minutes": 30, "hours": 1}`))
	assert.Error(t, DecodeJSON(req, &v))
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?partySize=4&bad=x", nil)

	n, err := QueryInt(req, "partySize")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = QueryInt(req, "missing")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = QueryInt(req, "bad")
	assert.Error(t, err)
}
