package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padeltour/tournament-server/services"
)

func TestReadJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid body", `{"name": "Smash Bros"}`, ""},
		{"empty body", ``, "body must not be empty"},
		{"broken json", `{"name":`, "badly-formed JSON"},
		{"unknown field", `{"name": "x", "extra": 1}`, "unknown key"},
		{"wrong type", `{"name": 42}`, `incorrect JSON type for field "name"`},
		{"trailing value", `{"name": "x"}{"name": "y"}`, "single JSON value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			var dst payload
			err := readJSON(rec, req, &dst)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "Smash Bros", dst.Name)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	err := writeJSON(rec, http.StatusCreated, jsonResponse{"team": "ok"}, http.Header{"X-Request-Id": []string{"abc"}})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "abc", rec.Header().Get("X-Request-Id"))
	assert.JSONEq(t, `{"team": "ok"}`, rec.Body.String())
}

func TestMapServiceErrorToHTTP(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{services.ErrTeamNotFound, http.StatusNotFound},
		{services.ErrGroupNotFound, http.StatusNotFound},
		{services.ErrMatchNotFound, http.StatusNotFound},
		{services.ErrBracketSlotNotFound, http.StatusNotFound},
		{services.ErrTeamNameConflict, http.StatusConflict},
		{services.ErrTeamNameRequired, http.StatusBadRequest},
		{services.ErrMatchSameTeam, http.StatusBadRequest},
		{services.ErrInvalidSetScore, http.StatusBadRequest},
		{services.ErrWinnerNotInSlot, http.StatusBadRequest},
		{services.ErrInsufficientTeams, http.StatusBadRequest},
		{services.ErrUnsupportedLogoType, http.StatusBadRequest},
		{services.ErrLogoUploadDisabled, http.StatusNotImplemented},
		{services.ErrAuthInvalidCredentials, http.StatusUnauthorized},
		{services.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			mapServiceErrorToHTTP(rec, req, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
