package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
)

func respondErrorResult(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, err, "Something went wrong")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "app error keeps its code and message",
			err:        apperrors.NewConflictError("a user with this email already exists"),
			wantStatus: http.StatusConflict,
			wantError:  "a user with this email already exists",
		},
		{
			name:       "not found",
			err:        apperrors.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "Resource not found",
		},
		{
			name:       "not configured",
			err:        fmt.Errorf("checking settings: %w", apperrors.ErrNotConfigured),
			wantStatus: http.StatusBadRequest,
			wantError:  "Integration is not configured",
		},
		{
			name:       "auth expired",
			err:        apperrors.ErrAuthExpired,
			wantStatus: http.StatusUnauthorized,
			wantError:  "FreshBooks authorization expired, please reconnect",
		},
		{
			name:       "sync failure carries the provider message",
			err:        fmt.Errorf("%w: fetching clients: provider said quota exceeded", apperrors.ErrSyncFailed),
			wantStatus: http.StatusBadGateway,
			wantError:  "provider sync failed: fetching clients: provider said quota exceeded",
		},
		{
			name:       "unknown error falls back to 500",
			err:        fmt.Errorf("pool exhausted"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := respondErrorResult(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}
