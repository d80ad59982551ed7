package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "horus/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_HidesDetailsForAuthAndServerErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantDetails string
	}{
		{name: "bad request keeps details", status: http.StatusBadRequest, wantDetails: "email: required"},
		{name: "unauthorized drops details", status: http.StatusUnauthorized},
		{name: "forbidden drops details", status: http.StatusForbidden},
		{name: "server error drops details", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			deliverycontext.SetRequestID(c, "req-1")

			require.NoError(t, Error(c, tt.status, "CODE", "msg", "email: required"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "msg", body.Message)
			assert.Equal(t, "CODE", body.Code)
			assert.Equal(t, tt.wantDetails, body.Details)
			assert.Equal(t, "req-1", body.RequestID)
		})
	}
}

func TestCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	require.NoError(t, Created(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Body.String())
}
