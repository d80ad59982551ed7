package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"horus/internal/delivery/api/response"
	deliverycontext "horus/internal/delivery/context"
	domainerrors "horus/internal/domain/errors"
	"horus/internal/domain/service"
	mockSvc "horus/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails string
	}{
		{
			name:        "wrapped domain error",
			err:         domainerrors.ErrDuplicateEmail.WrapMessage("registration conflict"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "DUPLICATE_EMAIL",
			wantMessage: "User with same e-mail already exists.",
		},
		{
			name:        "validation details kept",
			err:         domainerrors.ErrValidationFailed.WithDetails("email: is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMessage: "Invalid request body.",
			wantDetails: "email: is required",
		},
		{
			name:        "database error hides driver message",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("pq: connection refused"), "insert users"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "DATABASE_EXECUTE_FAILED",
			wantMessage: "Internal server error, please try again later.",
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Request Entity Too Large",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/users", nil), rec)

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, c)

			body := decodeError(t, rec)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantDetails, body.Details)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	subject := uuid.New()

	tests := []struct {
		name   string
		header string
		setup  func(ts *mockSvc.MockTokenService)
		wantOK bool
	}{
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(ts *mockSvc.MockTokenService) {
				ts.EXPECT().Validate("good").Return(&service.Claims{Subject: subject}, nil)
			},
			wantOK: true,
		},
		{
			name:   "scheme is case-insensitive",
			header: "bearer good",
			setup: func(ts *mockSvc.MockTokenService) {
				ts.EXPECT().Validate("good").Return(&service.Claims{Subject: subject}, nil)
			},
			wantOK: true,
		},
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "empty token", header: "Bearer  "},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(ts *mockSvc.MockTokenService) {
				ts.EXPECT().Validate("expired").Return(nil, errors.New("token is expired"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}

			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			called := false
			err := NewAuthMiddleware(tokens, discardLogger()).Authenticate(func(c echo.Context) error {
				called = true
				got, ok := deliverycontext.GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, subject, got)

				return nil
			})(c)

			assert.Equal(t, tt.wantOK, called)
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
			}
		})
	}
}
