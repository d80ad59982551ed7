package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"horus/config"
	deliverycontext "horus/internal/delivery/context"
	domainerrors "horus/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		keepSame bool
	}{
		{name: "client id reused", header: "abc-123", keepSame: true},
		{name: "missing id generated", header: ""},
		{name: "id with spaces replaced", header: "bad id"},
		{name: "oversized id replaced", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenCtxID string
			var seenLogger *slog.Logger
			m := NewRequestIDMiddleware(slog.Default())
			err := m.Process(func(c echo.Context) error {
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				seenLogger = deliverycontext.GetLogger(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, seenCtxID)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			assert.NotNil(t, seenLogger)
			if tt.keepSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestLoggerMiddleware_DebugLogsStatusFromError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/login", nil), httptest.NewRecorder())

	err := NewLoggerMiddleware(logger, cfg).Handle(func(echo.Context) error {
		return domainerrors.ErrInvalidCredentials
	})(c)

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Contains(t, buf.String(), `"status":400`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"uri":"/auth/login"`)
}

func TestLoggerMiddleware_SilentOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := NewLoggerMiddleware(logger, &config.Config{}).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	got []recordedRequest
}

func (f *fakeObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	f.got = append(f.got, recordedRequest{method: method, route: route, status: status})
}

func TestMetricsMiddleware(t *testing.T) {
	observer := &fakeObserver{}
	e := echo.New()
	e.Use(NewMetricsMiddleware(observer).Handle)
	e.POST("/users", func(c echo.Context) error {
		return domainerrors.ErrDuplicateEmail.WrapMessage("conflict")
	})
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/users", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Len(t, observer.got, 2)
	assert.Equal(t, recordedRequest{method: http.MethodPost, route: "/users", status: http.StatusBadRequest}, observer.got[0])
	assert.Equal(t, recordedRequest{method: http.MethodGet, route: "/health", status: http.StatusOK}, observer.got[1])
}
