package handler

import (
	"net/http"
	"time"

	"horus/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// Root reports the server clock.
func Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"data": time.Now().UTC().Format(time.RFC3339)})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
