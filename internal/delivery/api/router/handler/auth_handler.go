package handler

import (
	"log/slog"
	"net/http"

	"horus/internal/delivery/api/response"
	"horus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves the session endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login exchanges email and password for a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.AuthenticateInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.uc.Authenticate(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}
