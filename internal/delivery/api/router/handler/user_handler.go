package handler

import (
	"log/slog"
	"net/http"

	"horus/internal/delivery/api/response"
	deliverycontext "horus/internal/delivery/context"
	domainerrors "horus/internal/domain/errors"
	"horus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// ProfileResponse is the public view of an account.
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	Email     string    `json:"email"`
}

// CreateUser handles the registration request.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	if err := h.uc.CreateUser(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c)
}

// GetProfile returns the account behind the session token.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("no session subject")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		Email:     user.Email,
	})
}
