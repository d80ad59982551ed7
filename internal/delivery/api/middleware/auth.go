package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "horus/internal/delivery/context"
	domainerrors "horus/internal/domain/errors"
	"horus/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "Bearer"

// AuthMiddleware guards routes that need a session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate requires `Authorization: Bearer <token>` and stores the token
// subject for handlers. Every failure surfaces as ErrUnauthorized.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrUnauthorized.WrapMessage("missing or malformed bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected session token", slog.Any("error", err))

			return domainerrors.ErrUnauthorized.WrapMessage("invalid or expired token")
		}

		deliverycontext.SetUserID(c, claims.Subject)

		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
