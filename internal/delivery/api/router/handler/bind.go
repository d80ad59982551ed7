// Package handler contains the HTTP handlers for the application.
package handler

import (
	domainerrors "horus/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the JSON body into dst and checks its tags. Both
// malformed and invalid bodies become ErrValidationFailed.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed JSON body")
	}

	if err := c.Validate(dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
