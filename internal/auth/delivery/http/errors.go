package http

import (
	"errors"
	"net/http"

	"storefront/internal/auth"
	pkgErrors "storefront/pkg/errors"
)

var errAuthUnavailable = pkgErrors.NewHTTPError(http.StatusBadGateway, "auth service unavailable")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrRejected):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrUnavailable), errors.Is(err, auth.ErrMissingToken):
		return errAuthUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}
