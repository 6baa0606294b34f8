package http

import (
	"errors"
	"net/http"

	"storefront/internal/session"
	"storefront/pkg/dummyjson"
	pkgErrors "storefront/pkg/errors"
)

var (
	errViewNotFound       = pkgErrors.NewHTTPError(http.StatusNotFound, "view not found")
	errUnknownAction      = pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown view action")
	errCatalogUnavailable = pkgErrors.NewHTTPError(http.StatusBadGateway, "catalog unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return errViewNotFound
	case errors.Is(err, session.ErrUnknownAction):
		return errUnknownAction
	case errors.Is(err, dummyjson.ErrUnavailable), errors.Is(err, dummyjson.ErrMalformedResponse):
		return errCatalogUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}
