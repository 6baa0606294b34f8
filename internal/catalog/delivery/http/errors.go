package http

import (
	"errors"
	"net/http"

	"storefront/internal/catalog"
	"storefront/pkg/dummyjson"
	pkgErrors "storefront/pkg/errors"
)

var (
	errProductNotFound    = pkgErrors.NewHTTPError(http.StatusNotFound, "product not found")
	errInvalidID          = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid product id")
	errCatalogUnavailable = pkgErrors.NewHTTPError(http.StatusBadGateway, "catalog unavailable")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		return errProductNotFound
	case errors.Is(err, catalog.ErrInvalidID):
		return errInvalidID
	case errors.Is(err, dummyjson.ErrUnavailable), errors.Is(err, dummyjson.ErrMalformedResponse):
		return errCatalogUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}
