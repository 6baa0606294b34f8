package http

import (
	"errors"
	"net/http"

	"storefront/internal/cart"
	"storefront/pkg/dummyjson"
	pkgErrors "storefront/pkg/errors"
)

var (
	errCartNotFound       = pkgErrors.NewHTTPError(http.StatusNotFound, "cart not found")
	errInvalidID          = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid cart id")
	errCatalogUnavailable = pkgErrors.NewHTTPError(http.StatusBadGateway, "catalog unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, cart.ErrCartNotFound):
		return errCartNotFound
	case errors.Is(err, cart.ErrInvalidID):
		return errInvalidID
	case errors.Is(err, dummyjson.ErrUnavailable), errors.Is(err, dummyjson.ErrMalformedResponse):
		return errCatalogUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}
