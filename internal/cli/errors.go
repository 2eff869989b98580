package cli

import (
	"errors"

	"github.com/treysl/shopfront/internal/api"
	cartapp "github.com/treysl/shopfront/internal/cart/app"
	checkoutapp "github.com/treysl/shopfront/internal/checkout/app"
)

// MessageFor maps an error onto the line shown to the user. Server
// detail messages pass through verbatim; everything else gets a stable
// phrasing so scripts can match on it.
func MessageFor(err error) string {
	var reqErr *api.RequestFailedError
	var netErr *api.NetworkError

	switch {
	case errors.Is(err, api.ErrUnauthorized):
		return "Your session has expired. Please log in again."
	case errors.Is(err, cartapp.ErrStockExceeded):
		return "Cannot add more items. Stock limit reached."
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		return "Your cart is empty."
	case errors.Is(err, ErrNotLoggedIn):
		return "Please log in first."
	case errors.As(err, &netErr):
		return "Error connecting to server. Is the backend running?"
	case errors.As(err, &reqErr):
		return reqErr.Error()
	default:
		return err.Error()
	}
}
