package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/treysl/shopfront/internal/api"
	cartapp "github.com/treysl/shopfront/internal/cart/app"
	checkoutapp "github.com/treysl/shopfront/internal/checkout/app"
)

func TestMessageFor(t *testing.T) {
	t.Run("unauthorized -> session expired", func(t *testing.T) {
		got := MessageFor(api.ErrUnauthorized)
		if got != "Your session has expired. Please log in again." {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("wrapped unauthorized still matches", func(t *testing.T) {
		got := MessageFor(fmt.Errorf("list orders: %w", api.ErrUnauthorized))
		if got != "Your session has expired. Please log in again." {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("stock exceeded", func(t *testing.T) {
		got := MessageFor(cartapp.ErrStockExceeded)
		if got != "Cannot add more items. Stock limit reached." {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		got := MessageFor(checkoutapp.ErrEmptyCart)
		if got != "Your cart is empty." {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("network error", func(t *testing.T) {
		got := MessageFor(&api.NetworkError{Err: errors.New("connection refused")})
		if got != "Error connecting to server. Is the backend running?" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("request failure passes the server detail through", func(t *testing.T) {
		got := MessageFor(&api.RequestFailedError{Status: 400, Detail: "Username already exists"})
		if got != "Username already exists" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("unknown errors fall through", func(t *testing.T) {
		got := MessageFor(errors.New("boom"))
		if got != "boom" {
			t.Fatalf("got %q", got)
		}
	})
}
