package app

import (
	"context"
	"errors"

	"github.com/treysl/shopfront/internal/api"
	"github.com/treysl/shopfront/internal/cart/domain"
)

var ErrEmptyCart = errors.New("cart is empty")

// CartSource is the slice of the cart store checkout needs.
type CartSource interface {
	Load() domain.Cart
	Clear() error
}

// OrderPlacer submits an order to the backend.
type OrderPlacer interface {
	SubmitOrder(ctx context.Context, token string, order api.OrderRequest) (api.OrderReceipt, error)
}

type Service struct {
	cart   CartSource
	orders OrderPlacer
}

func NewService(cart CartSource, orders OrderPlacer) *Service {
	return &Service{
		cart:   cart,
		orders: orders,
	}
}

// Checkout turns the cart into an order and submits it. The cart is
// cleared only after the server accepts the order; on any failure it
// is left exactly as it was so the user can retry by hand.
func (s *Service) Checkout(ctx context.Context, token string) (api.OrderReceipt, error) {
	cart := s.cart.Load()
	if cart.IsEmpty() {
		return api.OrderReceipt{}, ErrEmptyCart
	}

	items := make([]api.OrderRequestItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, api.OrderRequestItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	receipt, err := s.orders.SubmitOrder(ctx, token, api.OrderRequest{
		Items:       items,
		TotalAmount: cart.TotalPrice(),
	})
	if err != nil {
		return api.OrderReceipt{}, err
	}

	if err := s.cart.Clear(); err != nil {
		return receipt, err
	}
	return receipt, nil
}
