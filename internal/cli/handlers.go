package cli

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/treysl/shopfront/internal/api"
)

// ErrNotLoggedIn gates every authenticated command locally: without a
// stored token the endpoint is never called.
var ErrNotLoggedIn = errors.New("please log in first")

func (a *App) Login(ctx context.Context, username, password string) error {
	tok, err := a.Backend.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := a.Session.SetToken(tok.AccessToken); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Logged in as %s.\n", username)
	return nil
}

func (a *App) Register(ctx context.Context, username, email, password string) error {
	user, err := a.Backend.Register(ctx, username, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Registered %s. You can now log in.\n", user.Username)
	return nil
}

// Logout drops the session and empties the cart, matching the remote
// order state a fresh sign-in would see.
func (a *App) Logout() error {
	if err := a.Session.Clear(); err != nil {
		return err
	}
	if err := a.Cart.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Signed out. Cart emptied.")
	return nil
}

func (a *App) Products(ctx context.Context) error {
	products, err := a.Backend.ListProducts(ctx)
	if err != nil {
		return err
	}
	renderProducts(a.Out, products)
	return nil
}

func (a *App) ProductDetail(ctx context.Context, id int64) error {
	product, err := a.Backend.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	renderProductDetail(a.Out, product)
	return nil
}

func (a *App) CartShow() error {
	renderCart(a.Out, a.Cart.Load())
	return nil
}

// CartAdd resolves the product from the catalog at call time and hands
// its current stock to the cart store, which enforces the cap.
func (a *App) CartAdd(ctx context.Context, id int64) error {
	product, err := a.Backend.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	if product.StockQuantity == 0 {
		return fmt.Errorf("%s is out of stock", product.ProductName)
	}
	if err := a.Cart.Add(product.ID, product.ProductName, product.Price, product.StockQuantity); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Added %s to cart (%d items).\n", product.ProductName, a.Cart.TotalItemCount())
	return nil
}

func (a *App) CartRemove(id int64) error {
	if err := a.Cart.Remove(id); err != nil {
		return err
	}
	renderCart(a.Out, a.Cart.Load())
	return nil
}

func (a *App) CartSet(id int64, quantity int) error {
	if err := a.Cart.SetQuantity(id, quantity); err != nil {
		return err
	}
	renderCart(a.Out, a.Cart.Load())
	return nil
}

func (a *App) CartClear() error {
	if err := a.Cart.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Cart emptied.")
	return nil
}

func (a *App) PlaceOrder(ctx context.Context) error {
	token, ok := a.Session.Token()
	if !ok {
		return ErrNotLoggedIn
	}

	receipt, err := a.Checkout.Checkout(ctx, token)
	if err != nil {
		// A non-empty receipt means the server accepted the order and
		// only the local cleanup failed; the user still needs the id.
		if receipt.OrderID != "" {
			fmt.Fprintf(a.Out, "Order placed: %s (total %s), but the cart could not be cleared. Run 'shopfront cart clear'.\n",
				receipt.OrderID, formatPrice(receipt.TotalAmount))
		}
		return a.dropSessionOn401(err)
	}

	fmt.Fprintf(a.Out, "Order placed: %s (total %s). Cart cleared.\n",
		receipt.OrderID, formatPrice(receipt.TotalAmount))
	return nil
}

func (a *App) Orders(ctx context.Context) error {
	token, ok := a.Session.Token()
	if !ok {
		return ErrNotLoggedIn
	}

	orders, err := a.Backend.ListOrders(ctx, token)
	if err != nil {
		return a.dropSessionOn401(err)
	}
	renderOrders(a.Out, orders)
	return nil
}

// Status shows the signed-in state and the cart badge. When a session
// exists the catalog and the order history are fetched concurrently,
// they are independent views.
func (a *App) Status(ctx context.Context) error {
	token, ok := a.Session.Token()

	fmt.Fprintf(a.Out, "Signed in: %v\n", ok)
	fmt.Fprintf(a.Out, "Cart: %d items, total %s\n",
		a.Cart.TotalItemCount(), formatPrice(a.Cart.TotalPrice()))

	if !ok {
		return nil
	}

	var (
		products []api.Product
		orders   []api.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = a.Backend.ListProducts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = a.Backend.ListOrders(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return a.dropSessionOn401(err)
	}

	fmt.Fprintf(a.Out, "Catalog: %d products\n", len(products))
	fmt.Fprintf(a.Out, "Orders: %d placed\n", len(orders))
	return nil
}

// dropSessionOn401 clears the stored token when the server says it is
// invalid, so the next command renders the signed-out state. The error
// still propagates; nothing is retried.
func (a *App) dropSessionOn401(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		if clearErr := a.Session.Clear(); clearErr != nil {
			a.Log.Warn("failed to clear session", "err", clearErr)
		}
	}
	return err
}
