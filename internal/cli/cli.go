// Package cli is the storefront's presentation layer: it maps commands
// onto cart and backend operations and renders their results as text.
// No business rules live here.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treysl/shopfront/internal/api"
	cartapp "github.com/treysl/shopfront/internal/cart/app"
	"github.com/treysl/shopfront/internal/session"
)

// Backend is the slice of the remote API the commands use directly.
// Order submission goes through the checkout service instead.
type Backend interface {
	Login(ctx context.Context, username, password string) (api.Token, error)
	Register(ctx context.Context, username, email, password string) (api.User, error)
	ListProducts(ctx context.Context) ([]api.Product, error)
	GetProduct(ctx context.Context, id int64) (api.Product, error)
	ListOrders(ctx context.Context, token string) ([]api.Order, error)
}

// Checkouter submits the current cart as an order.
type Checkouter interface {
	Checkout(ctx context.Context, token string) (api.OrderReceipt, error)
}

type App struct {
	Cart     *cartapp.Service
	Session  *session.Manager
	Backend  Backend
	Checkout Checkouter
	Log      *slog.Logger

	Out io.Writer
	In  io.Reader
}

// New builds the command tree. Each command is a thin shim: parse
// arguments, call the matching App method, let the error mapping in
// main report failures.
func New(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "shopfront",
		Short:         "Terminal storefront client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newProductsCmd(app),
		newProductCmd(app),
		newCartCmd(app),
		newCheckoutCmd(app),
		newOrdersCmd(app),
		newStatusCmd(app),
	)
	return root
}

func newLoginCmd(app *App) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Sign in and store the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw := password
			if pw == "" {
				var err error
				pw, err = app.promptPassword()
				if err != nil {
					return err
				}
			}
			return app.Login(cmd.Context(), args[0], pw)
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "register <username> <email>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw := password
			if pw == "" {
				var err error
				pw, err = app.promptPassword()
				if err != nil {
					return err
				}
			}
			return app.Register(cmd.Context(), args[0], args[1], pw)
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Logout()
		},
	}
}

func newProductsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Products(cmd.Context())
		},
	}
}

func newProductCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.ProductDetail(cmd.Context(), id)
		},
	}
}

func newCartCmd(app *App) *cobra.Command {
	cart := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.CartShow()
		},
	}

	cart.AddCommand(
		&cobra.Command{
			Use:   "add <product-id>",
			Short: "Add one unit of a product",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return app.CartAdd(cmd.Context(), id)
			},
		},
		&cobra.Command{
			Use:   "remove <product-id>",
			Short: "Remove a product's line",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return app.CartRemove(id)
			},
		},
		&cobra.Command{
			Use:   "set <product-id> <quantity>",
			Short: "Set a line's quantity (0 removes it)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				qty, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("quantity must be a number: %q", args[1])
				}
				return app.CartSet(id, qty)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty the cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.CartClear()
			},
		},
	)
	return cart
}

func newCheckoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Submit the cart as an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.PlaceOrder(cmd.Context())
		},
	}
}

func newOrdersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Show order history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Orders(cmd.Context())
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session state and cart badge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Status(cmd.Context())
		},
	}
}

func (a *App) promptPassword() (string, error) {
	fmt.Fprint(a.Out, "Password: ")
	line, err := bufio.NewReader(a.In).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("product id must be a positive number: %q", s)
	}
	return id, nil
}
