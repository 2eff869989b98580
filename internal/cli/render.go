package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/treysl/shopfront/internal/api"
	"github.com/treysl/shopfront/internal/cart/domain"
)

func formatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func renderProducts(w io.Writer, products []api.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products available.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCT\tPRICE\tSTOCK")
	for _, p := range products {
		stock := fmt.Sprintf("%d", p.StockQuantity)
		if p.StockQuantity == 0 {
			stock = "out of stock"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.ProductName, formatPrice(p.Price), stock)
	}
	tw.Flush()
}

func renderProductDetail(w io.Writer, p api.Product) {
	fmt.Fprintf(w, "%s (#%d)\n", p.ProductName, p.ID)
	fmt.Fprintf(w, "Price: %s\n", formatPrice(p.Price))
	fmt.Fprintf(w, "Stock: %d\n", p.StockQuantity)
	if p.Description != "" {
		fmt.Fprintln(w, p.Description)
	}
}

func renderCart(w io.Writer, cart domain.Cart) {
	if cart.IsEmpty() {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCT\tUNIT\tQTY\tLINE TOTAL")
	for _, l := range cart.Lines {
		lineTotal := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			l.ProductID, l.ProductName, formatPrice(l.UnitPrice), l.Quantity, formatPrice(lineTotal))
	}
	tw.Flush()
	fmt.Fprintf(w, "Total: %s (%d items)\n", formatPrice(cart.TotalPrice()), cart.TotalItemCount())
}

func renderOrders(w io.Writer, orders []api.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "You have no orders yet.")
		return
	}

	for i, o := range orders {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Order %s  %s  %s  total %s\n",
			o.OrderID, o.OrderDate, o.OrderStatus, formatPrice(o.TotalAmount))
		for _, item := range o.Items {
			lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
			fmt.Fprintf(w, "  %s - qty %d @ %s = %s\n",
				item.ProductName, item.Quantity, formatPrice(item.UnitPrice), formatPrice(lineTotal))
		}
	}
}
