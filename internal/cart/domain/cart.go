package domain

import "github.com/shopspring/decimal"

// Line is one product's presence in the cart. Name and unit price are
// captured at add time and are not re-synced with later catalog changes.
type Line struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Cart is an ordered list of lines, at most one per product id,
// insertion order preserved.
type Cart struct {
	Lines []Line
}

// Find returns a pointer into Lines for the given product, or nil.
func (c *Cart) Find(productID int64) *Line {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalItemCount is the sum of quantities across all lines, shown as
// the cart badge.
func (c *Cart) TotalItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// TotalPrice is the sum of unit price times quantity over all lines.
// It is advisory: the server recomputes the authoritative total.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}
