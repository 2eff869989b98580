package api

import "github.com/shopspring/decimal"

// Wire types for the storefront backend. Field names follow the
// server's JSON exactly; validate tags guard against replies that
// decode but are missing the fields the UI depends on.

type Token struct {
	AccessToken string `json:"access_token" validate:"required"`
	TokenType   string `json:"token_type"`
}

type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type Product struct {
	ID            int64           `json:"id" validate:"required"`
	ProductName   string          `json:"product_name" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity" validate:"gte=0"`
	Description   string          `json:"description"`
}

// OrderRequest is built from the cart at checkout. The total is
// advisory; the server recomputes it.
type OrderRequest struct {
	Items       []OrderRequestItem `json:"items"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
}

type OrderRequestItem struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type OrderReceipt struct {
	OrderID     string          `json:"order_id" validate:"required"`
	ID          int64           `json:"id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type Order struct {
	OrderID     string          `json:"order_id" validate:"required"`
	OrderDate   string          `json:"order_date"`
	OrderStatus string          `json:"order_status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []OrderItem     `json:"items" validate:"dive"`
}

type OrderItem struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name" validate:"required"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}
