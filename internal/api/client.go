// Package api is the HTTP client for the storefront backend. It speaks
// plain JSON over REST, attaches the bearer token where an endpoint
// needs one, and maps every failure into the package's error taxonomy.
// Nothing here retries; a failed call is reported once and dropped.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// The backend decodes money fields as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
	log        *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		validate:   validator.New(),
		log:        log,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, username, password string) (Token, error) {
	var tok Token
	if err := c.do(ctx, http.MethodPost, "/api/login", "", loginRequest{username, password}, &tok); err != nil {
		return Token{}, err
	}
	if err := c.validate.Struct(tok); err != nil {
		return Token{}, schemaError(err)
	}
	return tok, nil
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, username, email, password string) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/register", "", registerRequest{username, email, password}, &user); err != nil {
		return User{}, err
	}
	if err := c.validate.Struct(user); err != nil {
		return User{}, schemaError(err)
	}
	return user, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/api/products", "", nil, &products); err != nil {
		return nil, err
	}
	for i := range products {
		if err := c.validate.Struct(products[i]); err != nil {
			return nil, schemaError(err)
		}
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (Product, error) {
	var product Product
	path := fmt.Sprintf("/api/products/%d", id)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &product); err != nil {
		return Product{}, err
	}
	if err := c.validate.Struct(product); err != nil {
		return Product{}, schemaError(err)
	}
	return product, nil
}

func (c *Client) SubmitOrder(ctx context.Context, token string, order OrderRequest) (OrderReceipt, error) {
	var receipt OrderReceipt
	if err := c.do(ctx, http.MethodPost, "/api/orders", token, order, &receipt); err != nil {
		return OrderReceipt{}, err
	}
	if err := c.validate.Struct(receipt); err != nil {
		return OrderReceipt{}, schemaError(err)
	}
	return receipt, nil
}

func (c *Client) ListOrders(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	for i := range orders {
		if err := c.validate.Struct(orders[i]); err != nil {
			return nil, schemaError(err)
		}
	}
	return orders, nil
}

// do runs one request/response cycle. token may be empty for public
// endpoints; out may be nil when the caller ignores the body.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.Any("err", err),
		)
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	c.log.Debug("request done",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("request_id", requestID),
	)

	// A 401 on an authenticated call means the stored token is invalid.
	// On public endpoints (login) it is just a failed request with a
	// server detail, there is no session to drop.
	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestFailedError{
			Status: resp.StatusCode,
			Detail: detailFromBody(raw),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &RequestFailedError{
			Status: resp.StatusCode,
			Detail: "unexpected response from server",
		}
	}
	return nil
}

// detailFromBody pulls the server's {detail} message out of an error
// reply, falling back to empty when the body is not in that shape.
func detailFromBody(raw []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return payload.Detail
}

func schemaError(err error) error {
	return &RequestFailedError{
		Status: http.StatusOK,
		Detail: fmt.Sprintf("unexpected response from server: %v", err),
	}
}
