package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/treysl/shopfront/internal/api"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*api.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return api.NewClient(srv.URL, 5*time.Second, log), srv
}

func TestLogin(t *testing.T) {
	t.Run("success stores nothing and returns the token", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/api/login" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			var body map[string]string
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode request: %v", err)
			}
			if body["username"] != "alice" || body["password"] != "secret" {
				t.Errorf("unexpected credentials: %v", body)
			}
			json.NewEncoder(w).Encode(map[string]string{
				"access_token": "tok-1",
				"token_type":   "bearer",
			})
		})

		tok, err := client.Login(context.Background(), "alice", "secret")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if tok.AccessToken != "tok-1" {
			t.Fatalf("expected tok-1, got %q", tok.AccessToken)
		}
	})

	t.Run("bad credentials surface the server detail", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect username or password"})
		})

		_, err := client.Login(context.Background(), "alice", "wrong")
		var reqErr *api.RequestFailedError
		if !errors.As(err, &reqErr) {
			t.Fatalf("expected RequestFailedError, got %v", err)
		}
		if reqErr.Detail != "Incorrect username or password" {
			t.Fatalf("unexpected detail: %q", reqErr.Detail)
		}
	})

	t.Run("missing access_token is a request failure", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"token_type": "bearer"})
		})

		_, err := client.Login(context.Background(), "alice", "secret")
		var reqErr *api.RequestFailedError
		if !errors.As(err, &reqErr) {
			t.Fatalf("expected RequestFailedError, got %v", err)
		}
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/products/7" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			io.WriteString(w, `{"id":7,"product_name":"Monitor","price":199.0,"stock_quantity":3}`)
		})

		product, err := client.GetProduct(context.Background(), 7)
		if err != nil {
			t.Fatalf("GetProduct failed: %v", err)
		}
		if product.ID != 7 || product.ProductName != "Monitor" {
			t.Fatalf("unexpected product: %+v", product)
		}
	})

	t.Run("missing id and name is a request failure", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"price":49.9,"stock_quantity":5}`)
		})

		_, err := client.GetProduct(context.Background(), 1)
		var reqErr *api.RequestFailedError
		if !errors.As(err, &reqErr) {
			t.Fatalf("expected RequestFailedError, got %v", err)
		}
	})
}

func TestRegister_SchemaMismatch(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":3}`)
	})

	_, err := client.Register(context.Background(), "alice", "a@example.com", "secret")
	var reqErr *api.RequestFailedError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestFailedError for missing username, got %v", err)
	}
}

func TestRegister_DetailPassesThrough(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Username already exists"})
	})

	_, err := client.Register(context.Background(), "alice", "a@example.com", "secret")
	var reqErr *api.RequestFailedError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestFailedError, got %v", err)
	}
	if reqErr.Status != http.StatusBadRequest || reqErr.Detail != "Username already exists" {
		t.Fatalf("unexpected error: %+v", reqErr)
	}
}

func TestListProducts(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `[
				{"id":1,"product_name":"Keyboard","price":49.9,"stock_quantity":5,"description":"clicky"},
				{"id":2,"product_name":"Mouse","price":19.9,"stock_quantity":0}
			]`)
		})

		products, err := client.ListProducts(context.Background())
		if err != nil {
			t.Fatalf("ListProducts failed: %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
		if !products[0].Price.Equal(decimal.RequireFromString("49.9")) {
			t.Fatalf("expected price 49.9, got %s", products[0].Price)
		}
		if products[1].StockQuantity != 0 {
			t.Fatalf("expected stock 0, got %d", products[1].StockQuantity)
		}
	})

	t.Run("schema mismatch is a request failure", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `[{"id":1,"price":49.9,"stock_quantity":5}]`)
		})

		_, err := client.ListProducts(context.Background())
		var reqErr *api.RequestFailedError
		if !errors.As(err, &reqErr) {
			t.Fatalf("expected RequestFailedError for missing product_name, got %v", err)
		}
	})

	t.Run("non-json body is a request failure", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `<html>proxy error</html>`)
		})

		_, err := client.ListProducts(context.Background())
		var reqErr *api.RequestFailedError
		if !errors.As(err, &reqErr) {
			t.Fatalf("expected RequestFailedError, got %v", err)
		}
	})
}

func TestSubmitOrder(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("expected bearer header, got %q", got)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("expected X-Request-Id header")
		}

		var body struct {
			Items []struct {
				ProductID int64   `json:"product_id"`
				Quantity  int     `json:"quantity"`
				UnitPrice float64 `json:"unit_price"`
			} `json:"items"`
			TotalAmount float64 `json:"total_amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("order payload must decode as bare numbers: %v", err)
		}
		if len(body.Items) != 1 || body.Items[0].ProductID != 1 || body.Items[0].Quantity != 2 {
			t.Errorf("unexpected items: %+v", body.Items)
		}
		if body.TotalAmount != 19.98 {
			t.Errorf("expected total 19.98, got %v", body.TotalAmount)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"order_id":     "ORD-DEADBEEF",
			"id":           7,
			"status":       "created",
			"total_amount": 19.98,
		})
	})

	receipt, err := client.SubmitOrder(context.Background(), "tok-1", api.OrderRequest{
		Items: []api.OrderRequestItem{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("9.99")},
		},
		TotalAmount: decimal.RequireFromString("19.98"),
	})
	if err != nil {
		t.Fatalf("SubmitOrder failed: %v", err)
	}
	if receipt.OrderID != "ORD-DEADBEEF" {
		t.Fatalf("expected ORD-DEADBEEF, got %q", receipt.OrderID)
	}
}

func TestListOrders_Unauthorized(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid token"})
	})

	_, err := client.ListOrders(context.Background(), "stale")
	if !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one call, got %d", calls)
	}
}

func TestNetworkFailure(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.ListProducts(context.Background())
	var netErr *api.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}
