package app

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/treysl/shopfront/internal/cart/domain"
)

// storageKey is the key the serialized cart lives under.
const storageKey = "cart"

// ErrStockExceeded is returned by Add when incrementing a line would
// push its quantity past the stock known to the caller.
var ErrStockExceeded = errors.New("stock limit reached")

// Service owns the cart: every mutation goes through it, and every
// mutation persists before returning, so storage and memory never
// disagree.
type Service struct {
	store Storage
	log   *slog.Logger
}

func NewService(store Storage, log *slog.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// Load reads the persisted cart. Absent, corrupt, or foreign data all
// load as an empty cart; callers never see a deserialization failure.
func (s *Service) Load() domain.Cart {
	raw, ok, err := s.store.Get(storageKey)
	if err != nil {
		s.log.Warn("cart read failed, starting empty", slog.Any("err", err))
		return domain.Cart{}
	}
	if !ok {
		return domain.Cart{}
	}

	var lines []domain.Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		s.log.Warn("cart state unreadable, starting empty", slog.Any("err", err))
		return domain.Cart{}
	}
	return domain.Cart{Lines: lines}
}

// Save overwrites the persisted cart with the given one.
func (s *Service) Save(cart domain.Cart) error {
	lines := cart.Lines
	if lines == nil {
		lines = []domain.Line{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.store.Put(storageKey, raw)
}

// Add puts one unit of the product in the cart. An existing line is
// incremented only while it stays within availableStock; otherwise the
// cart is left untouched and ErrStockExceeded is returned. The caller
// sources availableStock from the catalog, the cart does not know
// stock levels on its own.
func (s *Service) Add(productID int64, productName string, unitPrice decimal.Decimal, availableStock int) error {
	cart := s.Load()

	if line := cart.Find(productID); line != nil {
		if line.Quantity+1 > availableStock {
			return ErrStockExceeded
		}
		line.Quantity++
		return s.Save(cart)
	}

	cart.Lines = append(cart.Lines, domain.Line{
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    1,
	})
	return s.Save(cart)
}

// SetQuantity sets a line's quantity directly. Zero or negative removes
// the line; a missing product id is a no-op. Direct edits are not
// checked against stock, only Add is. That asymmetry is deliberate and
// matches what Add's stock source would allow the user to see anyway.
func (s *Service) SetQuantity(productID int64, quantity int) error {
	if quantity <= 0 {
		return s.Remove(productID)
	}

	cart := s.Load()
	line := cart.Find(productID)
	if line == nil {
		return nil
	}
	line.Quantity = quantity
	return s.Save(cart)
}

// Remove drops the product's line. Removing an absent id is a no-op.
func (s *Service) Remove(productID int64) error {
	cart := s.Load()

	kept := cart.Lines[:0]
	for _, l := range cart.Lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(cart.Lines) {
		return nil
	}
	cart.Lines = kept
	return s.Save(cart)
}

// Clear empties the cart and persists the empty state. Called after
// logout and after a successful order submission.
func (s *Service) Clear() error {
	return s.Save(domain.Cart{})
}

func (s *Service) TotalItemCount() int {
	cart := s.Load()
	return cart.TotalItemCount()
}

func (s *Service) TotalPrice() decimal.Decimal {
	cart := s.Load()
	return cart.TotalPrice()
}
