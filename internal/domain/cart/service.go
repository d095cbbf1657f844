// internal/domain/cart/service.go
package cart

import "sync"

// Store holds the session's cart in memory. Lines keep insertion order
// and there is at most one line per product id. Nothing is persisted;
// the cart is lost on restart, which is a deliberate boundary — callers
// wanting durability must add an explicit persistence collaborator.
type Store struct {
	mu    sync.Mutex
	items []LineItem
}

// NewStore creates an empty cart store
func NewStore() *Store {
	return &Store{}
}

// Add merges the item into the cart. An existing id gets its quantity
// incremented; a new id is appended with the requested quantity
// (at least 1). Add cannot fail.
func (s *Store) Add(req AddRequest) LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	qty := req.Quantity
	if qty < 1 {
		qty = 1
	}

	for i := range s.items {
		if s.items[i].ID == req.ID {
			s.items[i].Quantity += qty
			return s.items[i]
		}
	}

	item := LineItem{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Image:    req.Image,
		Quantity: qty,
	}
	s.items = append(s.items, item)
	return item
}

// UpdateQuantity sets the line's quantity. Zero or below removes the
// line entirely. Unknown id is a no-op.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			if quantity <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			} else {
				s.items[i].Quantity = quantity
			}
			return
		}
	}
}

// Remove deletes the line if present; no-op otherwise
func (s *Store) Remove(id string) {
	s.UpdateQuantity(id, 0)
}

// Clear empties the cart unconditionally
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the current line items in insertion order
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the sum of quantities, for badge display
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Totals recomputes the cart summary from the current lines. The
// delivery fee is only charged when the cart is non-empty.
func (s *Store) Totals(deliveryFee int64) Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var totals Totals
	totals.ItemCount = len(s.items)
	for _, item := range s.items {
		totals.TotalQuantity += item.Quantity
		totals.SubTotal += item.Price * int64(item.Quantity)
	}
	if totals.ItemCount > 0 {
		totals.DeliveryFee = deliveryFee
	}
	totals.TotalAmount = totals.SubTotal + totals.DeliveryFee
	return totals
}
