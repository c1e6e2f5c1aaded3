package cart

import (
	"sync"

	"github.com/wshop/webshop-backend/internal/catalog"
)

// DefaultCurrency is the cart-level display currency used until an item
// specifies its own.
const DefaultCurrency = "USD"

// Store owns the single in-process cart. All mutations are serialized under
// an internal mutex, and each one publishes the next item list together with
// freshly derived totals, so no reader can observe items and totals from
// different mutation steps. Mutations are best-effort: invalid input degrades
// to a safe default or a no-op, never an error (a stale UI snapshot racing a
// prior removal is the expected caller, not a fault).
type Store struct {
	mu       sync.Mutex
	cart     Cart
	notifier Notifier
}

// NewStore returns an empty cart store. notifier may be nil.
func NewStore(notifier Notifier) *Store {
	return &Store{
		cart:     emptyCart(),
		notifier: notifier,
	}
}

func emptyCart() Cart {
	return Cart{
		Items:  []LineItem{},
		Totals: Totals{Currency: DefaultCurrency},
	}
}

// Get returns a snapshot of the current cart. The snapshot is a deep copy;
// callers can mutate it freely. Get normalizes on read: a malformed state
// (nil item list, corrupted quantities, stale totals) is repaired before
// being returned, never propagated.
func (s *Store) Get() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.normalizeLocked()
	return copyCart(s.cart)
}

// Add merges a product into the cart per the catalog input contract:
//
//   - a missing/empty product id rejects the add with no state change and
//     no notification; the return value reports whether anything happened
//   - requestedQty <= 0 falls back to 1
//   - an existing line for the same id absorbs the quantity; its unit price
//     is sticky from the first add and is only replaced when the line has no
//     usable price, and its currency fills in only if previously empty
//   - otherwise a new line is appended from the product's display metadata
func (s *Store) Add(product catalog.Product, requestedQty int) bool {
	if product.ID == "" {
		return false
	}
	qty := requestedQty
	if qty <= 0 {
		qty = 1
	}
	price := product.Price
	if price < 0 {
		price = 0
	}
	currency := product.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	s.mu.Lock()
	if existing := s.findLocked(product.ID); existing != nil {
		existing.Quantity += qty
		if existing.UnitPrice <= 0 && price > 0 {
			existing.UnitPrice = price
		}
		if existing.Currency == "" {
			existing.Currency = currency
		}
	} else {
		s.cart.Items = append(s.cart.Items, LineItem{
			ID:        product.ID,
			Name:      product.Name,
			Subtitle:  product.Subtitle,
			ImageURL:  product.ImageURL,
			Quantity:  qty,
			UnitPrice: price,
			Currency:  currency,
		})
	}
	s.recalculateLocked()
	added := *s.findLocked(product.ID) // carries the clamped quantity and line total
	totals := s.cart.Totals
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.ItemAdded(added)
		s.notifier.StateChanged(totals)
	}
	return true
}

// UpdateQuantity adjusts a line's quantity by delta, flooring at 1. Driving
// the quantity to or below zero keeps the line at quantity 1; removal is
// only ever explicit via Remove. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(id string, delta int) {
	s.mu.Lock()
	item := s.findLocked(id)
	if item == nil {
		s.mu.Unlock()
		return
	}
	item.Quantity += delta
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	s.recalculateLocked()
	totals := s.cart.Totals
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.StateChanged(totals)
	}
}

// Remove filters the matched line out of the cart. Removing an id that is
// not present is a safe no-op. Callers are told whether the cart emptied or
// an item left a non-empty cart; the UI layer relies on that distinction.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	if s.findLocked(id) == nil {
		s.mu.Unlock()
		return
	}
	kept := s.cart.Items[:0]
	for _, it := range s.cart.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.cart.Items = kept
	s.recalculateLocked()
	empty := len(s.cart.Items) == 0
	totals := s.cart.Totals
	s.mu.Unlock()

	if s.notifier != nil {
		if empty {
			s.notifier.CartEmptied()
		} else {
			s.notifier.ItemRemoved(id)
		}
		s.notifier.StateChanged(totals)
	}
}

// Clear replaces the cart with the empty state: no items, zeroed totals,
// currency back to the default.
func (s *Store) Clear() {
	s.mu.Lock()
	s.cart = emptyCart()
	totals := s.cart.Totals
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.StateChanged(totals)
	}
}

// Checkout resets the cart and returns a snapshot of what was checked out.
// The reset is published before the checkout notification fires, so a
// re-entrant read from the confirmation path observes an empty cart.
func (s *Store) Checkout() Cart {
	s.mu.Lock()
	s.normalizeLocked()
	order := copyCart(s.cart)
	s.cart = emptyCart()
	totals := s.cart.Totals
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.CheckoutCompleted(order)
		s.notifier.StateChanged(totals)
	}
	return order
}

// findLocked returns a pointer into the live item list, or nil. Caller must
// hold s.mu.
func (s *Store) findLocked(id string) *LineItem {
	for i := range s.cart.Items {
		if s.cart.Items[i].ID == id {
			return &s.cart.Items[i]
		}
	}
	return nil
}

// recalculateLocked folds the item list into fresh totals and writes the
// clamped per-line values back, so totals and lines always agree:
//
//  1. each quantity is clamped to at least 1 and the line total rederived
//  2. totalQuantity and totalAmount sum the clamped values
//  3. the display currency starts from the previous cart-level currency and
//     is overwritten by every item that carries one — last writer in list
//     order wins
//
// Amounts from different-currency lines are summed as plain numbers with no
// conversion; the resolved currency is a display label, not a claim about
// multi-currency math. The fold is idempotent: running it twice over the
// same items yields the same totals. Caller must hold s.mu.
func (s *Store) recalculateLocked() {
	totalQty := 0
	totalAmount := 0.0
	currency := s.cart.Totals.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	for i := range s.cart.Items {
		it := &s.cart.Items[i]
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		if it.UnitPrice < 0 {
			it.UnitPrice = 0
		}
		it.LineTotal = float64(it.Quantity) * it.UnitPrice

		totalQty += it.Quantity
		totalAmount += it.LineTotal
		if it.Currency != "" {
			currency = it.Currency
		}
	}

	s.cart.Totals = Totals{Quantity: totalQty, Amount: totalAmount, Currency: currency}
}

// normalizeLocked repairs malformed state found at read time rather than
// propagating it. Caller must hold s.mu.
func (s *Store) normalizeLocked() {
	if s.cart.Items == nil {
		s.cart.Items = []LineItem{}
	}
	s.recalculateLocked()
}

func copyCart(c Cart) Cart {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items, Totals: c.Totals}
}
