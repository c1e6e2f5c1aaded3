package cart

// LineItem is one product's presence in the cart, keyed by product id.
// Display metadata is copied from the product at add time and never
// recomputed. LineTotal is derived; it is rewritten on every recalculation
// and never trusted as stored.
type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Subtitle  string  `json:"subtitle,omitempty"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Quantity  int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	Currency  string  `json:"currency"`
	LineTotal float64 `json:"lineTotal"`
}

// Totals is the aggregate projection over the item list. It is always the
// fold of the current items under recalculate; it is never mutated on its
// own.
type Totals struct {
	Quantity int     `json:"qty"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Cart bundles the ordered item list with its derived totals.
type Cart struct {
	Items  []LineItem `json:"items"`
	Totals Totals     `json:"totals"`
}

// Notifier receives fire-and-forget signals after the store has published
// new state. Implementations must not call back into the Store from the
// notification path expecting pre-mutation state; by contract they always
// observe the final, published state. A nil Notifier is valid.
type Notifier interface {
	// ItemAdded fires after a successful Add, with the merged line.
	ItemAdded(item LineItem)
	// ItemRemoved fires after Remove when items remain in the cart.
	ItemRemoved(id string)
	// CartEmptied fires after Remove when the last line was removed.
	CartEmptied()
	// CheckoutCompleted fires after Checkout with a snapshot of the cart
	// as it was checked out. The store is already empty when this fires.
	CheckoutCompleted(order Cart)
	// StateChanged fires after every successful mutation; it carries no
	// payload beyond the fresh totals and tells listeners their previous
	// snapshot is stale.
	StateChanged(totals Totals)
}
