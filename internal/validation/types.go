package validation

// ProductPayload is the catalog product as submitted by the storefront when
// adding to the cart. Only the id is mandatory; the cart engine applies its
// own defaults for everything else.
type ProductPayload struct {
	ID       string  `json:"id" validate:"required"` // merge key in the cart
	Name     string  `json:"name,omitempty"`         // display only
	Subtitle string  `json:"subtitle,omitempty"`     // display only
	ImageURL string  `json:"imageUrl,omitempty"`     // display only
	Price    float64 `json:"price" validate:"gte=0"` // per-unit price
	Currency string  `json:"currency,omitempty"`     // ISO-4217-like, e.g. "USD"
}

// AddItemRequest is the payload for POST /cart/items. Quantity is
// deliberately unvalidated: a missing or non-positive quantity falls back to
// 1 inside the engine, which owns that policy.
type AddItemRequest struct {
	Product  ProductPayload `json:"product" validate:"required"`
	Quantity int            `json:"quantity,omitempty"`
}

// UpdateQuantityRequest is the payload for POST /cart/items/:id/quantity.
// Delta is a signed step (the qty +/- buttons send +1 or -1); zero is
// rejected because it would be a no-op request.
type UpdateQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}
