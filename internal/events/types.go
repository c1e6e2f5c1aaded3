package events

import "time"

// Cart event types carried on the queue.
const (
	TypeItemAdded         = "ITEM_ADDED"
	TypeItemRemoved       = "ITEM_REMOVED"
	TypeCartEmptied       = "CART_EMPTIED"
	TypeCheckoutCompleted = "CHECKOUT_COMPLETED"
)

// CartEvent is the payload sent from API -> SQS -> worker. EventID is unique
// per emission and is the dedup key on the consumer side (SQS delivers
// at-least-once).
type CartEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	ProductID  string    `json:"product_id,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	Amount     float64   `json:"amount,omitempty"`
	Currency   string    `json:"currency,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
