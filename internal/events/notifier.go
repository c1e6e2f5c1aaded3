package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/wshop/webshop-backend/internal/aws"
	"github.com/wshop/webshop-backend/internal/cart"
)

// SQSNotifier forwards cart store signals to the cart events queue. The
// store treats notifications as fire-and-forget, so publish failures are
// logged and swallowed here -- a lost toast must never fail a cart mutation.
type SQSNotifier struct {
	publisher *aws.Publisher
	nowFunc   func() time.Time
}

// NewSQSNotifier returns a notifier publishing through the given publisher.
func NewSQSNotifier(publisher *aws.Publisher) *SQSNotifier {
	return &SQSNotifier{
		publisher: publisher,
		nowFunc:   time.Now,
	}
}

func (n *SQSNotifier) ItemAdded(item cart.LineItem) {
	n.publish(CartEvent{
		Type:      TypeItemAdded,
		ProductID: item.ID,
		Quantity:  item.Quantity,
		Amount:    item.LineTotal,
		Currency:  item.Currency,
	})
}

func (n *SQSNotifier) ItemRemoved(id string) {
	n.publish(CartEvent{Type: TypeItemRemoved, ProductID: id})
}

func (n *SQSNotifier) CartEmptied() {
	n.publish(CartEvent{Type: TypeCartEmptied})
}

func (n *SQSNotifier) CheckoutCompleted(order cart.Cart) {
	n.publish(CartEvent{
		Type:     TypeCheckoutCompleted,
		Quantity: order.Totals.Quantity,
		Amount:   order.Totals.Amount,
		Currency: order.Totals.Currency,
	})
}

// StateChanged is consumed in-process by the presentation layer; it does not
// go to the queue. The queue carries the discrete signals only.
func (n *SQSNotifier) StateChanged(totals cart.Totals) {}

func (n *SQSNotifier) publish(ev CartEvent) {
	ev.EventID = uuid.NewString()
	ev.OccurredAt = n.nowFunc().UTC()

	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("cart event marshal failed: %v", err)
		return
	}
	attrs := map[string]string{
		"event_id":   ev.EventID,
		"event_type": ev.Type,
	}
	if err := n.publisher.SendCartEvent(context.Background(), string(body), attrs); err != nil {
		log.Printf("cart event publish failed (type=%s): %v", ev.Type, err)
	}
}
