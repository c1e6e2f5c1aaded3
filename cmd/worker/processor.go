package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/wshop/webshop-backend/internal/aws"
	wsevents "github.com/wshop/webshop-backend/internal/events"
)

// Processor consumes cart events from SQS, dedups them, and turns them into
// CloudWatch metrics.
type Processor struct {
	dedup      *wsevents.DedupStore
	cloudWatch aws.CloudWatchAPI
	namespace  string
	nowFunc    func() time.Time
}

// NewProcessor creates a new worker processor with AWS clients injected.
func NewProcessor(clients *aws.AWSClients, eventsTable, namespace string, dedupTTL time.Duration) *Processor {
	return &Processor{
		dedup:      wsevents.NewDedupStore(clients.DynamoDB, eventsTable, dedupTTL),
		cloudWatch: clients.CloudWatch,
		namespace:  namespace,
		nowFunc:    time.Now,
	}
}

// Handle receives an SQS batch event and processes each message.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			// Return error: Lambda will retry. If failed too many times, message goes to DLQ.
			log.Printf("worker error: %v", err)
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	var ev wsevents.CartEvent
	if err := json.Unmarshal([]byte(rec.Body), &ev); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}
	if ev.EventID == "" {
		return fmt.Errorf("message without event_id: %s", rec.Body)
	}

	log.Printf("[worker] received event=%s type=%s product=%s", ev.EventID, ev.Type, ev.ProductID)

	// SQS is at-least-once; each event counts toward metrics exactly once
	first, err := p.dedup.MarkProcessed(ctx, ev.EventID, ev.Type)
	if err != nil {
		return fmt.Errorf("dedup check: %w", err)
	}
	if !first {
		log.Printf("[worker] duplicate event=%s, skipping", ev.EventID)
		return nil
	}

	if err := p.emitMetrics(ctx, ev); err != nil {
		return fmt.Errorf("emit metrics: %w", err)
	}

	log.Printf("[worker] processed event=%s", ev.EventID)
	return nil
}

func (p *Processor) emitMetrics(ctx context.Context, ev wsevents.CartEvent) error {
	now := p.nowFunc()
	var data []cwtypes.MetricDatum

	switch ev.Type {
	case wsevents.TypeItemAdded:
		qty := ev.Quantity
		if qty < 1 {
			qty = 1
		}
		data = append(data, cwtypes.MetricDatum{
			MetricName: awsString("ItemsAdded"),
			Value:      awsFloat(float64(qty)),
			Unit:       cwtypes.StandardUnitCount,
			Timestamp:  &now,
		})
	case wsevents.TypeItemRemoved, wsevents.TypeCartEmptied:
		data = append(data, cwtypes.MetricDatum{
			MetricName: awsString("ItemsRemoved"),
			Value:      awsFloat(1),
			Unit:       cwtypes.StandardUnitCount,
			Timestamp:  &now,
		})
	case wsevents.TypeCheckoutCompleted:
		data = append(data,
			cwtypes.MetricDatum{
				MetricName: awsString("CheckoutsCompleted"),
				Value:      awsFloat(1),
				Unit:       cwtypes.StandardUnitCount,
				Timestamp:  &now,
			},
			cwtypes.MetricDatum{
				MetricName: awsString("CheckoutAmount"),
				Value:      awsFloat(ev.Amount),
				Unit:       cwtypes.StandardUnitNone,
				Timestamp:  &now,
			},
		)
	default:
		// unknown types are dropped, not retried; a new producer version
		// must not wedge the queue
		log.Printf("[worker] unknown event type %q, dropping", ev.Type)
		return nil
	}

	_, err := p.cloudWatch.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  &p.namespace,
		MetricData: data,
	})
	return err
}

func awsString(s string) *string  { return &s }
func awsFloat(f float64) *float64 { return &f }
