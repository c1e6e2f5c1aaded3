package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/smithy-go"
	"github.com/wshop/webshop-backend/internal/aws"
)

// DedupRecord is the shape persisted in the processed-events DynamoDB table.
type DedupRecord struct {
	EventID     string    `dynamodbav:"event_id"` // PK
	EventType   string    `dynamodbav:"event_type,omitempty"`
	ProcessedAt time.Time `dynamodbav:"processed_at"`
	ExpiresAt   int64     `dynamodbav:"expires_at"` // TTL epoch seconds
}

// DedupStore marks cart events as processed so the worker handles each one
// exactly once even though SQS delivers at-least-once.
type DedupStore struct {
	client    aws.DynamoDBAPI
	tableName string
	ttlWindow time.Duration
	nowFunc   func() time.Time
}

// NewDedupStore returns a configured DedupStore.
// ttlWindow bounds how long processed markers are retained (e.g. 48h); after
// that a redelivered event would be processed again, which is acceptable for
// metrics.
func NewDedupStore(client aws.DynamoDBAPI, tableName string, ttlWindow time.Duration) *DedupStore {
	return &DedupStore{
		client:    client,
		tableName: tableName,
		ttlWindow: ttlWindow,
		nowFunc:   time.Now,
	}
}

// MarkProcessed records the event id with a conditional write.
// Returns (true, nil) if this is the first time the event is seen.
// Returns (false, nil) if the event was already processed.
// Returns (false, err) on other errors.
func (s *DedupStore) MarkProcessed(ctx context.Context, eventID, eventType string) (bool, error) {
	now := s.nowFunc()
	rec := DedupRecord{
		EventID:     eventID,
		EventType:   eventType,
		ProcessedAt: now,
		ExpiresAt:   now.Add(s.ttlWindow).Unix(),
	}

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return false, fmt.Errorf("marshal record: %w", err)
	}

	input := &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
		// Only create when attribute_not_exists(event_id)
		ConditionExpression: awsString("attribute_not_exists(event_id)"),
	}

	_, err = s.client.PutItem(ctx, input)
	if err != nil {
		// detect conditional check failure -> duplicate
		var sc smithy.APIError
		if errors.As(err, &sc) && sc.ErrorCode() == "ConditionalCheckFailedException" {
			return false, nil
		}
		return false, fmt.Errorf("put item: %w", err)
	}

	return true, nil
}

// Helper
func awsString(s string) *string { return &s }
