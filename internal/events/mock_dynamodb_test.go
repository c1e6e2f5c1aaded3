package events

import (
	"context"
	"errors"
	"sync"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dedupMock is a very small in-memory mock for the dedup table used in unit
// tests. It implements the conditional put the store relies on and nothing
// more.
type dedupMock struct {
	mu       sync.Mutex
	table    map[string]map[string]types.AttributeValue
	putCalls int
}

func newDedupMock() *dedupMock {
	return &dedupMock{
		table: map[string]map[string]types.AttributeValue{},
	}
}

func (m *dedupMock) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putCalls++
	if params.Item == nil {
		return nil, errors.New("nil item")
	}
	keyAttr, ok := params.Item["event_id"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("missing event_id")
	}
	if params.ConditionExpression != nil && *params.ConditionExpression == "attribute_not_exists(event_id)" {
		if _, exists := m.table[keyAttr.Value]; exists {
			// simulate conditional failure
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	m.table[keyAttr.Value] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *dedupMock) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keyAttr, ok := params.Key["event_id"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("missing event_id key")
	}
	item, found := m.table[keyAttr.Value]
	if !found {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (m *dedupMock) Scan(ctx context.Context, params *dyn.ScanInput, optFns ...func(*dyn.Options)) (*dyn.ScanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := &dyn.ScanOutput{}
	for _, item := range m.table {
		out.Items = append(out.Items, item)
	}
	return out, nil
}
