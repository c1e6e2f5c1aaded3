package catalog

import (
	"context"
	"errors"
	"sync"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// productMock is a minimal in-memory stand-in for PutItem/GetItem/Scan used
// in unit tests. Not production-grade.
type productMock struct {
	mu    sync.Mutex
	table map[string]map[string]types.AttributeValue
}

func newProductMock() *productMock {
	return &productMock{
		table: map[string]map[string]types.AttributeValue{},
	}
}

func (m *productMock) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if params.Item == nil {
		return nil, errors.New("nil item")
	}
	keyAttr, ok := params.Item["id"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("missing id attribute")
	}
	m.table[keyAttr.Value] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *productMock) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keyAttr, ok := params.Key["id"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("missing id key")
	}
	item, found := m.table[keyAttr.Value]
	if !found {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (m *productMock) Scan(ctx context.Context, params *dyn.ScanInput, optFns ...func(*dyn.Options)) (*dyn.ScanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := &dyn.ScanOutput{}
	for _, item := range m.table {
		out.Items = append(out.Items, item)
	}
	return out, nil
}
