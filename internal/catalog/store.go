package catalog

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/wshop/webshop-backend/internal/aws"
)

// Store encapsulates operations on the products table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
}

// NewStore creates a new catalog Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
	}
}

// Get fetches a product by id. Returns (nil, nil) if not found. The product
// is normalized before being returned, so callers always see defaulted
// currency and non-negative prices.
func (s *Store) Get(ctx context.Context, productID string) (*Product, error) {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: productID},
	}
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var p Product
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	p = Normalize(p)
	return &p, nil
}

// List returns every product in the table, normalized. The catalog is
// expected to stay small (a demo storefront); a paginated Scan is enough.
func (s *Store) List(ctx context.Context) ([]Product, error) {
	var products []Product
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan products: %w", err)
		}
		for _, item := range out.Items {
			var p Product
			if err := attributevalue.UnmarshalMap(item, &p); err != nil {
				return nil, fmt.Errorf("unmarshal product: %w", err)
			}
			products = append(products, Normalize(p))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return products, nil
}

// Put writes a product, overwriting any existing item with the same id.
// Used by cmd/seed; the storefront itself only reads.
func (s *Store) Put(ctx context.Context, p Product) error {
	if p.ID == "" {
		return fmt.Errorf("product id is required")
	}
	item, err := attributevalue.MarshalMap(Normalize(p))
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}
