// Seeds the products table from a JSON file. Intended for demo/dev setup:
//
//	PRODUCTS_TABLE=webshop-products go run ./cmd/seed products.json
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/wshop/webshop-backend/internal/aws"
	"github.com/wshop/webshop-backend/internal/catalog"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <products.json>", os.Args[0])
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to read seed file: %v", err)
	}

	var products []catalog.Product
	if err := json.Unmarshal(data, &products); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	ctx := context.Background()
	clients, err := aws.NewAWSClients(ctx)
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	store := catalog.NewStore(clients.DynamoDB, os.Getenv("PRODUCTS_TABLE"))
	for _, p := range products {
		if err := store.Put(ctx, p); err != nil {
			log.Fatalf("failed to seed product %s: %v", p.ID, err)
		}
		log.Printf("seeded product %s (%s)", p.ID, p.Name)
	}
	log.Printf("seeded %d products", len(products))
}
