package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/wshop/webshop-backend/internal/aws"
	"github.com/wshop/webshop-backend/internal/cart"
	"github.com/wshop/webshop-backend/internal/catalog"
	wsevents "github.com/wshop/webshop-backend/internal/events"
	"github.com/wshop/webshop-backend/internal/handlers"
)

func setupRouter(cfg handlers.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterCartRoutes(r, cfg)
	handlers.RegisterProductRoutes(r, cfg)

	return r
}

func main() {
	clients, err := aws.NewAWSClients(context.Background())

	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	publisher := aws.NewPublisher(clients.SQS, os.Getenv("CART_EVENTS_QUEUE_URL"))
	notifier := wsevents.NewSQSNotifier(publisher)

	cfg := handlers.Config{
		Cart:    cart.NewStore(notifier),
		Catalog: catalog.NewStore(clients.DynamoDB, os.Getenv("PRODUCTS_TABLE")),
	}

	r := setupRouter(cfg)

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		addr := ":8080"
		log.Printf("running local server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		// the adapter handles proxying; use adapter.ProxyWithContext for proper context propagation
		return adapter.ProxyWithContext(ctx, req)
	})
}
