package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wshop/webshop-backend/internal/cart"
	"github.com/wshop/webshop-backend/internal/catalog"
	"github.com/wshop/webshop-backend/internal/money"
	"github.com/wshop/webshop-backend/internal/validation"
)

// Config groups dependencies for the storefront handlers.
type Config struct {
	Cart    *cart.Store
	Catalog *catalog.Store
}

// lineItemView is a cart line enriched with display strings. Formatted
// text exists only in responses; the engine keeps raw numbers.
type lineItemView struct {
	cart.LineItem
	UnitPriceText string `json:"unitPriceText"`
	LineTotalText string `json:"lineTotalText"`
}

type cartView struct {
	Items      []lineItemView `json:"items"`
	Totals     cart.Totals    `json:"totals"`
	AmountText string         `json:"amountText"`
}

func viewOf(c cart.Cart) cartView {
	items := make([]lineItemView, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, lineItemView{
			LineItem:      it,
			UnitPriceText: money.Format(it.UnitPrice, it.Currency),
			LineTotalText: money.Format(it.LineTotal, it.Currency),
		})
	}
	return cartView{
		Items:      items,
		Totals:     c.Totals,
		AmountText: money.Format(c.Totals.Amount, c.Totals.Currency),
	}
}

// RegisterCartRoutes registers the cart API.
func RegisterCartRoutes(r *gin.Engine, cfg Config) {
	v := validation.New()
	store := cfg.Cart

	r.GET("/cart", func(c *gin.Context) {
		c.JSON(http.StatusOK, viewOf(store.Get()))
	})

	r.POST("/cart/items", func(c *gin.Context) {
		var req validation.AddItemRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		product := catalog.Product{
			ID:       req.Product.ID,
			Name:     req.Product.Name,
			Subtitle: req.Product.Subtitle,
			ImageURL: req.Product.ImageURL,
			Price:    req.Product.Price,
			Currency: req.Product.Currency,
		}
		if !store.Add(product, req.Quantity) {
			// validation requires an id, so this is belt-and-braces
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_product"})
			return
		}
		c.JSON(http.StatusCreated, viewOf(store.Get()))
	})

	r.POST("/cart/items/:id/quantity", func(c *gin.Context) {
		var req validation.UpdateQuantityRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		// unknown ids are a no-op by engine contract: the likely cause is a
		// stale UI snapshot racing a removal, so the response is still 200
		store.UpdateQuantity(c.Param("id"), req.Delta)
		c.JSON(http.StatusOK, viewOf(store.Get()))
	})

	r.DELETE("/cart/items/:id", func(c *gin.Context) {
		store.Remove(c.Param("id"))
		c.JSON(http.StatusOK, viewOf(store.Get()))
	})

	r.DELETE("/cart", func(c *gin.Context) {
		store.Clear()
		c.JSON(http.StatusOK, viewOf(store.Get()))
	})

	r.POST("/cart/checkout", func(c *gin.Context) {
		order := store.Checkout()
		c.JSON(http.StatusOK, gin.H{
			"order": viewOf(order),
			"cart":  viewOf(store.Get()),
		})
	})
}
