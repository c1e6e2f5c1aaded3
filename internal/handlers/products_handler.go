package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wshop/webshop-backend/internal/catalog"
	"github.com/wshop/webshop-backend/internal/money"
	"github.com/wshop/webshop-backend/internal/reviews"
)

// productView adds the display price strings the storefront binds to.
type productView struct {
	catalog.Product
	PriceText      string `json:"priceText"`
	ComparedAtText string `json:"comparedAtText,omitempty"`
}

func productViewOf(p catalog.Product) productView {
	v := productView{
		Product:   p,
		PriceText: money.Format(p.Price, p.Currency),
	}
	// strike-through price only shown when higher than the current price
	if p.ComparedAt > p.Price {
		v.ComparedAtText = money.Format(p.ComparedAt, p.Currency)
	}
	return v
}

// RegisterProductRoutes registers the catalog and reviews API.
func RegisterProductRoutes(r *gin.Engine, cfg Config) {
	r.GET("/products", func(c *gin.Context) {
		products, err := cfg.Catalog.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog_unavailable", "detail": err.Error()})
			return
		}
		views := make([]productView, 0, len(products))
		for _, p := range products {
			views = append(views, productViewOf(p))
		}
		c.JSON(http.StatusOK, gin.H{"items": views})
	})

	r.GET("/products/:id", func(c *gin.Context) {
		p, err := cfg.Catalog.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog_unavailable", "detail": err.Error()})
			return
		}
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		c.JSON(http.StatusOK, productViewOf(*p))
	})

	r.GET("/products/:id/reviews", func(c *gin.Context) {
		p, err := cfg.Catalog.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog_unavailable", "detail": err.Error()})
			return
		}
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": reviews.ForProduct(*p)})
	})
}
