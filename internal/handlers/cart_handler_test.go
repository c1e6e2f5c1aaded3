package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/wshop/webshop-backend/internal/cart"
)

func newTestRouter() (*gin.Engine, *cart.Store) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cart.NewStore(nil)
	RegisterCartRoutes(r, Config{Cart: store})
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, cartView) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var view cartView
	// checkout wraps the view; plain endpoints return it directly
	_ = json.Unmarshal(w.Body.Bytes(), &view)
	return w, view
}

func TestCartAPI_AddAndGet(t *testing.T) {
	r, _ := newTestRouter()

	w, view := doJSON(t, r, http.MethodPost, "/cart/items",
		`{"product":{"id":"p-1","name":"Oak Chair","price":129,"currency":"USD"},"quantity":2}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if view.Totals.Quantity != 2 || view.Totals.Amount != 258 {
		t.Fatalf("unexpected totals: %+v", view.Totals)
	}
	if view.AmountText != "258.00 USD" {
		t.Fatalf("unexpected amount text: %q", view.AmountText)
	}
	if len(view.Items) != 1 || view.Items[0].LineTotalText != "258.00 USD" {
		t.Fatalf("unexpected items: %+v", view.Items)
	}

	w, view = doJSON(t, r, http.MethodGet, "/cart", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if view.Totals.Quantity != 2 {
		t.Fatalf("get did not observe the add: %+v", view.Totals)
	}
}

func TestCartAPI_AddRejectsMissingID(t *testing.T) {
	r, store := newTestRouter()

	w, _ := doJSON(t, r, http.MethodPost, "/cart/items",
		`{"product":{"name":"nameless","price":10}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing id, got %d", w.Code)
	}
	if got := store.Get(); len(got.Items) != 0 {
		t.Fatalf("rejected add changed state: %+v", got)
	}
}

func TestCartAPI_QuantityRemoveClear(t *testing.T) {
	r, _ := newTestRouter()

	doJSON(t, r, http.MethodPost, "/cart/items", `{"product":{"id":"A","price":10},"quantity":3}`)

	w, view := doJSON(t, r, http.MethodPost, "/cart/items/A/quantity", `{"delta":-1000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if view.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity floored at 1, got %d", view.Items[0].Quantity)
	}

	// unknown id is a no-op, not an error
	w, _ = doJSON(t, r, http.MethodPost, "/cart/items/missing/quantity", `{"delta":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for unknown id, got %d", w.Code)
	}

	w, view = doJSON(t, r, http.MethodDelete, "/cart/items/A", "")
	if w.Code != http.StatusOK || len(view.Items) != 0 {
		t.Fatalf("remove failed: code=%d items=%+v", w.Code, view.Items)
	}

	doJSON(t, r, http.MethodPost, "/cart/items", `{"product":{"id":"B","price":5}}`)
	w, view = doJSON(t, r, http.MethodDelete, "/cart", "")
	if w.Code != http.StatusOK || view.Totals.Quantity != 0 {
		t.Fatalf("clear failed: code=%d totals=%+v", w.Code, view.Totals)
	}
}

func TestCartAPI_Checkout(t *testing.T) {
	r, store := newTestRouter()

	doJSON(t, r, http.MethodPost, "/cart/items", `{"product":{"id":"A","price":10},"quantity":2}`)

	req := httptest.NewRequest(http.MethodPost, "/cart/checkout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Order cartView `json:"order"`
		Cart  cartView `json:"cart"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal checkout response: %v", err)
	}
	if resp.Order.Totals.Amount != 20 {
		t.Fatalf("checkout order snapshot mismatch: %+v", resp.Order.Totals)
	}
	if resp.Cart.Totals.Quantity != 0 || len(resp.Cart.Items) != 0 {
		t.Fatalf("cart not reset after checkout: %+v", resp.Cart)
	}
	if got := store.Get(); got.Totals.Quantity != 0 {
		t.Fatalf("store not reset after checkout: %+v", got.Totals)
	}
}
