package cart

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/bestshop/storefront-backend/api/middleware"
	cartsvc "github.com/bestshop/storefront-backend/internal/cart"
	"github.com/bestshop/storefront-backend/internal/catalog"
	"github.com/bestshop/storefront-backend/pkg/config"
	pkgerrors "github.com/bestshop/storefront-backend/pkg/errors"
	"github.com/bestshop/storefront-backend/pkg/logger"
)

type memoryRepo struct {
	carts map[string][]cartsvc.Line
}

func (m *memoryRepo) Load(ctx context.Context, sessionID string) ([]cartsvc.Line, error) {
	return append([]cartsvc.Line(nil), m.carts[sessionID]...), nil
}

func (m *memoryRepo) Save(ctx context.Context, sessionID string, lines []cartsvc.Line) error {
	m.carts[sessionID] = append([]cartsvc.Line(nil), lines...)
	return nil
}

func (m *memoryRepo) Delete(ctx context.Context, sessionID string) error {
	delete(m.carts, sessionID)
	return nil
}

type stubCatalog struct{}

func (stubCatalog) Product(ctx context.Context, id string) (catalog.Product, error) {
	if id != "p-1" {
		return catalog.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return catalog.Product{ID: "p-1", Name: "Cabin Trolley", Price: 10}, nil
}

func newTestService(t *testing.T) *cartsvc.Service {
	t.Helper()
	svc, err := cartsvc.NewService(cartsvc.ServiceParams{
		Repo:    &memoryRepo{carts: make(map[string][]cartsvc.Line)},
		Catalog: stubCatalog{},
		Config: config.CartConfig{
			DiscountThreshold: 3000,
			DiscountRate:      0.1,
			ShippingCost:      30,
			MaxQuantity:       99,
		},
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func withSession(r *http.Request) *http.Request {
	return r.WithContext(middleware.WithSessionID(r.Context(), "sess-1"))
}

func decodeCartView(t *testing.T, body io.Reader) cartView {
	t.Helper()
	var envelope struct {
		Data cartView `json:"data"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestAddItemCreatesLineAndBadge(t *testing.T) {
	svc := newTestService(t)
	handler := AddItem(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":"p-1","quantity":2}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, withSession(req))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}

	view := decodeCartView(t, resp.Body)
	if len(view.Lines) != 1 || view.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected lines: %+v", view.Lines)
	}
	if view.BadgeCount != 2 || !view.BadgeVisible {
		t.Fatalf("unexpected badge: count=%d visible=%v", view.BadgeCount, view.BadgeVisible)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	handler := AddItem(newTestService(t), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":"missing"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, withSession(req))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestAddItemRequiresSession(t *testing.T) {
	handler := AddItem(newTestService(t), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":"p-1"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestUpdateItemSetsQuantity(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Add(context.Background(), "sess-1", "p-1", 1); err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	router := chi.NewRouter()
	router.Patch("/api/v1/cart/items/{productID}", UpdateItem(svc, nil))

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/p-1", strings.NewReader(`{"quantity":5}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, withSession(req))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	view := decodeCartView(t, resp.Body)
	if view.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", view.Lines[0].Quantity)
	}
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	svc := newTestService(t)

	router := chi.NewRouter()
	router.Delete("/api/v1/cart/items/{productID}", RemoveItem(svc, nil))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/p-9", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, withSession(req))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for absent line, got %d", resp.Code)
	}
	view := decodeCartView(t, resp.Body)
	if len(view.Lines) != 0 || view.BadgeVisible {
		t.Fatalf("expected empty cart view, got %+v", view)
	}
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	handler := Checkout(newTestService(t), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/checkout", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, withSession(req))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
