package cart

import (
	"context"
	"io"
	"testing"

	"github.com/bestshop/storefront-backend/internal/catalog"
	"github.com/bestshop/storefront-backend/pkg/config"
	pkgerrors "github.com/bestshop/storefront-backend/pkg/errors"
	"github.com/bestshop/storefront-backend/pkg/logger"
)

type memoryRepo struct {
	carts   map[string][]Line
	deleted int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{carts: make(map[string][]Line)}
}

func (m *memoryRepo) Load(ctx context.Context, sessionID string) ([]Line, error) {
	return append([]Line(nil), m.carts[sessionID]...), nil
}

func (m *memoryRepo) Save(ctx context.Context, sessionID string, lines []Line) error {
	m.carts[sessionID] = append([]Line(nil), lines...)
	return nil
}

func (m *memoryRepo) Delete(ctx context.Context, sessionID string) error {
	delete(m.carts, sessionID)
	m.deleted++
	return nil
}

type stubCatalog struct {
	products map[string]catalog.Product
}

func (s *stubCatalog) Product(ctx context.Context, id string) (catalog.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return catalog.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func defaultCartConfig() config.CartConfig {
	return config.CartConfig{
		DiscountThreshold: 3000,
		DiscountRate:      0.1,
		ShippingCost:      30,
		MaxQuantity:       99,
	}
}

func newTestService(t *testing.T, repo Repository) *Service {
	t.Helper()
	loader := &stubCatalog{products: map[string]catalog.Product{
		"p-1": {ID: "p-1", Name: "Cabin Trolley", Price: 10, ImageURL: "/img/p-1.jpg"},
		"p-2": {ID: "p-2", Name: "Travel Set", Price: 1500},
	}}
	svc, err := NewService(ServiceParams{
		Repo:    repo,
		Catalog: loader,
		Config:  defaultCartConfig(),
		Logger:  logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestAddMergesRepeatedProduct(t *testing.T) {
	svc := newTestService(t, newMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Add(ctx, "sess", "p-1", 1); err != nil {
		t.Fatalf("first add: %v", err)
	}
	lines, err := svc.Add(ctx, "sess", "p-1", 2)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", lines[0].Quantity)
	}

	summary, err := svc.Summary(ctx, "sess")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Total.String() != "60" {
		t.Fatalf("expected total 60 (3 x 10 + shipping 30), got %s", summary.Total.String())
	}
	if summary.ItemCount != 3 {
		t.Fatalf("expected item count 3, got %d", summary.ItemCount)
	}
}

func TestAddUnknownProductRejected(t *testing.T) {
	svc := newTestService(t, newMemoryRepo())

	_, err := svc.Add(context.Background(), "sess", "missing", 1)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddDenormalizesProductSnapshot(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(t, repo)

	lines, err := svc.Add(context.Background(), "sess", "p-1", 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if lines[0].Name != "Cabin Trolley" || lines[0].Price != 10 || lines[0].ImageURL != "/img/p-1.jpg" {
		t.Fatalf("expected product copy in line, got %+v", lines[0])
	}
}

func TestAddAccumulatesPastRequestBound(t *testing.T) {
	svc := newTestService(t, newMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Add(ctx, "sess", "p-1", 60); err != nil {
		t.Fatalf("first add: %v", err)
	}
	lines, err := svc.Add(ctx, "sess", "p-1", 60)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if lines[0].Quantity != 120 {
		t.Fatalf("expected quantity 120 (sum of adds), got %d", lines[0].Quantity)
	}
}

func TestAddClampsSingleRequestQuantity(t *testing.T) {
	svc := newTestService(t, newMemoryRepo())

	lines, err := svc.Add(context.Background(), "sess", "p-1", 150)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if lines[0].Quantity != 99 {
		t.Fatalf("expected request quantity clamped to 99, got %d", lines[0].Quantity)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	svc := newTestService(t, newMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Add(ctx, "sess", "p-1", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	lines, err := svc.Remove(ctx, "sess", "p-1")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(lines))
	}

	lines, err = svc.Remove(ctx, "sess", "p-1")
	if err != nil {
		t.Fatalf("repeat remove: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart after repeat remove, got %d lines", len(lines))
	}
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	svc := newTestService(t, newMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Add(ctx, "sess", "p-1", 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	lines, err := svc.UpdateQuantity(ctx, "sess", "p-1", 0)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if lines[0].Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", lines[0].Quantity)
	}
}

func TestUpdateQuantityMissingLineIsNoop(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(t, repo)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "sess", "p-1", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	lines, err := svc.UpdateQuantity(ctx, "sess", "p-2", 7)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(lines) != 1 || lines[0].ID != "p-1" || lines[0].Quantity != 2 {
		t.Fatalf("expected cart untouched, got %+v", lines)
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	svc := newTestService(t, newMemoryRepo())

	_, err := svc.Checkout(context.Background(), "sess")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCheckoutFreezesSummaryAndClears(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(t, repo)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "sess", "p-2", 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	result, err := svc.Checkout(ctx, "sess")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if result.OrderRef == "" {
		t.Fatal("expected order reference")
	}
	// 3000 subtotal hits the discount threshold exactly.
	if result.Summary.Discount.String() != "300" {
		t.Fatalf("expected discount 300, got %s", result.Summary.Discount.String())
	}
	if result.Summary.Total.String() != "2730" {
		t.Fatalf("expected total 2730, got %s", result.Summary.Total.String())
	}
	if repo.deleted != 1 {
		t.Fatalf("expected cart cleared once, got %d", repo.deleted)
	}

	lines, err := svc.Get(ctx, "sess")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart after checkout, got %d lines", len(lines))
	}
}
