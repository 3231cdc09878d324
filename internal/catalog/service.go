package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bestshop/storefront-backend/pkg/enums"
	pkgerrors "github.com/bestshop/storefront-backend/pkg/errors"
	"github.com/bestshop/storefront-backend/pkg/logger"
)

// Fetcher loads the full product list from the upstream feed.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Product, error)
}

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Fetcher  Fetcher
	Logger   *logger.Logger
	CacheTTL time.Duration
}

// Service holds the most recent catalog snapshot and refreshes it when the
// snapshot is older than the configured TTL. A failed refresh keeps serving
// the previous snapshot; with no snapshot at all it degrades to an empty
// list and logs the failure.
type Service struct {
	fetcher  Fetcher
	logg     *logger.Logger
	cacheTTL time.Duration

	mu        sync.RWMutex
	snapshot  []Product
	fetchedAt time.Time
}

// NewService builds a catalog service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Fetcher == nil {
		return nil, errors.New("fetcher is required")
	}
	if params.Logger == nil {
		return nil, errors.New("logger is required")
	}
	ttl := params.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Service{fetcher: params.Fetcher, logg: params.Logger, cacheTTL: ttl}, nil
}

// Products returns the current catalog snapshot, refreshing it if stale.
// Fetch failures degrade to the last known snapshot rather than erroring.
func (s *Service) Products(ctx context.Context) []Product {
	s.mu.RLock()
	snapshot, fresh := s.snapshot, time.Since(s.fetchedAt) < s.cacheTTL
	s.mu.RUnlock()
	if fresh {
		return snapshot
	}

	fetched, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.logg.Error(ctx, "refresh catalog snapshot", err)
		return snapshot
	}

	s.mu.Lock()
	// Another refresh may have landed while we were fetching.
	if time.Since(s.fetchedAt) >= s.cacheTTL {
		s.snapshot = fetched
		s.fetchedAt = time.Now()
	}
	snapshot = s.snapshot
	s.mu.Unlock()
	return snapshot
}

// Product returns the catalog entry with the given id. A missing or
// unknown id is the same not-found state.
func (s *Service) Product(ctx context.Context, id string) (Product, error) {
	if id == "" {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	product, ok := FindByID(s.Products(ctx), id)
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

// Block returns the snapshot entries tagged for the named placement block.
func (s *Service) Block(ctx context.Context, block enums.Block) []Product {
	return ByBlock(s.Products(ctx), block)
}

// Ready forces a feed round-trip and reports whether the upstream answered.
func (s *Service) Ready(ctx context.Context) error {
	if _, err := s.fetcher.Fetch(ctx); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "catalog feed unavailable")
	}
	return nil
}
