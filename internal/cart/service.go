package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bestshop/storefront-backend/internal/catalog"
	"github.com/bestshop/storefront-backend/pkg/config"
	pkgerrors "github.com/bestshop/storefront-backend/pkg/errors"
	"github.com/bestshop/storefront-backend/pkg/logger"
)

// productLoader resolves a catalog product by id.
type productLoader interface {
	Product(ctx context.Context, id string) (catalog.Product, error)
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Repo    Repository
	Catalog productLoader
	Config  config.CartConfig
	Logger  *logger.Logger
}

// Service orchestrates cart mutations for one session at a time.
type Service struct {
	repo    Repository
	catalog productLoader
	cfg     config.CartConfig
	logg    *logger.Logger
}

// NewService builds a cart service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	if params.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if params.Logger == nil {
		return nil, errors.New("logger is required")
	}
	return &Service{
		repo:    params.Repo,
		catalog: params.Catalog,
		cfg:     params.Config,
		logg:    params.Logger,
	}, nil
}

// Get returns the session's cart lines.
func (s *Service) Get(ctx context.Context, sessionID string) ([]Line, error) {
	return s.repo.Load(ctx, sessionID)
}

// Add puts quantity units of the product into the cart. A repeat add for the
// same product increments the existing line instead of appending a second
// one; the accumulated quantity is unbounded, only the single request's
// quantity input is clamped. The product is copied into the line as it
// exists right now.
func (s *Service) Add(ctx context.Context, sessionID, productID string, quantity int) ([]Line, error) {
	quantity = s.clampQuantity(quantity)

	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if i := findLine(lines, productID); i >= 0 {
		lines[i].Quantity += quantity
	} else {
		lines = append(lines, Line{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			ImageURL: product.ImageURL,
			Quantity: quantity,
		})
	}

	if err := s.repo.Save(ctx, sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Remove drops the product's line from the cart. Removing a product that is
// not in the cart is a no-op.
func (s *Service) Remove(ctx context.Context, sessionID, productID string) ([]Line, error) {
	lines, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := findLine(lines, productID)
	if i < 0 {
		return lines, nil
	}
	lines = append(lines[:i], lines[i+1:]...)

	if err := s.repo.Save(ctx, sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateQuantity sets the line's quantity to the clamped input value;
// removal happens only through Remove. Updating a product that is not in
// the cart leaves the cart untouched.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) ([]Line, error) {
	lines, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := findLine(lines, productID)
	if i < 0 {
		return lines, nil
	}
	lines[i].Quantity = s.clampQuantity(quantity)

	if err := s.repo.Save(ctx, sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Clear empties the session's cart.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}

// Summary computes the order summary for the session's current cart.
func (s *Service) Summary(ctx context.Context, sessionID string) (Summary, error) {
	lines, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(lines, s.cfg), nil
}

// CheckoutResult is the confirmation returned by a completed checkout.
type CheckoutResult struct {
	OrderRef string  `json:"orderRef"`
	Summary  Summary `json:"summary"`
}

// Checkout finalizes the cart: it rejects an empty cart, freezes the summary,
// and clears the session. No payment or fulfillment happens here.
func (s *Service) Checkout(ctx context.Context, sessionID string) (CheckoutResult, error) {
	lines, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if len(lines) == 0 {
		return CheckoutResult{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	summary := Summarize(lines, s.cfg)
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return CheckoutResult{}, err
	}

	result := CheckoutResult{OrderRef: uuid.NewString(), Summary: summary}
	s.logg.Info(s.logg.WithSessionID(ctx, sessionID), "checkout completed")
	return result, nil
}

// clampQuantity bounds a single request's quantity input to
// [1, MaxQuantity]. It never applies to an accumulated line quantity.
func (s *Service) clampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	if s.cfg.MaxQuantity > 0 && quantity > s.cfg.MaxQuantity {
		return s.cfg.MaxQuantity
	}
	return quantity
}
