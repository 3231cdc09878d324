package controllers

import (
	"net/http"

	"github.com/bestshop/storefront-backend/api/responses"
	"github.com/bestshop/storefront-backend/internal/catalog"
	"github.com/bestshop/storefront-backend/pkg/enums"
	"github.com/bestshop/storefront-backend/pkg/logger"
)

// heroTaglines rotate across the landing slider cards.
var heroTaglines = []string{
	"Discover the perfect travel companion for your next adventure.",
	"Premium quality meets exceptional design in every detail.",
}

type homeResponse struct {
	SelectedProducts []catalog.Product `json:"selectedProducts"`
	NewArrivals      []catalog.Product `json:"newArrivals"`
	HeroTaglines     []string          `json:"heroTaglines"`
}

// Home returns the product blocks the landing page renders.
func Home(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		responses.WriteSuccess(w, homeResponse{
			SelectedProducts: svc.Block(ctx, enums.BlockSelected),
			NewArrivals:      svc.Block(ctx, enums.BlockNewArrivals),
			HeroTaglines:     heroTaglines,
		})
	}
}
