package controllers

import (
	"net/http"

	"github.com/bestshop/storefront-backend/api/responses"
	"github.com/bestshop/storefront-backend/internal/catalog"
	"github.com/bestshop/storefront-backend/pkg/enums"
	"github.com/bestshop/storefront-backend/pkg/logger"
)

type productDetailResponse struct {
	Product catalog.Product   `json:"product"`
	Related []catalog.Product `json:"related"`
}

// ProductDetail resolves the product named by the id query parameter, the
// same contract the detail page uses. A missing or unknown id is a
// not-found state.
func ProductDetail(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		product, err := svc.Product(ctx, r.URL.Query().Get("id"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		related := make([]catalog.Product, 0)
		for _, p := range svc.Block(ctx, enums.BlockYouMayLike) {
			if p.ID != product.ID {
				related = append(related, p)
			}
		}

		responses.WriteSuccess(w, productDetailResponse{Product: product, Related: related})
	}
}
