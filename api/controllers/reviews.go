package controllers

import (
	"net/http"

	"github.com/bestshop/storefront-backend/api/responses"
	"github.com/bestshop/storefront-backend/api/validators"
	"github.com/bestshop/storefront-backend/internal/catalog"
	"github.com/bestshop/storefront-backend/pkg/logger"
)

type reviewRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Text      string `json:"text" validate:"required,max=2000"`
}

// SubmitReview validates a product review. Reviews are acknowledged and
// dropped; nothing stores them.
func SubmitReview(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload reviewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, err := svc.Product(r.Context(), payload.ProductID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{
			"status":  "submitted",
			"message": "Review submitted!",
		})
	}
}
