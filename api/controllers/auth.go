package controllers

import (
	"net/http"

	"github.com/bestshop/storefront-backend/api/responses"
	"github.com/bestshop/storefront-backend/api/validators"
	"github.com/bestshop/storefront-backend/pkg/logger"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Login validates the login form fields. There is no account backend; a
// well-formed submission is simply accepted.
func Login(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "accepted"})
	}
}
