package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bestshop/storefront-backend/pkg/logger"
)

const (
	sessionHeader = "X-Session-Id"
	sessionCookie = "bs_session"
)

// Session resolves the storefront session owning the cart. The id comes from
// the X-Session-Id header or the session cookie; a first-time visitor gets a
// fresh id minted and set on both. The id is opaque and carries no identity.
func Session(logg *logger.Logger, cookieTTL time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(sessionHeader)
			if sessionID == "" {
				if cookie, err := r.Cookie(sessionCookie); err == nil {
					sessionID = cookie.Value
				}
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookie,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(cookieTTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set(sessionHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
