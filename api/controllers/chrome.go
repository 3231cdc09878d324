package controllers

import (
	"net/http"

	"github.com/bestshop/storefront-backend/api/responses"
	"github.com/bestshop/storefront-backend/internal/chrome"
)

type chromeResponse struct {
	Nav    []chrome.NavLink `json:"nav"`
	Footer chrome.Footer    `json:"footer"`
}

// Chrome returns the shared header navigation, with the entry for the
// path query parameter marked active, plus the static footer content.
func Chrome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, chromeResponse{
			Nav:    chrome.Nav(r.URL.Query().Get("path")),
			Footer: chrome.SiteFooter(),
		})
	}
}
