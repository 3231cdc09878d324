package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bestshop/storefront-backend/api/responses"
	"github.com/bestshop/storefront-backend/api/validators"
	"github.com/bestshop/storefront-backend/internal/catalog"
	"github.com/bestshop/storefront-backend/pkg/enums"
	pkgerrors "github.com/bestshop/storefront-backend/pkg/errors"
	"github.com/bestshop/storefront-backend/pkg/logger"
	"github.com/bestshop/storefront-backend/pkg/pagination"
)

const maxCatalogPage = 10000

type catalogPageResponse struct {
	Featured    []catalog.Product `json:"featured"`
	Items       []catalog.Product `json:"items"`
	Page        int               `json:"page"`
	TotalPages  int               `json:"totalPages"`
	TotalItems  int               `json:"totalItems"`
	ResultsText string            `json:"resultsText"`
	Notice      string            `json:"notice,omitempty"`
}

// CatalogPage applies the search, filter, sort, and page parameters to the
// catalog and returns the resulting grid page plus the pinned featured set.
func CatalogPage(svc *catalog.Service, logg *logger.Logger, pageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := validators.ParseQueryInt(r, "page", 1, 1, maxCatalogPage)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		sortType, err := validators.ParseQuerySort(r, "sort")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		onSale, err := validators.ParseQueryBool(r, "on_sale")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		query := r.URL.Query()
		state := catalog.State{
			Page:       page,
			Sort:       sortType,
			SearchTerm: validators.SanitizeString(query.Get("q"), 200),
			Filters: catalog.Filters{
				Size:     validators.SanitizeString(query.Get("size"), 50),
				Color:    validators.SanitizeString(query.Get("color"), 50),
				Category: validators.SanitizeString(query.Get("category"), 50),
				OnSale:   onSale,
			},
		}

		result, err := catalog.BuildPage(svc.Products(r.Context()), enums.BlockBestSets, state, pageSize)
		if err != nil {
			var oor *pagination.ErrPageOutOfRange
			if errors.As(err, &oor) {
				err = pkgerrors.Wrap(pkgerrors.CodeValidation, err, "page out of range")
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp := catalogPageResponse{
			Featured:   result.Featured,
			Items:      result.Items,
			Page:       result.Page,
			TotalPages: result.TotalPages,
			TotalItems: result.TotalItems,
		}
		if result.NotFound {
			resp.Notice = string(enums.NoticeNotFound)
			resp.ResultsText = "No products found"
		} else {
			resp.ResultsText = fmt.Sprintf("Showing %d-%d of %d Results", result.From, result.To, result.TotalItems)
		}

		responses.WriteSuccess(w, resp)
	}
}
