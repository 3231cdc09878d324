package catalog

import (
	"sort"
	"strings"

	"github.com/bestshop/storefront-backend/pkg/enums"
	"github.com/bestshop/storefront-backend/pkg/pagination"
)

// Filters narrows the product list by exact attribute match. Empty strings
// mean "no constraint"; a nil OnSale means sale status is not constrained.
type Filters struct {
	Size     string
	Color    string
	Category string
	OnSale   *bool
}

// State is the full transient view state for one catalog request.
type State struct {
	Page       int
	Sort       enums.SortType
	SearchTerm string
	Filters    Filters
}

// Page is the computed slice of the catalog for one State.
type Page struct {
	Featured   []Product
	Items      []Product
	Page       int
	TotalPages int
	TotalItems int
	From       int
	To         int
	NotFound   bool
}

// BuildPage runs the catalog through the display pipeline. The step order is
// fixed: featured partition, name search, attribute filters, sort, slice.
// Featured products are pinned above the grid and never paginated.
//
// A state whose filters match nothing yields an empty page flagged NotFound
// rather than an error; a page number outside the valid range is rejected
// with pagination.ErrPageOutOfRange so callers leave their state unchanged.
func BuildPage(products []Product, featured enums.Block, state State, pageSize int) (Page, error) {
	pinned, rest := partitionFeatured(products, featured)
	matched := filterProducts(searchProducts(rest, state.SearchTerm), state.Filters)
	sortProducts(matched, state.Sort)

	pageSize = pagination.NormalizePageSize(pageSize)
	if len(matched) == 0 {
		return Page{
			Featured: pinned,
			Items:    []Product{},
			Page:     state.Page,
			NotFound: true,
		}, nil
	}

	params := pagination.Params{Page: state.Page, PageSize: pageSize}
	start, end, err := pagination.Bounds(len(matched), params)
	if err != nil {
		return Page{}, err
	}
	from, to := pagination.ResultsRange(len(matched), params)

	return Page{
		Featured:   pinned,
		Items:      matched[start:end],
		Page:       state.Page,
		TotalPages: pagination.TotalPages(len(matched), pageSize),
		TotalItems: len(matched),
		From:       from,
		To:         to,
	}, nil
}

func partitionFeatured(products []Product, featured enums.Block) (pinned, rest []Product) {
	pinned = make([]Product, 0)
	rest = make([]Product, 0, len(products))
	for _, p := range products {
		if featured != "" && p.InBlock(featured) {
			pinned = append(pinned, p)
			continue
		}
		rest = append(rest, p)
	}
	return pinned, rest
}

func searchProducts(products []Product, term string) []Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	return out
}

func filterProducts(products []Product, filters Filters) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if filters.Size != "" && p.Size != filters.Size {
			continue
		}
		if filters.Color != "" && p.Color != filters.Color {
			continue
		}
		if filters.Category != "" && p.Category != filters.Category {
			continue
		}
		if filters.OnSale != nil && p.SalesStatus != *filters.OnSale {
			continue
		}
		out = append(out, p)
	}
	return out
}

// sortProducts reorders in place. All comparators are stable so equal
// products keep their catalog order; SortDefault leaves the slice untouched.
func sortProducts(products []Product, sortType enums.SortType) {
	switch sortType {
	case enums.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case enums.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case enums.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	case enums.SortSale:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].SalesStatus && !products[j].SalesStatus
		})
	case enums.SortPopularity:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Popularity > products[j].Popularity
		})
	case enums.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
}
