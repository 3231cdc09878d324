package cart

import (
	cartsvc "github.com/bestshop/storefront-backend/internal/cart"
)

// cartView is the cart payload every cart endpoint returns: the lines, the
// order summary, and the badge state the header renders from.
type cartView struct {
	Lines        []cartsvc.Line  `json:"lines"`
	Summary      cartsvc.Summary `json:"summary"`
	BadgeCount   int             `json:"badgeCount"`
	BadgeVisible bool            `json:"badgeVisible"`
}

func newCartView(lines []cartsvc.Line, summary cartsvc.Summary) cartView {
	if lines == nil {
		lines = []cartsvc.Line{}
	}
	count := cartsvc.Count(lines)
	return cartView{
		Lines:        lines,
		Summary:      summary,
		BadgeCount:   count,
		BadgeVisible: count > 0,
	}
}
