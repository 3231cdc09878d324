package cart

// Line is one cart entry. Name, price, and image are a denormalized copy of
// the product at the time it was added; a later catalog change does not
// re-price lines already in the cart.
type Line struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Quantity int     `json:"quantity"`
}

// Count returns the total number of units across lines, the value shown on
// the cart badge.
func Count(lines []Line) int {
	total := 0
	for _, line := range lines {
		total += line.Quantity
	}
	return total
}

func findLine(lines []Line, productID string) int {
	for i, line := range lines {
		if line.ID == productID {
			return i
		}
	}
	return -1
}
