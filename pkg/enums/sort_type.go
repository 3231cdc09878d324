package enums

import "fmt"

// SortType represents the catalog sort orders offered by the sort dropdown.
type SortType string

const (
	SortDefault    SortType = "default"
	SortPriceAsc   SortType = "price-asc"
	SortPriceDesc  SortType = "price-desc"
	SortNewest     SortType = "newest"
	SortSale       SortType = "sale"
	SortPopularity SortType = "popularity"
	SortRating     SortType = "rating"
)

var validSortTypes = []SortType{
	SortDefault,
	SortPriceAsc,
	SortPriceDesc,
	SortNewest,
	SortSale,
	SortPopularity,
	SortRating,
}

// String implements fmt.Stringer.
func (s SortType) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortType.
func (s SortType) IsValid() bool {
	for _, candidate := range validSortTypes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortType converts raw input into a SortType. Empty input maps to
// the default order, unknown input is an error.
func ParseSortType(value string) (SortType, error) {
	if value == "" {
		return SortDefault, nil
	}
	for _, candidate := range validSortTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort type %q", value)
}
