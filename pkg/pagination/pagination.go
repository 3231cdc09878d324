package pagination

import "fmt"

const (
	// DefaultPageSize is the catalog grid page size.
	DefaultPageSize = 12
	// FirstPage is the lowest valid page number.
	FirstPage = 1
)

// Params holds numbered-page pagination inputs from controllers.
type Params struct {
	Page     int
	PageSize int
}

// ErrPageOutOfRange reports a page request outside [1, TotalPages].
// Out-of-range requests are rejected rather than clamped so the caller's
// current page stays untouched.
type ErrPageOutOfRange struct {
	Page       int
	TotalPages int
}

func (e *ErrPageOutOfRange) Error() string {
	return fmt.Sprintf("page %d out of range [1, %d]", e.Page, e.TotalPages)
}

// NormalizePageSize enforces the default page size for non-positive input.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	return size
}

// TotalPages returns how many pages the count fills at the given size.
// Zero items means zero pages.
func TotalPages(count, pageSize int) int {
	pageSize = NormalizePageSize(pageSize)
	return (count + pageSize - 1) / pageSize
}

// Bounds returns the half-open [start, end) slice bounds for a page,
// rejecting pages outside [1, TotalPages]. A request against an empty
// collection is always out of range.
func Bounds(count int, params Params) (start, end int, err error) {
	size := NormalizePageSize(params.PageSize)
	total := TotalPages(count, size)
	if params.Page < FirstPage || params.Page > total {
		return 0, 0, &ErrPageOutOfRange{Page: params.Page, TotalPages: total}
	}
	start = (params.Page - 1) * size
	end = start + size
	if end > count {
		end = count
	}
	return start, end, nil
}

// ResultsRange yields the 1-based "Showing X–Y of N" positions for a page.
func ResultsRange(count int, params Params) (first, last int) {
	size := NormalizePageSize(params.PageSize)
	if count == 0 {
		return 0, 0
	}
	first = (params.Page-1)*size + 1
	last = params.Page * size
	if last > count {
		last = count
	}
	return first, last
}
