package enums

// Block names a fixed promotional placement a product can be tagged with.
// The tags come straight from the catalog document's "blocks" array.
type Block string

const (
	BlockBestSets    Block = "Top Best Sets"
	BlockSelected    Block = "Selected Products"
	BlockNewArrivals Block = "New Products Arrival"
	BlockYouMayLike  Block = "You May Also Like"
)

// String implements fmt.Stringer.
func (b Block) String() string {
	return string(b)
}
