package enums

// NoticeKind classifies the user-facing signals page payloads can carry.
// "not_found" is the catalog's empty-result signal and is distinct from
// the cart's empty state, which is plain data (zero lines).
type NoticeKind string

const (
	NoticeInfo     NoticeKind = "info"
	NoticeError    NoticeKind = "error"
	NoticeNotFound NoticeKind = "not_found"
)

// String implements fmt.Stringer.
func (n NoticeKind) String() string {
	return string(n)
}
