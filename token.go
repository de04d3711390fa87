package deeppager

import (
	"encoding/json"
	"strconv"
)

// PageToken is a single element of a page sequence: either a page number or
// the gap symbol standing for omitted pages.
type PageToken struct {
	// page is 0 for gaps.
	page int
	gap  string
}

func pageToken(page int) PageToken {
	return PageToken{page: page}
}

func gapToken(gap string) PageToken {
	return PageToken{gap: gap}
}

// IsGap reports whether the token stands for omitted pages.
func (t PageToken) IsGap() bool {
	return t.page == 0
}

// Page returns the page number, or 0 for a gap.
func (t PageToken) Page() int {
	return t.page
}

// String - implements fmt.Stringer. Returns the page number or the gap symbol.
func (t PageToken) String() string {
	if t.IsGap() {
		return t.gap
	}

	return strconv.Itoa(t.page)
}

// MarshalJSON encodes pages as numbers and gaps as strings:
//
//	[1, 5, "…", 48, 49, 50]
func (t PageToken) MarshalJSON() ([]byte, error) {
	if t.IsGap() {
		return json.Marshal(t.gap)
	}

	return strconv.AppendInt(nil, int64(t.page), 10), nil
}

var _ json.Marshaler = PageToken{}
