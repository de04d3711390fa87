package deeppager

const (
	MaxLimit     = 100
	DefaultLimit = 10
	FirstPage    = 1
)

// IsNormalizedLimitMax clamps a page size into [1, maxLimit]. Non-positive
// sizes fall back to DefaultLimit. The flag is false if the size was changed.
func IsNormalizedLimitMax(limit int, maxLimit int) (int, bool) {
	if limit <= 0 {
		return DefaultLimit, false
	} else if limit > maxLimit {
		return maxLimit, false
	}

	return limit, true
}

func NormalizeLimitMax(limit int, maxLimit int) int {
	ret, _ := IsNormalizedLimitMax(limit, maxLimit)
	return ret
}

func NormalizeLimit(limit int) int {
	return NormalizeLimitMax(limit, MaxLimit)
}

// NormalizePage maps non-positive page numbers to FirstPage.
func NormalizePage(page int) int {
	if page < FirstPage {
		return FirstPage
	}

	return page
}

// TotalPages returns the number of pages of size limit needed for total
// records. An empty dataset still has one (empty) page.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		limit = DefaultLimit
	}

	if total <= 0 {
		return FirstPage
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return int(pages)
}
