package deeppager

import (
	"slices"

	"github.com/samber/lo"
)

// position tells addPage on which side of the current page a page lies.
type position int

const (
	positionLeft  position = -1
	positionNone  position = 0
	positionRight position = 1
)

// tSequence is the working sequence of a single build.
type tSequence struct {
	current    int
	maxPage    int
	pad        int
	gap        string
	jumpValues []int
	minComplex int

	tokens []PageToken
}

// buildSequence produces the page tokens for already validated input.
func buildSequence(current, maxPage, pad int, gap string, jumpValues []int) []PageToken {
	if isSimple(maxPage, pad) {
		return lo.Map(lo.RangeFrom(1, maxPage), func(page int, _ int) PageToken {
			return pageToken(page)
		})
	}

	s := &tSequence{
		current:    current,
		maxPage:    maxPage,
		pad:        pad,
		gap:        gap,
		jumpValues: jumpValues,
		minComplex: MinPagesForComplex(pad),
	}
	s.tokens = make([]PageToken, 0, s.minComplex)

	windowStart := current - min(pad, current-1)
	windowEnd := current + min(pad, maxPage-current)

	s.addPage(1, positionNone)
	if windowStart > 2 {
		s.addLowerAnchors(windowStart)
	}

	// Counting by offset keeps the loop finite when windowEnd is math.MaxInt.
	for i := 0; i <= windowEnd-windowStart; i++ {
		s.addPage(windowStart+i, s.side(windowStart+i))
	}

	if windowEnd < maxPage {
		s.addUpperAnchors(windowEnd)
	}
	s.addPage(maxPage, positionNone)

	return s.tokens
}

// isSimple reports whether maxPage < MinPagesForComplex(pad) without
// computing the threshold, which overflows for huge pads.
func isSimple(maxPage, pad int) bool {
	return maxPage < 7 || pad > (maxPage-7)/4
}

func (s *tSequence) side(page int) position {
	switch {
	case page < s.current:
		return positionLeft
	case page > s.current:
		return positionRight
	default:
		return positionNone
	}
}

// addLowerAnchors fills the region between page 1 and the near-current window
// with a descending chain of up to pad+1 anchors, then closes it with a gap.
func (s *tSequence) addLowerAnchors(windowStart int) {
	anchors := make([]int, 0, min(s.pad+1, windowStart))

	value := windowStart - 1
	for i := 0; i <= s.pad && value > 1; i++ {
		value = lowerAnchor(1, value, i, s.pad, s.jumpValues)
		anchors = append(anchors, value)
	}

	anchors = lo.Filter(lo.Uniq(anchors), func(anchor int, _ int) bool {
		return anchor > 1
	})
	slices.Sort(anchors)

	for _, anchor := range anchors {
		s.addPage(anchor, positionLeft)
	}

	if s.lastPage() < windowStart-1 {
		s.addGap()
	}
}

// addUpperAnchors fills the region between the near-current window and the
// last page while the length budget allows it.
func (s *tSequence) addUpperAnchors(windowEnd int) {
	page := windowEnd + 1
	if page >= s.maxPage {
		return
	}

	if page != s.maxPage-1 {
		s.addGap()
	}

	for len(s.tokens) < s.minComplex-1 {
		from := page
		if last := s.tokens[len(s.tokens)-1]; !last.IsGap() {
			from = last.page
		}

		anchor := upperAnchor(from, s.maxPage, s.minComplex-len(s.tokens)-2, s.jumpValues)
		if anchor >= s.maxPage {
			break
		}

		s.addPage(anchor, positionRight)
	}
}

// addPage appends a page to the sequence.
//
// A trailing [p-2, gap] collapses into [p-2, p-1, p] since a gap never hides a
// single page. Unless the page lies right of the current one, the gap is then
// re-opened at the nearest remaining discontinuity, so the left side keeps its
// separator.
func (s *tSequence) addPage(page int, pos position) {
	n := len(s.tokens)

	switch {
	case n >= 2 && s.tokens[n-1].IsGap() && !s.tokens[n-2].IsGap() && s.tokens[n-2].page == page-2:
		s.tokens[n-1] = pageToken(page - 1)
		s.tokens = append(s.tokens, pageToken(page))

		if pos <= positionNone {
			s.reopenGap(n - 2)
		}
	case n == 0 || s.tokens[n-1].IsGap() || s.tokens[n-1].page != page:
		s.tokens = append(s.tokens, pageToken(page))
	}

	// [1, gap, 3] is always rendered as [1, 2, 3].
	if len(s.tokens) > 2 && s.tokens[1].IsGap() && s.tokens[2].page == 3 {
		s.tokens[1] = pageToken(2)
	}
}

// reopenGap scans backward from the token at index from and inserts a gap into
// the nearest jump of at least three pages.
func (s *tSequence) reopenGap(from int) {
	for i := from; i > 0; i-- {
		prev, cur := s.tokens[i-1], s.tokens[i]
		if prev.IsGap() || cur.IsGap() {
			return
		}

		if cur.page-prev.page >= 3 {
			s.tokens = slices.Insert(s.tokens, i, gapToken(s.gap))
			return
		}
	}
}

func (s *tSequence) addGap() {
	s.tokens = append(s.tokens, gapToken(s.gap))
}

// lastPage returns the last numeric page of the sequence.
func (s *tSequence) lastPage() int {
	for i := len(s.tokens) - 1; i >= 0; i-- {
		if !s.tokens[i].IsGap() {
			return s.tokens[i].page
		}
	}

	return 0
}
