package deeppager

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/samber/lo"
)

// Request describes a single sequence computation. Zero values of the
// optional fields fall back to the defaults:
//   - Pad: nil → DefaultPad.
//   - Gap: "" → DefaultGap.
//   - JumpValues: nil → DefaultJumpValues().
type Request struct {
	// Current is the 1-based current page.
	Current int `json:"current"`
	// Max is the total number of pages.
	Max int `json:"max"`
	// Pad is the number of pages shown on each side of Current.
	Pad *int `json:"pad,omitempty"`
	// Gap is the symbol emitted in place of omitted pages.
	Gap string `json:"gap,omitempty"`
	// JumpValues are the anchor magnitudes, positive and strictly descending.
	JumpValues []int `json:"jumpValues,omitempty"`
}

// Result is the page sequence for a single page.
type Result struct {
	// Pages are the tokens to render, in order.
	Pages []PageToken `json:"pages"`
	// HasPrevious is true if the current page is not the first one.
	HasPrevious bool `json:"hasPrevious"`
	// HasNext is true if the current page is not the last one.
	HasNext bool `json:"hasNext"`
	// TotalPages equals the requested max.
	TotalPages int `json:"totalPages"`
	// CurrentPage equals the requested current page.
	CurrentPage int `json:"currentPage"`
}

// Numbers returns the page numbers of the sequence, skipping gaps.
func (r *Result) Numbers() []int {
	if r == nil {
		return nil
	}

	return lo.FilterMap(r.Pages, func(t PageToken, _ int) (int, bool) {
		return t.page, !t.IsGap()
	})
}

// Strings returns the textual form of every token.
func (r *Result) Strings() []string {
	if r == nil {
		return nil
	}

	return lo.Map(r.Pages, func(t PageToken, _ int) string {
		return t.String()
	})
}

// Build validates the request and computes its page sequence.
func Build(req Request) (*Result, error) {
	s := NewSequencer()
	if req.Pad != nil {
		s = s.WithPad(*req.Pad)
	}
	if req.Gap != "" {
		s = s.WithGap(req.Gap)
	}
	if req.JumpValues != nil {
		s = s.WithJumpValues(req.JumpValues)
	}

	return s.Build(req.Current, req.Max)
}

// Sequencer holds a reusable sequence configuration. Configure it with the
// With* methods once, then call Build for any number of pages.
type Sequencer struct {
	pad        int
	gap        string
	jumpValues []int
}

func NewSequencer() *Sequencer {
	return &Sequencer{
		pad:        DefaultPad,
		gap:        DefaultGap,
		jumpValues: DefaultJumpValues(),
	}
}

// WithPad sets the number of pages shown on each side of the current page.
func (s *Sequencer) WithPad(pad int) *Sequencer {
	if s == nil {
		s = NewSequencer()
	}

	s.pad = pad

	return s
}

// WithGap sets the gap symbol. An empty gap restores DefaultGap.
func (s *Sequencer) WithGap(gap string) *Sequencer {
	if s == nil {
		s = NewSequencer()
	}

	s.gap = lo.Ternary(gap == "", DefaultGap, gap)

	return s
}

// WithJumpValues sets the anchor magnitudes. The slice is copied.
//
// IMPORTANT:
// Values must be positive and strictly descending, otherwise Build fails
// with ErrInvalidJumpValues.
func (s *Sequencer) WithJumpValues(jumpValues []int) *Sequencer {
	if s == nil {
		s = NewSequencer()
	}

	s.jumpValues = slices.Clone(jumpValues)

	return s
}

// GetPad returns the configured pad.
func (s *Sequencer) GetPad() int {
	if s == nil {
		return DefaultPad
	}

	return s.pad
}

// Build computes the page sequence for the current page out of maxPage pages.
func (s *Sequencer) Build(current, maxPage int) (*Result, error) {
	if s == nil {
		s = NewSequencer()
	}

	err := validatePages(current, maxPage)
	if err != nil {
		return nil, err
	}

	err = s.validate()
	if err != nil {
		return nil, err
	}

	return &Result{
		Pages:       buildSequence(current, maxPage, s.pad, s.gap, s.jumpValues),
		HasPrevious: current > 1,
		HasNext:     current < maxPage,
		TotalPages:  maxPage,
		CurrentPage: current,
	}, nil
}

func validatePages(current, maxPage int) error {
	if current < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidCurrentPage, current)
	}

	if maxPage < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidMaxPages, maxPage)
	}

	if current > maxPage {
		return fmt.Errorf("%w: %d > %d", ErrCurrentExceedsMax, current, maxPage)
	}

	return nil
}

func (s *Sequencer) validate() error {
	if s.pad < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidPad, s.pad)
	}

	if err := validateJumpValues(s.jumpValues); err != nil {
		return err
	}

	return validateGap(s.gap)
}

// validateGap rejects gaps that read as a page number.
func validateGap(gap string) error {
	if _, err := strconv.Atoi(gap); err == nil {
		return fmt.Errorf("%w, got %q", ErrInvalidGap, gap)
	}

	return nil
}

func validateJumpValues(jumpValues []int) error {
	if len(jumpValues) == 0 {
		return fmt.Errorf("%w: must be a non-empty array", ErrInvalidJumpValues)
	}

	if lo.SomeBy(jumpValues, func(jump int) bool { return jump <= 0 }) {
		return fmt.Errorf("%w: must be positive integers", ErrInvalidJumpValues)
	}

	for i := 1; i < len(jumpValues); i++ {
		if jumpValues[i] >= jumpValues[i-1] {
			return fmt.Errorf("%w: must be in descending order", ErrInvalidJumpValues)
		}
	}

	return nil
}
