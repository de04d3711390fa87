package deeppager

import "errors"

var (
	ErrInvalidCurrentPage = errors.New("current page must be a positive integer")
	ErrInvalidMaxPages    = errors.New("max pages must be a positive integer")
	ErrCurrentExceedsMax  = errors.New("current page cannot exceed max pages")
	ErrInvalidPad         = errors.New("pad must be a non-negative integer")
	ErrInvalidJumpValues  = errors.New("invalid jump values")
	ErrInvalidGap         = errors.New("gap must not be a page number")
)
