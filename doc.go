// Package deeppager builds compact page sequences for pagination controls
// over very large page ranges.
//
// Overview
//
// A sequence always starts with page 1 and ends with the last page. Around the
// current page a window of Pad pages is shown on each side. Between the
// boundaries and the window the builder places "jump" anchors aligned to round
// magnitudes (1, 5, 15, 25 ... 50000, 100000), so both readers and crawlers can
// reach any page of a multi-million page range in a few hops:
//
//	1 5 15 25 … 48 49 50 51 52 … 60 65 66 100
//
// Small ranges (fewer than 7+4*Pad pages) are rendered in full.
//
// Key concepts
//   - Build / Sequencer: validates input and builds a Result for a page.
//   - PageToken: a page number or the gap symbol.
//   - OffsetPager: LIMIT/OFFSET pagination for GORM queries that also returns
//     the page sequence for the requested page.
//
// See README for examples and usage details.
package deeppager
