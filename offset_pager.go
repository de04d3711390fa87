package deeppager

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var _validate = validator.New()

// RawPageRequest is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPageRequest `json:",inline"`
//	}
type RawPageRequest struct {
	// Page - 1-based number of the requested page. Zero means the first page.
	Page int `json:"page" form:"page" validate:"gte=0"`
	// PageSize - maximum number of records per page. Zero means DefaultLimit.
	PageSize int `json:"pageSize" form:"pageSize" validate:"gte=0"`
}

// Decode converts RawPageRequest into *OffsetPager, normalizing PageSize.
// Returns *OffsetPager with WithSort applied.
func (p RawPageRequest) Decode(orderBy ...OrderBy) (*OffsetPager, error) {
	if err := _validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid page request: %w", err)
	}

	return NewOffsetPager(p.Page, p.PageSize).WithSubstitutedSort(orderBy...), nil
}

// OffsetPager pages a dataset with LIMIT/OFFSET and describes the requested
// page with a page sequence.
type OffsetPager struct {
	page         int
	limit        int
	sort         Orderings
	sequencer    *Sequencer
	backwardScan bool
}

func NewOffsetPager(page, limit int) *OffsetPager {
	return new(OffsetPager).WithPage(page).WithLimit(limit)
}

// WithPage sets the 1-based page number. See NormalizePage.
func (p *OffsetPager) WithPage(page int) *OffsetPager {
	if p == nil {
		p = new(OffsetPager)
	}

	p.page = NormalizePage(page)

	return p
}

// WithLimit sets the page size. NormalizeLimit is applied.
func (p *OffsetPager) WithLimit(limit int) *OffsetPager {
	if p == nil {
		p = new(OffsetPager)
	}

	p.limit = NormalizeLimit(limit)

	return p
}

// WithSequencer sets the configuration of page sequences built by Sequence.
func (p *OffsetPager) WithSequencer(sequencer *Sequencer) *OffsetPager {
	if p == nil {
		p = new(OffsetPager)
	}

	p.sequencer = sequencer

	return p
}

// WithBackwardScan lets FetchPage read pages lying closer to the end of the
// dataset in reversed order, so the OFFSET of the deepest pages stays small.
// Items are still returned in the requested order.
func (p *OffsetPager) WithBackwardScan() *OffsetPager {
	if p == nil {
		p = new(OffsetPager)
	}

	p.backwardScan = true

	return p
}

// WithSubstitutedSort resets previous orderings and applies the provided ones.
func (p *OffsetPager) WithSubstitutedSort(orderBy ...OrderBy) *OffsetPager {
	if p == nil {
		p = new(OffsetPager)
	}

	p.sort = nil

	return p.WithSort(orderBy...)
}

// WithSort appends sort orderings without overwriting existing ones. A column
// that is already sorted on is moved to the end with its new direction.
func (p *OffsetPager) WithSort(orderBy ...OrderBy) *OffsetPager {
	if p == nil {
		p = new(OffsetPager)
	}

	for _, o := range orderBy {
		p.sort = slices.DeleteFunc(p.sort, func(processed OrderBy) bool {
			return processed.Column == o.Column
		})
		p.sort = append(p.sort, o)
	}

	return p
}

// GetPage returns the 1-based page number, FirstPage for a nil pager.
func (p *OffsetPager) GetPage() int {
	if p == nil {
		return FirstPage
	}

	return NormalizePage(p.page)
}

// GetLimit returns the page size, DefaultLimit for a nil pager.
func (p *OffsetPager) GetLimit() int {
	if p == nil {
		return DefaultLimit
	}

	return NormalizeLimit(p.limit)
}

// GetOffset returns the number of records skipped before the page.
func (p *OffsetPager) GetOffset() int {
	return (p.GetPage() - 1) * p.GetLimit()
}

// GetSort returns orderings that will be applied to the dataset.
func (p *OffsetPager) GetSort() Orderings {
	if p == nil {
		return nil
	}

	return p.sort
}

// Paginate applies ordering, LIMIT and OFFSET to the dataset. Returns an error
// if pagination cannot be applied.
func (p *OffsetPager) Paginate(db *gorm.DB) (*gorm.DB, error) {
	if p == nil {
		return nil, fmt.Errorf("cannot paginate: offset pager is nil")
	}

	if err := p.sort.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	db = p.sort.Apply(db).Limit(p.GetLimit())
	if offset := p.GetOffset(); offset > 0 {
		db = db.Offset(offset)
	}

	return db, nil
}

// paginateBackward selects the page counting from the end of a dataset of
// total records, with every ordering reversed.
func (p *OffsetPager) paginateBackward(db *gorm.DB, total int64) (*gorm.DB, error) {
	if err := p.sort.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	start := p.GetOffset()
	end := min(start+p.GetLimit(), int(total))

	db = p.sort.Reverse().Apply(db).Limit(end - start)
	if offset := int(total) - end; offset > 0 {
		db = db.Offset(offset)
	}

	return db, nil
}

// scansBackward reports whether the page is cheaper to read from the end.
func (p *OffsetPager) scansBackward(total int64) bool {
	if p == nil || !p.backwardScan {
		return false
	}

	start := p.GetOffset()
	end := min(start+p.GetLimit(), int(total))

	return int(total)-end < start
}

// Count returns the total number of records in the dataset.
func (p *OffsetPager) Count(db *gorm.DB) (int64, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("cannot count dataset: %w", err)
	}

	return total, nil
}

// Sequence builds the page sequence of the pager's page for a dataset of
// total records. A page past the last one fails with ErrCurrentExceedsMax.
func (p *OffsetPager) Sequence(total int64) (*Result, error) {
	var sequencer *Sequencer
	if p != nil {
		sequencer = p.sequencer
	}

	return sequencer.Build(p.GetPage(), TotalPages(total, p.GetLimit()))
}

// Page is a single page of records along with its page sequence.
type Page[T any] struct {
	// Items result elements.
	Items []T `json:"items"`
	// Total number of elements.
	Total int64 `json:"total"`
	// Pagination describes the page within the dataset.
	Pagination *Result `json:"pagination"`
}

// FetchPage counts the dataset, loads the pager's page into a slice of T and
// builds its page sequence.
func FetchPage[T any](pager *OffsetPager, db *gorm.DB) (*Page[T], error) {
	// Count and Find must not share one statement.
	db = db.Session(&gorm.Session{})

	total, err := pager.Count(db)
	if err != nil {
		return nil, err
	}

	pagination, err := pager.Sequence(total)
	if err != nil {
		return nil, fmt.Errorf("cannot build page sequence: %w", err)
	}

	backward := pager.scansBackward(total)

	var query *gorm.DB
	if backward {
		query, err = pager.paginateBackward(db, total)
	} else {
		query, err = pager.Paginate(db)
	}
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, pager.GetLimit())
	if err = query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("cannot fetch page: %w", err)
	}

	if backward {
		slices.Reverse(items)
	}

	return &Page[T]{
		Items:      items,
		Total:      total,
		Pagination: pagination,
	}, nil
}
