package pagination

import (
	"fmt"
	"math"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest holds pagination parameters parsed from query strings. The
// fields are pointers so an explicit page=0 or limit=0 fails binding instead
// of silently falling back to the default.
type PageRequest struct {
	Page  *int `form:"page" binding:"omitempty,min=1"`
	Limit *int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Window returns the requested page window with defaults applied.
func (p PageRequest) Window() Window {
	w := Window{Page: DefaultPage, Limit: DefaultLimit}
	if p.Page != nil {
		w.Page = *p.Page
	}
	if p.Limit != nil {
		w.Limit = *p.Limit
	}
	return w
}

// Window is a resolved page number and page size.
type Window struct {
	Page  int
	Limit int
}

// Validate rejects windows that would produce a negative or overflowing
// offset, or a division by zero.
func (w Window) Validate() error {
	if w.Page < 1 {
		return fmt.Errorf("page must be a positive integer, got %d", w.Page)
	}
	if w.Limit < 1 || w.Limit > MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxLimit, w.Limit)
	}
	if w.Page-1 > math.MaxInt/w.Limit {
		return fmt.Errorf("page %d is too large for limit %d", w.Page, w.Limit)
	}
	return nil
}

// Offset returns the SQL OFFSET for the current page.
func (w Window) Offset() int {
	return (w.Page - 1) * w.Limit
}

// Meta is the pagination envelope returned next to a page of rows.
type Meta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
}

// NewMeta builds the envelope for a window and the filtered total.
func NewMeta(w Window, total int64) Meta {
	return Meta{
		CurrentPage: w.Page,
		PerPage:     w.Limit,
		Total:       total,
		TotalPages:  TotalPages(total, w.Limit),
	}
}

// TotalPages returns ceil(total/limit), or 0 when either is not positive.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Page wraps one window of rows with its envelope.
type Page[T any] struct {
	Items []T
	Meta  Meta
}

// NewPage creates a Page from the given rows and filtered total.
func NewPage[T any](items []T, w Window, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Meta: NewMeta(w, total)}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given window.
func Paginate(w Window) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(w.Offset()).Limit(w.Limit)
	}
}
