// Package paginate slices an ordered list into pages and tracks the page cursor.
package paginate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPageSize is returned by ParsePageSize for anything but "all" or a positive integer.
var ErrInvalidPageSize = errors.New("invalid page size")

// PageSize is either All or a positive item count.
type PageSize int

// All shows every item on a single page.
const All PageSize = 0

// Presets are the page sizes offered by the selectors, in cycling order.
var Presets = []PageSize{All, 5, 10, 20, 50}

// ParsePageSize parses "all" (any case) or a positive integer.
func ParsePageSize(s string) (PageSize, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return All, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return All, fmt.Errorf("%w: %q (expected \"all\" or a positive number)", ErrInvalidPageSize, s)
	}
	return PageSize(n), nil
}

// IsAll returns true if the size shows everything on one page.
func (s PageSize) IsAll() bool {
	return s <= 0
}

func (s PageSize) String() string {
	if s.IsAll() {
		return "all"
	}
	return strconv.Itoa(int(s))
}

// NextPreset returns the preset following s, wrapping around.
// Sizes that are not presets move to the first preset.
func NextPreset(s PageSize) PageSize {
	for i, p := range Presets {
		if p == s {
			return Presets[(i+1)%len(Presets)]
		}
	}
	return Presets[0]
}

// TotalPages returns the page count for total items, never less than 1.
func TotalPages(total int, size PageSize) int {
	if size.IsAll() || total <= 0 {
		return 1
	}
	n := int(size)
	return (total + n - 1) / n
}

// Page is one visible slice of a list.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	Total      int
	// Start and End are the half-open bounds of Items within the full list.
	Start int
	End   int
}

// Slice returns page number page of items. Pages are 1-based; out-of-range
// numbers are clamped into [1, TotalPages].
func Slice[T any](items []T, size PageSize, page int) Page[T] {
	total := len(items)
	pages := TotalPages(total, size)
	page = clamp(page, pages)

	if size.IsAll() {
		return Page[T]{Items: items, Number: 1, TotalPages: 1, Total: total, Start: 0, End: total}
	}

	start := (page - 1) * int(size)
	end := start + int(size)
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		TotalPages: pages,
		Total:      total,
		Start:      start,
		End:        end,
	}
}

// Cursor is the current page and page size. The zero value is page 1 of All.
type Cursor struct {
	Page int
	Size PageSize
}

// NewCursor returns a cursor on page 1 with the given size.
func NewCursor(size PageSize) Cursor {
	return Cursor{Page: 1, Size: size}
}

// Next advances one page if another page exists for total items.
func (c *Cursor) Next(total int) bool {
	c.normalize()
	if c.Page >= TotalPages(total, c.Size) {
		return false
	}
	c.Page++
	return true
}

// Previous moves back one page unless already on the first.
func (c *Cursor) Previous() bool {
	c.normalize()
	if c.Page <= 1 {
		return false
	}
	c.Page--
	return true
}

// SetSize changes the page size and always returns to page 1.
func (c *Cursor) SetSize(size PageSize) {
	c.Size = size
	c.Page = 1
}

// Clamp keeps the page within range for total items.
func (c *Cursor) Clamp(total int) {
	c.Page = clamp(c.Page, TotalPages(total, c.Size))
}

// Reset returns to page 1 showing all items.
func (c *Cursor) Reset() {
	c.Page = 1
	c.Size = All
}

func (c *Cursor) normalize() {
	if c.Page < 1 {
		c.Page = 1
	}
}

func clamp(page, pages int) int {
	if page < 1 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}
