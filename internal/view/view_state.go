package view

import (
	"go-storefront/internal/catalog"
	viewerrors "go-storefront/internal/view/errors"
)

// Catalog is the slice of the catalog store the view derives from.
type Catalog interface {
	Products() []catalog.Product
	HasCategory(category string) bool
}

// Summary is the pagination view-model handed to the rendering surface.
type Summary struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	PageSize    int  `json:"pageSize"`
	TotalItems  int  `json:"totalItems"`
	CanPrev     bool `json:"canPrev"`
	CanNext     bool `json:"canNext"`
}

// State derives the visible product slice from the catalog, the active
// category filter and the pagination cursor. VisibleProducts is the single
// recomputation path: every read goes through it, so the page bounds can
// never go stale relative to the filtered count.
type State struct {
	catalog     Catalog
	filter      string // empty means no filter
	pageSize    int
	currentPage int
}

func NewState(cat Catalog, pageSize int) *State {
	if pageSize < 1 {
		pageSize = 1
	}
	return &State{
		catalog:     cat,
		pageSize:    pageSize,
		currentPage: 1,
	}
}

// SetFilter selects a category and resets to page 1. The category must be
// present in the current catalog.
func (s *State) SetFilter(category string) error {
	if !s.catalog.HasCategory(category) {
		return viewerrors.ErrUnknownCategory
	}
	s.filter = category
	s.currentPage = 1
	return nil
}

// ClearFilter drops the category filter and resets to page 1.
func (s *State) ClearFilter() {
	s.filter = ""
	s.currentPage = 1
}

func (s *State) Filter() string {
	return s.filter
}

// SetPageSize always resets to page 1, even when the size is unchanged.
func (s *State) SetPageSize(n int) error {
	if n < 1 {
		return viewerrors.ErrInvalidPageSize
	}
	s.pageSize = n
	s.currentPage = 1
	return nil
}

// NextPage and PrevPage clamp at the bounds; stepping past an edge is a
// no-op, not an error.
func (s *State) NextPage() {
	if s.currentPage < s.totalPages() {
		s.currentPage++
	}
}

func (s *State) PrevPage() {
	if s.currentPage > 1 {
		s.currentPage--
	}
}

// Reset re-validates the filter against the (possibly reloaded) catalog and
// returns to page 1. A filter naming a vanished category falls back to
// no filter.
func (s *State) Reset() {
	if s.filter != "" && !s.catalog.HasCategory(s.filter) {
		s.filter = ""
	}
	s.currentPage = 1
}

// VisibleProducts applies the filter, clamps the current page into range if
// the filtered set shrank underneath it, and returns the page slice.
func (s *State) VisibleProducts() []catalog.Product {
	filtered := s.filtered()
	s.clamp(len(filtered))

	start := (s.currentPage - 1) * s.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + s.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

func (s *State) Summary() Summary {
	n := len(s.filtered())
	s.clamp(n)
	total := pages(n, s.pageSize)
	return Summary{
		CurrentPage: s.currentPage,
		TotalPages:  total,
		PageSize:    s.pageSize,
		TotalItems:  n,
		CanPrev:     s.currentPage > 1,
		CanNext:     s.currentPage < total,
	}
}

func (s *State) filtered() []catalog.Product {
	all := s.catalog.Products()
	if s.filter == "" {
		return all
	}
	var out []catalog.Product
	for _, p := range all {
		if p.Category == s.filter {
			out = append(out, p)
		}
	}
	return out
}

func (s *State) totalPages() int {
	return pages(len(s.filtered()), s.pageSize)
}

func (s *State) clamp(filteredCount int) {
	max := pages(filteredCount, s.pageSize)
	if s.currentPage > max {
		s.currentPage = max
	}
	if s.currentPage < 1 {
		s.currentPage = 1
	}
}

// pages is ceil(n/size), never less than 1 so an empty set still has a page.
func pages(n, size int) int {
	p := (n + size - 1) / size
	if p < 1 {
		p = 1
	}
	return p
}
