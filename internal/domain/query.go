package domain

import (
	"fmt"
	"strings"
)

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

func (d SortDirection) Reverse() SortDirection {
	if d == SortDescending {
		return SortAscending
	}

	return SortDescending
}

// GenreFilter restricts a listing to a single genre. The zero value matches every genre.
type GenreFilter struct {
	ID string
}

func (f GenreFilter) IsAll() bool {
	return f.ID == ""
}

type SortSpec struct {
	Column    string
	Direction SortDirection
}

// ParseSort reads the "column" / "-column" form used by URL parameters.
func ParseSort(s string) SortSpec {
	if strings.HasPrefix(s, "-") {
		return SortSpec{Column: strings.TrimPrefix(s, "-"), Direction: SortDescending}
	}

	return SortSpec{Column: s, Direction: SortAscending}
}

func (s SortSpec) String() string {
	if s.Direction == SortDescending {
		return "-" + s.Column
	}

	return s.Column
}

type PageSpec struct {
	Current int
	Size    int
}

func (p PageSpec) Validate() error {
	if p.Current < 1 {
		return fmt.Errorf("%w: current page must be positive, got %d", ErrInvalidArgument, p.Current)
	}
	if p.Size < 1 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidArgument, p.Size)
	}

	return nil
}

func (p PageSpec) Limit() int {
	return p.Size
}

func (p PageSpec) Offset() int {
	return (p.Current - 1) * p.Size
}

// Count returns the number of pages needed to hold total records. It does not overflow
// for any positive page size.
func (p PageSpec) Count(total int) int {
	if total == 0 {
		return 0
	}

	return (total-1)/p.Size + 1
}

// Query is everything a caller supplies to compute one page of a listing.
type Query struct {
	Search string
	Genre  GenreFilter
	Sort   SortSpec
	Page   PageSpec
}
