// Package listing shapes in-memory record sets for display: it filters them by search
// text or genre, orders them by a single column and cuts out the requested page.
//
// Every operation is a pure function of its arguments. Input slices are never modified,
// so a Pipeline can be shared by any number of concurrent callers.
package listing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/metinatakli/movie-catalog/internal/domain"
)

// Fields reads the record attributes the filter step looks at.
type Fields[T any] struct {
	Title   func(T) string
	GenreID func(T) string
}

// Column is one sortable column of a record schema.
type Column[T any] struct {
	Key     string
	Label   string
	Compare func(a, b T) int
}

type Pipeline[T any] struct {
	fields  Fields[T]
	columns []Column[T]
	byKey   map[string]int
}

// New builds a pipeline for one record schema. Column keys must be unique.
func New[T any](fields Fields[T], columns ...Column[T]) *Pipeline[T] {
	byKey := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := byKey[c.Key]; dup {
			panic(fmt.Sprintf("listing: duplicate column %q", c.Key))
		}
		byKey[c.Key] = i
	}

	return &Pipeline[T]{
		fields:  fields,
		columns: slices.Clone(columns),
		byKey:   byKey,
	}
}

func (p *Pipeline[T]) Columns() []Column[T] {
	return slices.Clone(p.columns)
}

func (p *Pipeline[T]) Column(key string) (Column[T], bool) {
	i, ok := p.byKey[key]
	if !ok {
		return Column[T]{}, false
	}

	return p.columns[i], true
}

// Filter keeps the records whose title starts with search, ignoring case. With an empty
// search it keeps the records of the given genre instead, and with no genre it keeps
// everything. Surviving records keep their input order.
func (p *Pipeline[T]) Filter(records []T, search string, genre domain.GenreFilter) []T {
	filtered := make([]T, 0, len(records))

	switch {
	case search != "":
		prefix := strings.ToLower(search)
		for _, r := range records {
			if strings.HasPrefix(strings.ToLower(p.fields.Title(r)), prefix) {
				filtered = append(filtered, r)
			}
		}
	case !genre.IsAll():
		for _, r := range records {
			if p.fields.GenreID(r) == genre.ID {
				filtered = append(filtered, r)
			}
		}
	default:
		filtered = append(filtered, records...)
	}

	return filtered
}

// Sort returns a stably sorted copy of records.
func (p *Pipeline[T]) Sort(records []T, spec domain.SortSpec) ([]T, error) {
	compare, err := p.comparator(spec)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, compare)

	return sorted, nil
}

// comparator inverts the column comparator for descending order instead of reversing the
// sorted output, so tied records keep their input order in both directions.
func (p *Pipeline[T]) comparator(spec domain.SortSpec) (func(a, b T) int, error) {
	col, ok := p.Column(spec.Column)
	if !ok {
		return nil, fmt.Errorf("%w: unknown sort column %q", domain.ErrInvalidArgument, spec.Column)
	}

	switch spec.Direction {
	case domain.SortAscending:
		return col.Compare, nil
	case domain.SortDescending:
		return func(a, b T) int { return col.Compare(b, a) }, nil
	default:
		return nil, fmt.Errorf("%w: unknown sort direction %q", domain.ErrInvalidArgument, spec.Direction)
	}
}

// Paginate returns at most pageSize records starting at (currentPage-1)*pageSize. A page
// past the end is empty.
func Paginate[T any](records []T, currentPage, pageSize int) ([]T, error) {
	page := domain.PageSpec{Current: currentPage, Size: pageSize}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	if page.Current > page.Count(len(records)) {
		return []T{}, nil
	}

	start := page.Offset()
	end := min(start+page.Limit(), len(records))

	return slices.Clone(records[start:end]), nil
}

type PageResult[T any] struct {
	// TotalCount is the number of records that passed the filter.
	TotalCount int
	Items      []T
}

// ComputePage runs filter, sort and paginate in that order. The query is validated up
// front, so a malformed query fails even when no record would match it.
func (p *Pipeline[T]) ComputePage(records []T, q domain.Query) (PageResult[T], error) {
	if err := q.Page.Validate(); err != nil {
		return PageResult[T]{}, err
	}

	compare, err := p.comparator(q.Sort)
	if err != nil {
		return PageResult[T]{}, err
	}

	filtered := p.Filter(records, q.Search, q.Genre)

	// filtered is already a private copy
	slices.SortStableFunc(filtered, compare)

	items, err := Paginate(filtered, q.Page.Current, q.Page.Size)
	if err != nil {
		return PageResult[T]{}, err
	}

	return PageResult[T]{
		TotalCount: len(filtered),
		Items:      items,
	}, nil
}

// Header describes a table column header. Direction is empty unless the listing is
// currently sorted by the column.
type Header struct {
	Key       string
	Label     string
	Direction domain.SortDirection
}

func (p *Pipeline[T]) Headers(spec domain.SortSpec) []Header {
	headers := make([]Header, len(p.columns))

	for i, c := range p.columns {
		headers[i] = Header{Key: c.Key, Label: c.Label}
		if c.Key == spec.Column {
			headers[i].Direction = spec.Direction
		}
	}

	return headers
}
