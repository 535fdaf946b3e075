// Package catalog holds the movie browsing state of one viewer and the transitions
// between states. Pages are computed with the listing pipeline over the viewer's own
// snapshot of the movie set.
package catalog

import (
	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/metinatakli/movie-catalog/internal/listing"
	"github.com/shopspring/decimal"
)

const (
	ColumnTitle = "title"
	ColumnGenre = "genre.name"
	ColumnStock = "numberInStock"
	ColumnRate  = "dailyRentalRate"
)

const (
	DefaultPageSize = 4
	MaxPageSize     = 100
	MaxSearchLength = 50
)

var DefaultSort = domain.SortSpec{Column: ColumnTitle, Direction: domain.SortAscending}

// Movies is the pipeline over the movie schema.
var Movies = listing.New(
	listing.Fields[domain.Movie]{
		Title:   func(m domain.Movie) string { return m.Title },
		GenreID: func(m domain.Movie) string { return m.Genre.ID },
	},
	listing.Column[domain.Movie]{
		Key:     ColumnTitle,
		Label:   "Title",
		Compare: listing.Ordered(func(m domain.Movie) string { return m.Title }),
	},
	listing.Column[domain.Movie]{
		Key:   ColumnGenre,
		Label: "Genre",
		Compare: listing.Optional(func(m domain.Movie) (string, bool) {
			return m.Genre.Name, m.Genre.ID != ""
		}),
	},
	listing.Column[domain.Movie]{
		Key:     ColumnStock,
		Label:   "Stock",
		Compare: listing.Ordered(func(m domain.Movie) int { return m.NumberInStock }),
	},
	listing.Column[domain.Movie]{
		Key:     ColumnRate,
		Label:   "Rate",
		Compare: listing.Comparing(func(m domain.Movie) decimal.Decimal { return m.DailyRentalRate }),
	},
)

// SortColumns lists the keys accepted by SortBy.
func SortColumns() []string {
	columns := Movies.Columns()
	keys := make([]string, len(columns))

	for i, c := range columns {
		keys[i] = c.Key
	}

	return keys
}
