package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/metinatakli/movie-catalog/internal/listing"
)

// State is an immutable value: Reduce never modifies the State it is given.
type State struct {
	Movies        []domain.Movie
	Genres        []domain.Genre
	SelectedGenre domain.Genre
	SearchQuery   string
	Sort          domain.SortSpec
	Page          domain.PageSpec
}

// NewState returns the state a viewer starts from. genres must not contain AllGenres,
// it is always listed first.
func NewState(movies []domain.Movie, genres []domain.Genre, pageSize int) State {
	return State{
		Movies:        slices.Clone(movies),
		Genres:        append([]domain.Genre{domain.AllGenres}, genres...),
		SelectedGenre: domain.AllGenres,
		Sort:          DefaultSort,
		Page:          domain.PageSpec{Current: 1, Size: pageSize},
	}
}

// Initialize loads the record set and the genre source once, before the first page is
// shown.
func Initialize(ctx context.Context, movies domain.MovieRepository, genres domain.GenreRepository, pageSize int) (State, error) {
	allMovies, err := movies.GetAll(ctx)
	if err != nil {
		return State{}, fmt.Errorf("loading movies: %w", err)
	}

	allGenres, err := genres.GetAll(ctx)
	if err != nil {
		return State{}, fmt.Errorf("loading genres: %w", err)
	}

	return NewState(allMovies, allGenres, pageSize), nil
}

func (s State) Query() domain.Query {
	return domain.Query{
		Search: s.SearchQuery,
		Genre:  s.SelectedGenre.Filter(),
		Sort:   s.Sort,
		Page:   s.Page,
	}
}

func (s State) CurrentPage() (listing.PageResult[domain.Movie], error) {
	return Movies.ComputePage(s.Movies, s.Query())
}

func (s State) Movie(id string) (domain.Movie, bool) {
	i := slices.IndexFunc(s.Movies, func(m domain.Movie) bool {
		return m.ID == id
	})
	if i < 0 {
		return domain.Movie{}, false
	}

	return s.Movies[i], true
}

func (s State) Genre(id string) (domain.Genre, bool) {
	i := slices.IndexFunc(s.Genres, func(g domain.Genre) bool {
		return g.ID == id
	})
	if i < 0 {
		return domain.Genre{}, false
	}

	return s.Genres[i], true
}
