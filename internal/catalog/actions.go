package catalog

import (
	"slices"

	"github.com/metinatakli/movie-catalog/internal/domain"
)

type Action interface {
	apply(s State) State
}

// SelectGenre shows one genre from the first page and clears the search.
type SelectGenre struct {
	Genre domain.Genre
}

// Search shows titles starting with Query from the first page and clears the genre.
type Search struct {
	Query string
}

// SortBy reverses the direction when Column is already the sort column and otherwise
// sorts ascending by Column. The current page is kept.
type SortBy struct {
	Column string
}

type ChangePage struct {
	Page int
}

type ToggleLike struct {
	MovieID string
}

type DeleteMovie struct {
	MovieID string
}

// Reduce returns the state that results from applying a to s. Slices are shared
// between states and never written to; transitions that change the movie set build a
// new one.
func Reduce(s State, a Action) State {
	return a.apply(s)
}

func (a SelectGenre) apply(s State) State {
	s.SelectedGenre = a.Genre
	s.SearchQuery = ""
	s.Page.Current = 1

	return s
}

func (a Search) apply(s State) State {
	s.SearchQuery = a.Query
	s.SelectedGenre = domain.AllGenres
	s.Page.Current = 1

	return s
}

func (a SortBy) apply(s State) State {
	if s.Sort.Column == a.Column {
		s.Sort.Direction = s.Sort.Direction.Reverse()
	} else {
		s.Sort = domain.SortSpec{Column: a.Column, Direction: domain.SortAscending}
	}

	return s
}

func (a ChangePage) apply(s State) State {
	s.Page.Current = a.Page

	return s
}

func (a ToggleLike) apply(s State) State {
	movies := slices.Clone(s.Movies)

	for i := range movies {
		if movies[i].ID == a.MovieID {
			movies[i].Liked = !movies[i].Liked
		}
	}

	s.Movies = movies

	return s
}

func (a DeleteMovie) apply(s State) State {
	s.Movies = slices.DeleteFunc(slices.Clone(s.Movies), func(m domain.Movie) bool {
		return m.ID == a.MovieID
	})

	return s
}
