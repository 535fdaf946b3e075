package repository

import (
	"context"
	"slices"

	"github.com/metinatakli/movie-catalog/internal/domain"
)

// MemoryMovieRepository serves a fixed movie set. Callers always receive copies.
type MemoryMovieRepository struct {
	movies []domain.Movie
}

func NewMemoryMovieRepository(movies []domain.Movie) *MemoryMovieRepository {
	return &MemoryMovieRepository{
		movies: slices.Clone(movies),
	}
}

func (m *MemoryMovieRepository) GetAll(ctx context.Context) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return slices.Clone(m.movies), nil
}

func (m *MemoryMovieRepository) GetById(ctx context.Context, id string) (*domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	i := slices.IndexFunc(m.movies, func(movie domain.Movie) bool {
		return movie.ID == id
	})
	if i < 0 {
		return nil, domain.ErrRecordNotFound
	}

	movie := m.movies[i]

	return &movie, nil
}
