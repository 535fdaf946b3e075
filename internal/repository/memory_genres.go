package repository

import (
	"context"
	"slices"

	"github.com/metinatakli/movie-catalog/internal/domain"
)

type MemoryGenreRepository struct {
	genres []domain.Genre
}

func NewMemoryGenreRepository(genres []domain.Genre) *MemoryGenreRepository {
	return &MemoryGenreRepository{
		genres: slices.Clone(genres),
	}
}

func (m *MemoryGenreRepository) GetAll(ctx context.Context) ([]domain.Genre, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return slices.Clone(m.genres), nil
}
