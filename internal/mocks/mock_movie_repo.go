package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetAllFunc  func(ctx context.Context) ([]domain.Movie, error)
	GetByIdFunc func(ctx context.Context, id string) (*domain.Movie, error)
}

func (m *MockMovieRepo) GetAll(ctx context.Context) ([]domain.Movie, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id string) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}
