package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Genre struct {
	ID   string
	Name string
}

// AllGenres is the genre source entry that stands for "no filter".
var AllGenres = Genre{ID: "", Name: "All Movies"}

func (g Genre) Filter() GenreFilter {
	return GenreFilter{ID: g.ID}
}

type Movie struct {
	ID              string
	Title           string
	Genre           Genre
	NumberInStock   int
	DailyRentalRate decimal.Decimal
	Liked           bool
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]Movie, error)
	GetById(ctx context.Context, id string) (*Movie, error)
}

type GenreRepository interface {
	GetAll(ctx context.Context) ([]Genre, error)
}
