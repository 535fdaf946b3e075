package repository

import (
	"github.com/google/uuid"
	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/shopspring/decimal"
)

var catalogNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://cinex.metinatakli.net/catalog"))

// SeedID derives a stable identifier so seeded records keep their ids across restarts.
func SeedID(kind, name string) string {
	return uuid.NewSHA1(catalogNamespace, []byte(kind+":"+name)).String()
}

func seedGenre(name string) domain.Genre {
	return domain.Genre{ID: SeedID("genre", name), Name: name}
}

var (
	GenreAction   = seedGenre("Action")
	GenreComedy   = seedGenre("Comedy")
	GenreThriller = seedGenre("Thriller")
)

func SeedGenres() []domain.Genre {
	return []domain.Genre{GenreAction, GenreComedy, GenreThriller}
}

func SeedMovies() []domain.Movie {
	movie := func(title string, genre domain.Genre, stock int, rate string, liked bool) domain.Movie {
		return domain.Movie{
			ID:              SeedID("movie", title),
			Title:           title,
			Genre:           genre,
			NumberInStock:   stock,
			DailyRentalRate: decimal.RequireFromString(rate),
			Liked:           liked,
		}
	}

	return []domain.Movie{
		movie("Terminator", GenreAction, 6, "2.5", true),
		movie("Die Hard", GenreAction, 5, "2.5", false),
		movie("Get Out", GenreThriller, 8, "3.5", false),
		movie("Trip to Italy", GenreComedy, 7, "3.5", false),
		movie("Airplane", GenreComedy, 7, "3.5", false),
		movie("Wedding Crashers", GenreComedy, 7, "3.5", false),
		movie("Gone Girl", GenreThriller, 7, "4.5", false),
		movie("The Sixth Sense", GenreThriller, 4, "3.5", false),
		movie("The Avengers", GenreAction, 7, "3.5", false),
	}
}
