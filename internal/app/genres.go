package app

import (
	"net/http"

	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/domain"
)

// GetGenres lists the genre filters, starting with the one that matches every movie.
func (app *Application) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := app.genreRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.GenreListResponse{
		Genres: make([]api.Genre, 0, len(genres)+1),
	}

	resp.Genres = append(resp.Genres, toApiGenre(domain.AllGenres))
	for _, g := range genres {
		resp.Genres = append(resp.Genres, toApiGenre(g))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
