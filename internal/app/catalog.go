package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/catalog"
	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/metinatakli/movie-catalog/internal/listing"
)

func (app *Application) GetCatalog(w http.ResponseWriter, r *http.Request) {
	state, err := app.catalogState(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeCatalog(w, r, state)
}

func (app *Application) SelectGenre(w http.ResponseWriter, r *http.Request) {
	var input api.SelectGenreRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	state, err := app.catalogState(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	genre, ok := state.Genre(input.GenreId)
	if !ok {
		app.contextGetLogger(r).Warn("selected genre is not offered", "genreId", input.GenreId)
		app.notFoundResponse(w, r)
		return
	}

	app.dispatch(w, r, state, catalog.SelectGenre{Genre: genre})
}

func (app *Application) SearchCatalog(w http.ResponseWriter, r *http.Request) {
	var input api.SearchRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	state, err := app.catalogState(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.dispatch(w, r, state, catalog.Search{Query: input.Query})
}

func (app *Application) SortCatalog(w http.ResponseWriter, r *http.Request) {
	var input api.SortRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	state, err := app.catalogState(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.dispatch(w, r, state, catalog.SortBy{Column: input.Column})
}

func (app *Application) ChangeCatalogPage(w http.ResponseWriter, r *http.Request) {
	var input api.ChangePageRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	state, err := app.catalogState(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.dispatch(w, r, state, catalog.ChangePage{Page: input.Page})
}

func (app *Application) ToggleMovieLike(w http.ResponseWriter, r *http.Request, movieId api.MovieId) {
	app.dispatchMovieAction(w, r, movieId, func(movieId string) catalog.Action {
		return catalog.ToggleLike{MovieID: movieId}
	})
}

func (app *Application) DeleteCatalogMovie(w http.ResponseWriter, r *http.Request, movieId api.MovieId) {
	app.dispatchMovieAction(w, r, movieId, func(movieId string) catalog.Action {
		return catalog.DeleteMovie{MovieID: movieId}
	})
}

func (app *Application) dispatchMovieAction(
	w http.ResponseWriter,
	r *http.Request,
	movieId string,
	action func(movieId string) catalog.Action) {

	state, err := app.catalogState(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if _, ok := state.Movie(movieId); !ok {
		app.notFoundResponse(w, r)
		return
	}

	app.dispatch(w, r, state, action(movieId))
}

// dispatch stores the state produced by the action and responds with its page. Requests
// of one session reach it one at a time, see serializeSession.
func (app *Application) dispatch(w http.ResponseWriter, r *http.Request, state catalog.State, action catalog.Action) {
	next := catalog.Reduce(state, action)
	app.saveCatalogState(r.Context(), next)

	app.contextGetLogger(r).Debug("catalog action applied", "action", fmt.Sprintf("%T", action))

	app.writeCatalog(w, r, next)
}

func (app *Application) writeCatalog(w http.ResponseWriter, r *http.Request, state catalog.State) {
	page, err := app.computePage(r.Context(), "catalog", state.Movies, state.Query())
	if err != nil {
		app.pageErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toCatalogResponse(state, page), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toCatalogResponse(state catalog.State, page listing.PageResult[domain.Movie]) api.CatalogResponse {
	metadata := domain.NewMetadata(page.TotalCount, state.Page)

	return api.CatalogResponse{
		Summary:     state.Summary(page.TotalCount),
		Genres:      toApiSidebar(state.Sidebar()),
		SearchQuery: state.SearchQuery,
		Sort: api.SortState{
			Column:    state.Sort.Column,
			Direction: string(state.Sort.Direction),
		},
		Columns:  toApiColumns(state.Table()),
		Movies:   toApiMovies(page.Items),
		Metadata: *toApiMetadata(metadata),
	}
}

func toApiSidebar(items []catalog.SidebarItem) []api.SidebarGenre {
	genres := make([]api.SidebarGenre, len(items))

	for i, item := range items {
		genres[i] = api.SidebarGenre{
			Id:       item.Genre.ID,
			Name:     item.Genre.Name,
			Selected: item.Selected,
		}
	}

	return genres
}

func toApiColumns(columns []catalog.TableColumn) []api.TableColumn {
	apiColumns := make([]api.TableColumn, len(columns))

	for i, c := range columns {
		apiColumns[i] = api.TableColumn{
			Key:       c.Key,
			Label:     c.Label,
			Sortable:  c.Sortable,
			Direction: string(c.Direction),
		}
	}

	return apiColumns
}
