package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/catalog"
	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/metinatakli/movie-catalog/internal/listing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultPage = 1
)

// GetMovies lists movies for the query given in the URL. Nothing is remembered between
// requests.
func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request, params api.GetMoviesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	query := app.toMovieQuery(params)

	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	page, err := app.computePage(r.Context(), "movies", movies, query)
	if err != nil {
		app.pageErrorResponse(w, r, err)
		return
	}

	metadata := domain.NewMetadata(page.TotalCount, query.Page)
	if metadata.IsPastEnd() && metadata.TotalRecords > 0 {
		app.contextGetLogger(r).Debug("requested page is past the last page", "page", metadata.CurrentPage, "lastPage", metadata.LastPage)
	}

	resp := api.MovieListResponse{
		Movies:   toApiMovies(page.Items),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieById(w http.ResponseWriter, r *http.Request, movieId api.MovieId) {
	movie, err := app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(*movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// computePage runs the listing pipeline inside a span and counts the computed pages per
// source.
func (app *Application) computePage(
	ctx context.Context,
	source string,
	movies []domain.Movie,
	query domain.Query) (listing.PageResult[domain.Movie], error) {

	ctx, span := app.tracer.Start(ctx, "listing.ComputePage", trace.WithAttributes(
		attribute.String("listing.source", source),
		attribute.Int("listing.records", len(movies)),
		attribute.String("listing.sort", query.Sort.String()),
	))
	defer span.End()

	page, err := catalog.Movies.ComputePage(movies, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return page, err
	}

	span.SetAttributes(attribute.Int("listing.total_count", page.TotalCount))
	app.pagesComputed.Add(ctx, 1, metric.WithAttributes(attribute.String("listing.source", source)))

	return page, nil
}

func (app *Application) pageErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		app.badRequestResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) toMovieQuery(params api.GetMoviesParams) domain.Query {
	query := domain.Query{
		Sort: catalog.DefaultSort,
		Page: domain.PageSpec{
			Current: DefaultPage,
			Size:    app.config.PageSize,
		},
	}

	if params.Page != nil {
		query.Page.Current = *params.Page
	}
	if params.PageSize != nil {
		query.Page.Size = *params.PageSize
	}
	if params.Sort != nil && *params.Sort != "" {
		query.Sort = domain.ParseSort(*params.Sort)
	}
	if params.Term != nil {
		query.Search = *params.Term
	}
	if params.GenreId != nil {
		query.Genre = domain.GenreFilter{ID: *params.GenreId}
	}

	return query
}

func toApiMovies(movies []domain.Movie) []api.Movie {
	apiMovies := make([]api.Movie, len(movies))

	for i, movie := range movies {
		apiMovies[i] = toApiMovie(movie)
	}

	return apiMovies
}

func toApiMovie(movie domain.Movie) api.Movie {
	return api.Movie{
		Id:              movie.ID,
		Title:           movie.Title,
		Genre:           toApiGenre(movie.Genre),
		NumberInStock:   movie.NumberInStock,
		DailyRentalRate: movie.DailyRentalRate.String(),
		Liked:           movie.Liked,
	}
}

func toApiGenre(genre domain.Genre) api.Genre {
	return api.Genre{
		Id:   genre.ID,
		Name: genre.Name,
	}
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
