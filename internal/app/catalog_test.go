package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/metinatakli/movie-catalog/internal/mocks"
	"github.com/metinatakli/movie-catalog/internal/repository"
	"github.com/metinatakli/movie-catalog/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCatalogInitialState(t *testing.T) {
	client := newTestClient(t, newTestApplication())

	w := client.do(http.MethodGet, "/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeCatalog(t, w)

	want := api.CatalogResponse{
		Summary: "Showing 9 movies in the database.",
		Genres: []api.SidebarGenre{
			{Id: "", Name: "All Movies", Selected: true},
			{Id: repository.GenreAction.ID, Name: "Action"},
			{Id: repository.GenreComedy.ID, Name: "Comedy"},
			{Id: repository.GenreThriller.ID, Name: "Thriller"},
		},
		SearchQuery: "",
		Sort:        api.SortState{Column: "title", Direction: "asc"},
		Columns: []api.TableColumn{
			{Key: "title", Label: "Title", Sortable: true, Direction: "asc"},
			{Key: "genre.name", Label: "Genre", Sortable: true},
			{Key: "numberInStock", Label: "Stock", Sortable: true},
			{Key: "dailyRentalRate", Label: "Rate", Sortable: true},
			{Key: "like"},
			{Key: "delete"},
		},
		Metadata: api.Metadata{
			CurrentPage:  1,
			FirstPage:    1,
			LastPage:     3,
			PageSize:     4,
			TotalRecords: 9,
		},
	}

	assert.Equal(t, []string{"Airplane", "Die Hard", "Get Out", "Gone Girl"}, movieTitles(resp.Movies))

	resp.Movies = nil
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("GetCatalog() response mismatch (-want +got):\n%s", diff)
	}

	require.NotEmpty(t, client.cookies, "catalog state was not stored in a session")
}

func TestCatalogSessionFlow(t *testing.T) {
	client := newTestClient(t, newTestApplication())

	steps := []struct {
		name       string
		method     string
		url        string
		body       any
		wantTitles []string
		check      func(t *testing.T, resp api.CatalogResponse)
	}{
		{
			name:       "search",
			method:     http.MethodPost,
			url:        "/catalog/search",
			body:       api.SearchRequest{Query: "the"},
			wantTitles: []string{"The Avengers", "The Sixth Sense"},
			check: func(t *testing.T, resp api.CatalogResponse) {
				assert.Equal(t, "the", resp.SearchQuery)
				assert.Equal(t, 2, resp.Metadata.TotalRecords)
				assert.True(t, resp.Genres[0].Selected)
			},
		},
		{
			name:       "select genre clears the search",
			method:     http.MethodPost,
			url:        "/catalog/genre",
			body:       api.SelectGenreRequest{GenreId: repository.GenreComedy.ID},
			wantTitles: []string{"Airplane", "Trip to Italy", "Wedding Crashers"},
			check: func(t *testing.T, resp api.CatalogResponse) {
				assert.Empty(t, resp.SearchQuery)
				assert.True(t, resp.Genres[2].Selected)
				assert.False(t, resp.Genres[0].Selected)
			},
		},
		{
			name:       "same sort column toggles direction",
			method:     http.MethodPost,
			url:        "/catalog/sort",
			body:       api.SortRequest{Column: "title"},
			wantTitles: []string{"Wedding Crashers", "Trip to Italy", "Airplane"},
			check: func(t *testing.T, resp api.CatalogResponse) {
				assert.Equal(t, api.SortState{Column: "title", Direction: "desc"}, resp.Sort)
				assert.Equal(t, "desc", resp.Columns[0].Direction)
			},
		},
		{
			name:       "page past the end is empty",
			method:     http.MethodPost,
			url:        "/catalog/page",
			body:       api.ChangePageRequest{Page: 2},
			wantTitles: []string{},
			check: func(t *testing.T, resp api.CatalogResponse) {
				assert.Equal(t, 2, resp.Metadata.CurrentPage)
				assert.Equal(t, 3, resp.Metadata.TotalRecords)
				assert.Equal(t, "Showing 3 movies in the database.", resp.Summary)
			},
		},
		{
			name:       "new sort column keeps the page",
			method:     http.MethodPost,
			url:        "/catalog/sort",
			body:       api.SortRequest{Column: "numberInStock"},
			wantTitles: []string{},
			check: func(t *testing.T, resp api.CatalogResponse) {
				assert.Equal(t, api.SortState{Column: "numberInStock", Direction: "asc"}, resp.Sort)
				assert.Equal(t, 2, resp.Metadata.CurrentPage)
			},
		},
		{
			name:       "back to the first page",
			method:     http.MethodPost,
			url:        "/catalog/page",
			body:       api.ChangePageRequest{Page: 1},
			wantTitles: []string{"Trip to Italy", "Airplane", "Wedding Crashers"},
		},
		{
			name:       "like a movie",
			method:     http.MethodPut,
			url:        "/catalog/movies/" + repository.SeedID("movie", "Airplane") + "/like",
			wantTitles: []string{"Trip to Italy", "Airplane", "Wedding Crashers"},
			check: func(t *testing.T, resp api.CatalogResponse) {
				assert.True(t, resp.Movies[1].Liked)
				assert.False(t, resp.Movies[0].Liked)
			},
		},
		{
			name:       "delete a movie",
			method:     http.MethodDelete,
			url:        "/catalog/movies/" + repository.SeedID("movie", "Trip to Italy"),
			wantTitles: []string{"Airplane", "Wedding Crashers"},
			check: func(t *testing.T, resp api.CatalogResponse) {
				assert.Equal(t, 2, resp.Metadata.TotalRecords)
				assert.True(t, resp.Movies[0].Liked)
			},
		},
		{
			name:       "state survives between requests",
			method:     http.MethodGet,
			url:        "/catalog",
			wantTitles: []string{"Airplane", "Wedding Crashers"},
		},
		{
			name:       "all movies after the deletion",
			method:     http.MethodPost,
			url:        "/catalog/genre",
			body:       api.SelectGenreRequest{GenreId: ""},
			wantTitles: []string{"The Sixth Sense", "Die Hard", "Terminator", "Airplane"},
			check: func(t *testing.T, resp api.CatalogResponse) {
				assert.Equal(t, 8, resp.Metadata.TotalRecords)
				assert.Equal(t, "Showing 8 movies in the database.", resp.Summary)
			},
		},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			body := step.body
			if body == nil {
				body = struct{}{}
			}

			w := client.do(step.method, step.url, body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			resp := decodeCatalog(t, w)

			if diff := cmp.Diff(step.wantTitles, movieTitles(resp.Movies)); diff != "" {
				t.Errorf("movies mismatch (-want +got):\n%s", diff)
			}

			if step.check != nil {
				step.check(t, resp)
			}
		})
	}

	t.Run("other sessions are unaffected", func(t *testing.T) {
		other := &testClient{t: t, handler: client.handler}

		resp := decodeCatalog(t, other.do(http.MethodGet, "/catalog", nil))
		assert.Equal(t, 9, resp.Metadata.TotalRecords)
		assert.Equal(t, "title", resp.Sort.Column)
	})
}

func TestCatalogErrors(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		url            string
		body           string
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "unknown genre",
			method:         http.MethodPost,
			url:            "/catalog/genre",
			body:           fmt.Sprintf(`{"genreId": %q}`, repository.SeedID("genre", "Horror")),
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:           "genre id is not a uuid",
			method:         http.MethodPost,
			url:            "/catalog/genre",
			body:           `{"genreId": "action"}`,
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrUUID,
		},
		{
			name:           "unknown sort column",
			method:         http.MethodPost,
			url:            "/catalog/sort",
			body:           `{"column": "director"}`,
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrOneOf, "title genre.name numberInStock dailyRentalRate"),
		},
		{
			name:           "zero page",
			method:         http.MethodPost,
			url:            "/catalog/page",
			body:           `{"page": 0}`,
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name:           "malformed body",
			method:         http.MethodPost,
			url:            "/catalog/search",
			body:           `{"query": `,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "body contains badly-formed JSON",
		},
		{
			name:           "unknown field",
			method:         http.MethodPost,
			url:            "/catalog/search",
			body:           `{"q": "die"}`,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: `body contains unknown key "q"`,
		},
		{
			name:           "empty body",
			method:         http.MethodPost,
			url:            "/catalog/page",
			body:           ``,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "body must not be empty",
		},
		{
			name:           "like an unknown movie",
			method:         http.MethodPut,
			url:            "/catalog/movies/missing/like",
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:           "delete an unknown movie",
			method:         http.MethodDelete,
			url:            "/catalog/movies/missing",
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:           "unsupported method",
			method:         http.MethodPatch,
			url:            "/catalog/sort",
			wantStatus:     http.StatusMethodNotAllowed,
			wantErrMessage: fmt.Sprintf(ErrMethodNotAllowed, http.MethodPatch),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, newTestApplication())

			w := client.doRaw(tt.method, tt.url, tt.body)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("status = %v, want %v", got, tt.wantStatus)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestCatalogInitializeFailure(t *testing.T) {
	app := newTestApplication(func(a *Application) {
		a.movieRepo = &mocks.MockMovieRepo{
			GetAllFunc: func(ctx context.Context) ([]domain.Movie, error) {
				return nil, fmt.Errorf("source unavailable")
			},
		}
	})

	w := newTestClient(t, app).do(http.MethodGet, "/catalog", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	checkErrorResponse(t, w, struct {
		wantStatus     int
		wantErrMessage string
	}{
		wantStatus:     http.StatusInternalServerError,
		wantErrMessage: ErrInternalServer,
	})
}

func TestCatalogEmptyDatabase(t *testing.T) {
	app := newTestApplication(func(a *Application) {
		a.movieRepo = repository.NewMemoryMovieRepository(nil)
	})

	resp := decodeCatalog(t, newTestClient(t, app).do(http.MethodGet, "/catalog", nil))

	assert.Equal(t, "There are no movies in the database.", resp.Summary)
	assert.Empty(t, resp.Movies)
	assert.Equal(t, 0, resp.Metadata.TotalRecords)
}

func TestCatalogConcurrentActionsOnOneSession(t *testing.T) {
	app := newTestApplication()
	client := newTestClient(t, app)

	require.Equal(t, http.StatusOK, client.do(http.MethodGet, "/catalog", nil).Code)
	require.NotEmpty(t, client.cookies)

	handler := client.handler
	cookies := client.cookies
	movies := repository.SeedMovies()

	var wg sync.WaitGroup
	codes := make([]int, len(movies)-1)
	for i, movie := range movies[:len(movies)-1] {
		wg.Add(1)
		go func() {
			defer wg.Done()

			w, r := executeRequest(t, http.MethodDelete, "/catalog/movies/"+movie.ID, nil)
			for _, cookie := range cookies {
				r.AddCookie(cookie)
			}
			handler.ServeHTTP(w, r)
			codes[i] = w.Code
		}()
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}

	resp := decodeCatalog(t, client.do(http.MethodGet, "/catalog", nil))
	assert.Equal(t, 1, resp.Metadata.TotalRecords)
	assert.Equal(t, []string{movies[len(movies)-1].Title}, movieTitles(resp.Movies))
	assert.Zero(t, app.sessionLocks.len())
}
