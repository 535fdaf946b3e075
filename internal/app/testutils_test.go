package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/catalog"
	"github.com/metinatakli/movie-catalog/internal/repository"
	"github.com/metinatakli/movie-catalog/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	cfg := Config{
		Env:      "test",
		PageSize: catalog.DefaultPageSize,
		Session: SessionConfig{
			IdleTimeout: time.Minute,
			CookieName:  "session_id",
		},
	}

	app := NewApp(
		cfg,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		nil,
		validator.NewValidator(),
		NewSessionManager(nil, cfg),
		repository.NewMemoryMovieRepository(repository.SeedMovies()),
		repository.NewMemoryGenreRepository(repository.SeedGenres()),
	)

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(method, url, bytes.NewReader(jsonData))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// testClient replays the session cookie between requests like a browser would.
type testClient struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func newTestClient(t *testing.T, app *Application) *testClient {
	return &testClient{t: t, handler: app.Routes()}
}

func (c *testClient) do(method, url string, body any) *httptest.ResponseRecorder {
	w, r := executeRequest(c.t, method, url, body)

	return c.serve(w, r)
}

func (c *testClient) doRaw(method, url, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, url, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	return c.serve(httptest.NewRecorder(), r)
}

func (c *testClient) serve(w *httptest.ResponseRecorder, r *http.Request) *httptest.ResponseRecorder {
	for _, cookie := range c.cookies {
		r.AddCookie(cookie)
	}

	c.handler.ServeHTTP(w, r)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}

	return w
}

func decodeCatalog(t *testing.T, w *httptest.ResponseRecorder) api.CatalogResponse {
	t.Helper()

	var resp api.CatalogResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode catalog response: %v", err)
	}

	return resp
}

func movieTitles(movies []api.Movie) []string {
	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = m.Title
	}
	return titles
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
