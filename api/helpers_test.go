package api

import (
	"net/http"
	"net/http/httptest"
)

type recordingServer struct {
	Unimplemented
	params GetMoviesParams
}

func (s *recordingServer) GetMovies(w http.ResponseWriter, r *http.Request, params GetMoviesParams) {
	s.params = params
	w.WriteHeader(http.StatusOK)
}

func httptestServe(h http.Handler, method, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, url, nil))

	return w
}

func ptr[T any](v T) *T {
	return &v
}
