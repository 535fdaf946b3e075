package app

import (
	"fmt"
	"net/http"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// serializeSession runs requests carrying the same session cookie one at a time, so each
// one loads the catalog state its predecessor saved. It must wrap LoadAndSave. Requests
// served by other instances sharing the Redis store are not covered.
func (app *Application) serializeSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(app.sessionManager.Cookie.Name)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		unlock := app.sessionLocks.lock(cookie.Value)
		defer unlock()

		next.ServeHTTP(w, r)
	})
}
