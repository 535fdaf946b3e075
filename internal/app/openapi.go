package app

import (
	"net/http"

	"github.com/metinatakli/movie-catalog/api"
)

func (app *Application) GetOpenApiDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := api.Document()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, doc, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
