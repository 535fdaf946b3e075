package app

import (
	"net/http"

	"github.com/metinatakli/movie-catalog/api"
)

var adminLinks = []api.NavLink{
	{Label: "Users", Path: "/admin/users"},
	{Label: "Posts", Path: "/admin/posts"},
}

func (app *Application) GetAdminSidebar(w http.ResponseWriter, r *http.Request) {
	resp := api.SidebarResponse{
		Links: adminLinks,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
