package catalog

import (
	"fmt"

	"github.com/metinatakli/movie-catalog/internal/domain"
)

const (
	ActionLike   = "like"
	ActionDelete = "delete"
)

type SidebarItem struct {
	Genre    domain.Genre
	Selected bool
}

func (s State) Sidebar() []SidebarItem {
	items := make([]SidebarItem, len(s.Genres))

	for i, g := range s.Genres {
		items[i] = SidebarItem{Genre: g, Selected: g.ID == s.SelectedGenre.ID}
	}

	return items
}

type TableColumn struct {
	Key       string
	Label     string
	Sortable  bool
	Direction domain.SortDirection
}

// Table lists the movie table columns: the sortable data columns followed by the
// per-row actions.
func (s State) Table() []TableColumn {
	headers := Movies.Headers(s.Sort)
	columns := make([]TableColumn, 0, len(headers)+2)

	for _, h := range headers {
		columns = append(columns, TableColumn{
			Key:       h.Key,
			Label:     h.Label,
			Sortable:  true,
			Direction: h.Direction,
		})
	}

	columns = append(columns,
		TableColumn{Key: ActionLike},
		TableColumn{Key: ActionDelete},
	)

	return columns
}

func (s State) Summary(totalCount int) string {
	if len(s.Movies) == 0 {
		return "There are no movies in the database."
	}

	return fmt.Sprintf("Showing %d movies in the database.", totalCount)
}
