package domain

// Metadata describes where a page sits within the whole listing.
type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

// NewMetadata reports the requested page even when it lies past LastPage; such a page
// is simply empty.
func NewMetadata(totalRecords int, page PageSpec) *Metadata {
	return &Metadata{
		CurrentPage:  page.Current,
		FirstPage:    1,
		LastPage:     page.Count(totalRecords),
		PageSize:     page.Size,
		TotalRecords: totalRecords,
	}
}

// IsPastEnd reports whether the current page holds no records.
func (m Metadata) IsPastEnd() bool {
	return m.CurrentPage > m.LastPage
}
