// Package domain contains the core entities of the museum gallery.
package domain

// Department is a curatorial department of the museum collection.
// DisplayName may carry the translated name when a translation succeeded;
// the upstream identifier is passed through untouched.
type Department struct {
	// ID is the upstream department identifier.
	ID int

	// DisplayName is the human-readable department name.
	DisplayName string
}

// ArtObject is a single object from the museum collection.
// Title, Culture, and Dynasty are the only fields subject to translation.
type ArtObject struct {
	// ID is the upstream object identifier.
	ID int

	// Title is the object's title.
	Title string

	// Culture is the culture attributed to the object.
	Culture string

	// Dynasty is the dynasty attributed to the object.
	Dynasty string

	// ArtistDisplayName is the attributed artist, when known.
	ArtistDisplayName string

	// ObjectDate is the free-form date attribution.
	ObjectDate string

	// PrimaryImage is the URL of the main image. Objects without one are
	// dropped from rendered result sets.
	PrimaryImage string

	// AdditionalImages holds URLs of any further images.
	AdditionalImages []string
}

// HasImage reports whether the object carries a primary image.
func (o *ArtObject) HasImage() bool {
	return o != nil && o.PrimaryImage != ""
}

// SearchFilters are the optional criteria of a collection search.
// A nil/empty field means the filter is omitted upstream, not wildcarded.
type SearchFilters struct {
	// DepartmentID restricts the search to one department when non-nil.
	DepartmentID *int

	// Keyword is the free-text search term.
	Keyword string

	// Location is the geographic location filter.
	Location string
}

// IsZero reports whether no filter is set.
func (f SearchFilters) IsZero() bool {
	return f.DepartmentID == nil && f.Keyword == "" && f.Location == ""
}

// ObjectPage is one page of aggregated search or listing results.
// It lives for a single request; nothing is retained across requests.
type ObjectPage struct {
	// Objects are the objects of this page, in upstream id order.
	Objects []*ArtObject

	// CurrentPage is the 1-based page number.
	CurrentPage int

	// TotalPages is the number of pages available.
	TotalPages int

	// Filters echoes the query filters that produced this page.
	Filters SearchFilters
}

// Empty reports whether the page holds no objects.
func (p *ObjectPage) Empty() bool {
	return p == nil || len(p.Objects) == 0
}
