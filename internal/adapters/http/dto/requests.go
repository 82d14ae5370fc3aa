package dto

import "github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/domain"

// SearchPageRequest carries the query parameters of the search page.
// All parameters are optional. Page is a pointer so an explicit page=0 can
// be rejected while an absent parameter defaults to the first page. HTML
// forms submit empty values for untouched fields, which Gin binds as zero,
// so a zero departmentId means no department filter.
type SearchPageRequest struct {
	Page         *int   `form:"page"         validate:"omitempty,min=1"`
	DepartmentID *int   `form:"departmentId" validate:"omitempty,min=0"`
	Keyword      string `form:"q"`
	Location     string `form:"geoLocation"`
}

// PageNumber returns the requested page, defaulting to the first page.
func (r *SearchPageRequest) PageNumber() int {
	if r.Page == nil {
		return 1
	}

	return *r.Page
}

// Department returns the department filter, nil when unset.
func (r *SearchPageRequest) Department() *int {
	if r.DepartmentID == nil || *r.DepartmentID == 0 {
		return nil
	}

	return r.DepartmentID
}

// Filters translates the request parameters to domain search filters.
func (r *SearchPageRequest) Filters() domain.SearchFilters {
	return domain.SearchFilters{
		DepartmentID: r.Department(),
		Keyword:      r.Keyword,
		Location:     r.Location,
	}
}

// ResultsPageRequest carries the query parameters of the catalog listing page.
type ResultsPageRequest struct {
	Page *int `form:"page" validate:"omitempty,min=1"`
}

// PageNumber returns the requested page, defaulting to the first page.
func (r *ResultsPageRequest) PageNumber() int {
	if r.Page == nil {
		return 1
	}

	return *r.Page
}

// ObjectURIRequest carries the object id path parameter.
type ObjectURIRequest struct {
	ID int `uri:"id" binding:"required" validate:"min=1"`
}
