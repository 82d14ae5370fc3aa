package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/adapters/http/dto"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/app"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/domain"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/platform/logging"
)

// GalleryHandler handles the server-rendered gallery pages and the
// additional-images API endpoint.
type GalleryHandler struct {
	service *app.GalleryService
}

// NewGalleryHandler creates a new gallery handler.
func NewGalleryHandler(service *app.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		service: service,
	}
}

// HomeView is the template model for the landing page.
type HomeView struct {
	Title       string
	Departments []domain.Department
}

// SearchView is the template model for the search results page.
type SearchView struct {
	Title       string
	Departments []domain.Department
	Objects     []*domain.ArtObject
	CurrentPage int
	TotalPages  int
	PrevURL     string
	NextURL     string
	Keyword     string
	Location    string
	Department  *int
}

// IsSelected reports whether the given department is the active filter.
// Used by the search form template to re-select the department dropdown.
func (v *SearchView) IsSelected(id int) bool {
	return v.Department != nil && *v.Department == id
}

// ResultsView is the template model for the catalog listing page.
type ResultsView struct {
	Title       string
	Objects     []*domain.ArtObject
	CurrentPage int
	TotalPages  int
	PrevURL     string
	NextURL     string
}

// Home handles GET /.
// Renders the landing page with the translated department list and the
// search form.
func (h *GalleryHandler) Home(c *gin.Context) {
	departments, err := h.service.Departments(c.Request.Context())
	if err != nil {
		renderPageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "home", &HomeView{
		Title:       "Inicio",
		Departments: departments,
	})
}

// Search handles GET /search.
// Runs a filtered collection search and renders one page of results, 20
// objects per page.
func (h *GalleryHandler) Search(c *gin.Context) {
	var req dto.SearchPageRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		renderBadRequest(c, err)
		return
	}

	result, err := h.service.Search(c.Request.Context(), req.Filters(), req.PageNumber())
	if err != nil {
		renderPageError(c, err)
		return
	}

	page := result.Page
	prev, next := pageLinks("/search", searchQuery(&req), page.CurrentPage, page.TotalPages)

	c.HTML(http.StatusOK, "search", &SearchView{
		Title:       "Buscar",
		Departments: result.Departments,
		Objects:     page.Objects,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		PrevURL:     prev,
		NextURL:     next,
		Keyword:     req.Keyword,
		Location:    req.Location,
		Department:  req.Department(),
	})
}

// Results handles GET /results.
// Renders one page of the full catalog listing, 10 objects per page.
func (h *GalleryHandler) Results(c *gin.Context) {
	var req dto.ResultsPageRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		renderBadRequest(c, err)
		return
	}

	page, err := h.service.Results(c.Request.Context(), req.PageNumber())
	if err != nil {
		renderPageError(c, err)
		return
	}

	prev, next := pageLinks("/results", url.Values{}, page.CurrentPage, page.TotalPages)

	c.HTML(http.StatusOK, "results", &ResultsView{
		Title:       "Catálogo",
		Objects:     page.Objects,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		PrevURL:     prev,
		NextURL:     next,
	})
}

// AdditionalImages handles GET /object/:id/additional-images.
// Returns the object's additional image URLs as a bare JSON array. An
// object without additional images yields an empty array, never an error;
// an unknown object id yields 404.
func (h *GalleryHandler) AdditionalImages(c *gin.Context) {
	var req dto.ObjectURIRequest
	if err := dto.BindURIAndValidate(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			"object id must be a positive integer",
		).WithTraceID(dto.GetTraceID(c)))
		return
	}

	images, err := h.service.AdditionalImages(c.Request.Context(), req.ID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, images)
}

// RegisterGalleryRoutes registers the gallery routes on the engine.
func (h *GalleryHandler) RegisterGalleryRoutes(engine *gin.Engine) {
	engine.GET("/", h.Home)
	engine.GET("/search", h.Search)
	engine.GET("/results", h.Results)
	engine.GET("/object/:id/additional-images", h.AdditionalImages)
}

// renderPageError writes a plain-text error for the HTML pages.
// Upstream failures surface as a bare 500; page rendering has no partial
// degradation beyond translation fallback, which never reaches here.
func renderPageError(c *gin.Context, err error) {
	logging.FromContext(c.Request.Context()).Error("page render failed",
		slog.String("path", c.Request.URL.Path),
		slog.Any("error", err),
	)

	c.String(http.StatusInternalServerError, "an internal error occurred")
}

// renderBadRequest writes a plain-text 400 for invalid page parameters.
func renderBadRequest(c *gin.Context, err error) {
	logging.FromContext(c.Request.Context()).Warn("invalid page request",
		slog.String("path", c.Request.URL.Path),
		slog.Any("error", err),
	)

	c.String(http.StatusBadRequest, "invalid request parameters")
}

// searchQuery rebuilds the search filter query parameters for page links.
func searchQuery(req *dto.SearchPageRequest) url.Values {
	params := url.Values{}

	if req.Keyword != "" {
		params.Set("q", req.Keyword)
	}

	if req.Location != "" {
		params.Set("geoLocation", req.Location)
	}

	if dept := req.Department(); dept != nil {
		params.Set("departmentId", strconv.Itoa(*dept))
	}

	return params
}

// pageLinks builds the previous/next page URLs, preserving filter params.
// An empty string means the link should not be rendered.
func pageLinks(path string, params url.Values, current, total int) (prev, next string) {
	if current > 1 {
		prev = pageURL(path, params, current-1)
	}

	if current < total {
		next = pageURL(path, params, current+1)
	}

	return prev, next
}

// pageURL builds a page URL with the given query parameters.
func pageURL(path string, params url.Values, page int) string {
	q := url.Values{}
	for key, values := range params {
		q[key] = values
	}
	q.Set("page", strconv.Itoa(page))

	return path + "?" + q.Encode()
}
