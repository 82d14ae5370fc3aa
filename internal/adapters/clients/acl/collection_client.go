package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/adapters/clients"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/domain"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/platform/logging"
)

// CollectionClientConfig contains configuration for the collection client.
type CollectionClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should point at the collection API root
	// (e.g., "https://collectionapi.metmuseum.org/public/collection/v1").
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger
}

// CollectionClient implements ports.CollectionClient against the museum
// collection REST API. It translates external API responses to domain types.
type CollectionClient struct {
	client *clients.Client
	logger *slog.Logger
}

// NewCollectionClient creates a new collection client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewCollectionClient(cfg CollectionClientConfig) *CollectionClient {
	if cfg.Client == nil {
		panic("CollectionClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CollectionClient{
		client: cfg.Client,
		logger: logger,
	}
}

// departmentsResponse is the external DTO from GET /departments.
// Internal type, never exposed outside the ACL.
type departmentsResponse struct {
	Departments []struct {
		DepartmentID int    `json:"departmentId"`
		DisplayName  string `json:"displayName"`
	} `json:"departments"`
}

// searchResponse is the external DTO from GET /search.
// ObjectIDs is null (not an empty array) when nothing matches.
type searchResponse struct {
	Total     int   `json:"total"`
	ObjectIDs []int `json:"objectIDs"`
}

// objectResponse is the external DTO from GET /objects/{id}.
// Only the fields the gallery renders are decoded.
type objectResponse struct {
	ObjectID          int      `json:"objectID"`
	Title             string   `json:"title"`
	Culture           string   `json:"culture"`
	Dynasty           string   `json:"dynasty"`
	ArtistDisplayName string   `json:"artistDisplayName"`
	ObjectDate        string   `json:"objectDate"`
	PrimaryImage      string   `json:"primaryImage"`
	AdditionalImages  []string `json:"additionalImages"`
}

// ListDepartments fetches all curatorial departments.
// Implements ports.CollectionClient.
func (c *CollectionClient) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	const path = "/departments"
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))
	c.logger.DebugContext(ctx, "listing departments")

	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, domain.NewUnavailableError("collection-api", err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	var external departmentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&external); err != nil {
		return nil, fmt.Errorf("decoding departments response: %w", err)
	}

	departments := make([]domain.Department, 0, len(external.Departments))
	for _, d := range external.Departments {
		departments = append(departments, domain.Department{
			ID:          d.DepartmentID,
			DisplayName: d.DisplayName,
		})
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated external DTO to domain",
		slog.Int("departments", len(departments)))

	return departments, nil
}

// SearchObjects runs a search and returns the matching object IDs together
// with the total the upstream reports. The upstream total is returned as-is;
// callers decide whether to trust it. A null objectIDs array translates to
// an empty slice.
// Implements ports.CollectionClient.
func (c *CollectionClient) SearchObjects(ctx context.Context, filters domain.SearchFilters) ([]int, int, error) {
	path := searchPath(filters)
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))
	c.logger.DebugContext(ctx, "searching objects",
		slog.Bool("filtered", !filters.IsZero()))

	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, 0, domain.NewUnavailableError("collection-api", err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, c.handleErrorResponse(resp)
	}

	var external searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&external); err != nil {
		return nil, 0, fmt.Errorf("decoding search response: %w", err)
	}

	ids := external.ObjectIDs
	if ids == nil {
		ids = []int{}
	}

	c.logger.Log(ctx, logging.LevelTrace, "search complete",
		slog.Int("ids", len(ids)),
		slog.Int("total", external.Total))

	return ids, external.Total, nil
}

// GetObject fetches a single object's metadata by ID.
// A 404 from the upstream translates to a domain not-found error so callers
// can distinguish a vanished object from a broken upstream.
// Implements ports.CollectionClient.
func (c *CollectionClient) GetObject(ctx context.Context, id int) (*domain.ArtObject, error) {
	path := "/objects/" + strconv.Itoa(id)
	c.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("path", path),
		slog.Int("object_id", id))

	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, domain.NewUnavailableError("collection-api", err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.NewNotFoundError("object", strconv.Itoa(id))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	var external objectResponse
	if err := json.NewDecoder(resp.Body).Decode(&external); err != nil {
		return nil, fmt.Errorf("decoding object response: %w", err)
	}

	return c.translateObject(&external), nil
}

// translateObject converts the external API response to a domain ArtObject.
func (c *CollectionClient) translateObject(ext *objectResponse) *domain.ArtObject {
	return &domain.ArtObject{
		ID:                ext.ObjectID,
		Title:             ext.Title,
		Culture:           ext.Culture,
		Dynasty:           ext.Dynasty,
		ArtistDisplayName: ext.ArtistDisplayName,
		ObjectDate:        ext.ObjectDate,
		PrimaryImage:      ext.PrimaryImage,
		AdditionalImages:  ext.AdditionalImages,
	}
}

// searchPath builds the /search path with query parameters.
// hasImages=true is always sent; the remaining parameters are included
// only when the corresponding filter is set.
func searchPath(filters domain.SearchFilters) string {
	params := url.Values{}
	params.Set("hasImages", "true")

	if filters.DepartmentID != nil {
		params.Set("departmentId", strconv.Itoa(*filters.DepartmentID))
	}

	if filters.Keyword != "" {
		params.Set("q", filters.Keyword)
	}

	if filters.Location != "" {
		params.Set("geoLocation", filters.Location)
	}

	return "/search?" + params.Encode()
}

// handleErrorResponse converts HTTP error responses to domain errors.
func (c *CollectionClient) handleErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	c.logger.Warn("collection API error",
		slog.Int("status_code", resp.StatusCode),
		slog.String("body", string(body)),
	)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return domain.NewUnavailableError("collection-api", fmt.Sprintf("HTTP %d", resp.StatusCode))
	default:
		return domain.NewUnavailableError("collection-api", fmt.Sprintf("unexpected HTTP %d", resp.StatusCode))
	}
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *CollectionClient) Name() string {
	return "collection-api"
}

// Check performs a health check by listing departments.
// Implements ports.HealthChecker.
func (c *CollectionClient) Check(ctx context.Context) error {
	resp, err := c.client.Get(ctx, "/departments")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("collection API returned status %d", resp.StatusCode)
	}

	return nil
}
