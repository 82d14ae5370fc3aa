// Package app contains application services that orchestrate use cases.
// This is the application layer: it coordinates the collection and
// translation ports per request and holds no state between requests.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/domain"
	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/ports"
)

const (
	// SearchPageSize is the number of objects per /search page.
	SearchPageSize = 20

	// ResultsPageSize is the number of objects per /results page.
	ResultsPageSize = 10
)

// GalleryService orchestrates the gallery use cases: department listing,
// collection search, full-catalog listing, and additional-image lookup.
// It depends on port interfaces, not concrete implementations.
type GalleryService struct {
	collection ports.CollectionClient
	translator ports.Translator
	logger     *slog.Logger
}

// GalleryServiceConfig contains the dependencies of the gallery service.
type GalleryServiceConfig struct {
	Collection ports.CollectionClient
	Translator ports.Translator
	Logger     *slog.Logger
}

// NewGalleryService creates a new gallery service with the provided dependencies.
func NewGalleryService(cfg GalleryServiceConfig) *GalleryService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &GalleryService{
		collection: cfg.Collection,
		translator: cfg.Translator,
		logger:     logger,
	}
}

// Departments lists every curatorial department with its display name
// translated. A failed translation silently keeps the upstream name.
func (s *GalleryService) Departments(ctx context.Context) ([]domain.Department, error) {
	s.logger.InfoContext(ctx, "listing departments")

	departments, err := s.collection.ListDepartments(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list departments",
			slog.Any("error", err),
		)
		return nil, err
	}

	// One translation per department, all in flight at once. Translate
	// cannot fail, so the error slot is always nil.
	fns := make([]func(context.Context) (string, error), len(departments))
	for i := range departments {
		name := departments[i].DisplayName
		fns[i] = func(ctx context.Context) (string, error) {
			return s.translator.Translate(ctx, name), nil
		}
	}

	translated, err := Parallel(ctx, fns...)
	if err != nil {
		return nil, err
	}

	for i := range departments {
		departments[i].DisplayName = translated[i]
	}

	s.logger.InfoContext(ctx, "listed departments",
		slog.Int("count", len(departments)),
	)

	return departments, nil
}

// SearchResult bundles a results page with the department list used to
// populate the search filter form.
type SearchResult struct {
	Page        *domain.ObjectPage
	Departments []domain.Department
}

// Search runs a filtered collection search and aggregates one page of
// object details. The department list is fetched in parallel with the
// search so the filter form can be re-rendered alongside the results.
//
// Page size is fixed at SearchPageSize and total pages are computed from
// the upstream-reported total.
func (s *GalleryService) Search(ctx context.Context, filters domain.SearchFilters, page int) (*SearchResult, error) {
	s.logger.InfoContext(ctx, "searching objects",
		slog.String("keyword", filters.Keyword),
		slog.Int("page", page),
	)

	departments, objectPage, err := Parallel2(ctx,
		func(ctx context.Context) ([]domain.Department, error) {
			return s.Departments(ctx)
		},
		func(ctx context.Context) (*domain.ObjectPage, error) {
			return s.searchPage(ctx, filters, page)
		},
	)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Page:        objectPage,
		Departments: departments,
	}, nil
}

// searchPage performs the id search and page aggregation for Search.
func (s *GalleryService) searchPage(ctx context.Context, filters domain.SearchFilters, page int) (*domain.ObjectPage, error) {
	ids, total, err := s.collection.SearchObjects(ctx, filters)
	if err != nil {
		s.logger.ErrorContext(ctx, "object search failed",
			slog.Any("error", err),
		)
		return nil, err
	}

	// Zero matches short-circuits straight to an empty page: no detail
	// fetches, no translations.
	if len(ids) == 0 {
		return &domain.ObjectPage{
			Objects:     []*domain.ArtObject{},
			CurrentPage: page,
			TotalPages:  0,
			Filters:     filters,
		}, nil
	}

	lo, hi := PageBounds(len(ids), page, SearchPageSize)

	objects, err := s.fetchObjects(ctx, ids[lo:hi])
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "search page aggregated",
		slog.Int("total", total),
		slog.Int("rendered", len(objects)),
	)

	return &domain.ObjectPage{
		Objects:     objects,
		CurrentPage: page,
		TotalPages:  TotalPages(total, SearchPageSize),
		Filters:     filters,
	}, nil
}

// Results aggregates one page of the full catalog listing.
//
// Unlike Search, total pages here are recomputed from the full id listing
// rather than the upstream-reported total. The two routes have always
// paginated differently and both behaviors are kept as-is.
func (s *GalleryService) Results(ctx context.Context, page int) (*domain.ObjectPage, error) {
	s.logger.InfoContext(ctx, "listing catalog page",
		slog.Int("page", page),
	)

	ids, _, err := s.collection.SearchObjects(ctx, domain.SearchFilters{})
	if err != nil {
		s.logger.ErrorContext(ctx, "catalog listing failed",
			slog.Any("error", err),
		)
		return nil, err
	}

	if len(ids) == 0 {
		return &domain.ObjectPage{
			Objects:     []*domain.ArtObject{},
			CurrentPage: page,
			TotalPages:  0,
		}, nil
	}

	lo, hi := PageBounds(len(ids), page, ResultsPageSize)

	objects, err := s.fetchObjects(ctx, ids[lo:hi])
	if err != nil {
		return nil, err
	}

	return &domain.ObjectPage{
		Objects:     objects,
		CurrentPage: page,
		TotalPages:  TotalPages(len(ids), ResultsPageSize),
	}, nil
}

// AdditionalImages returns the additional image URLs of a single object.
// The slice is empty, never nil, when the object has no further images.
// An unknown object id propagates domain.ErrNotFound.
func (s *GalleryService) AdditionalImages(ctx context.Context, id int) ([]string, error) {
	s.logger.InfoContext(ctx, "fetching additional images",
		slog.Int("object_id", id),
	)

	object, err := s.collection.GetObject(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(object.AdditionalImages) == 0 {
		return []string{}, nil
	}

	return object.AdditionalImages, nil
}

// fetchObjects fans out one detail fetch per id and collects the results in
// id order. An object the upstream reports as 404 is dropped; any other
// fetch error fails the whole batch. Found objects have their text fields
// translated and objects without a primary image are filtered out.
func (s *GalleryService) fetchObjects(ctx context.Context, ids []int) ([]*domain.ArtObject, error) {
	fns := make([]func(context.Context) (*domain.ArtObject, error), len(ids))
	for i, id := range ids {
		id := id

		fns[i] = func(ctx context.Context) (*domain.ArtObject, error) {
			object, err := s.collection.GetObject(ctx, id)
			if err != nil {
				if domain.IsNotFound(err) {
					s.logger.DebugContext(ctx, "object missing upstream, dropping",
						slog.Int("object_id", id),
					)
					return nil, nil
				}

				return nil, fmt.Errorf("fetching object %d: %w", id, err)
			}

			s.translateObject(ctx, object)

			return object, nil
		}
	}

	fetched, err := Parallel(ctx, fns...)
	if err != nil {
		return nil, err
	}

	objects := make([]*domain.ArtObject, 0, len(fetched))
	for _, object := range fetched {
		if object.HasImage() {
			objects = append(objects, object)
		}
	}

	return objects, nil
}

// translateObject translates the present text fields of an object in
// parallel. Each goroutine writes a disjoint field, so completion order is
// irrelevant. Translation cannot fail, so neither can this.
func (s *GalleryService) translateObject(ctx context.Context, object *domain.ArtObject) {
	fields := make([]*string, 0, 3)
	for _, field := range []*string{&object.Title, &object.Culture, &object.Dynasty} {
		if *field != "" {
			fields = append(fields, field)
		}
	}

	if len(fields) == 0 {
		return
	}

	fns := make([]func(context.Context) (string, error), len(fields))
	for i, field := range fields {
		text := *field
		fns[i] = func(ctx context.Context) (string, error) {
			return s.translator.Translate(ctx, text), nil
		}
	}

	translated, err := Parallel(ctx, fns...)
	if err != nil {
		return
	}

	for i, field := range fields {
		*field = translated[i]
	}
}
