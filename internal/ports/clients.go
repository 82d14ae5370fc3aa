// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, ...)
package ports

import (
	"context"

	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/domain"
)

// CollectionClient is the outbound boundary to the museum collection API.
// All canonical department and object data lives behind this port; the
// service owns none of it.
type CollectionClient interface {
	// ListDepartments retrieves every curatorial department.
	// Returns domain.ErrUnavailable on network failure or non-2xx status;
	// there is no retry.
	ListDepartments(ctx context.Context) ([]domain.Department, error)

	// SearchObjects searches the collection with the given filters.
	// Absent filters are omitted from the upstream query, not wildcarded.
	// Zero matches yields an empty id slice and a nil error.
	// total is the upstream-reported match count, which may exceed len(ids).
	SearchObjects(ctx context.Context, filters domain.SearchFilters) (ids []int, total int, err error)

	// GetObject fetches a single object by id.
	// An upstream 404 maps to domain.ErrNotFound, which callers treat as
	// recoverable; any other failure maps to domain.ErrUnavailable.
	GetObject(ctx context.Context, id int) (*domain.ArtObject, error)
}

// Translator translates English text to Spanish.
//
// Translate never fails: on any error (network, quota, malformed response)
// the implementation returns the input text unchanged. The signature has no
// error return so callers cannot distinguish a successful no-op translation
// from a failed one.
type Translator interface {
	Translate(ctx context.Context, text string) string
}
