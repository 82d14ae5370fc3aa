// Package acl provides Anti-Corruption Layer adapters for the downstream
// services: the museum collection API and the machine translation service.
//
// Each adapter owns its external DTOs (unexported), translates them to
// domain types, and maps external failures to domain errors so that
// external representations never leak past this package:
//
//   - 404 Not Found → [domain.ErrNotFound]
//   - 5xx/network errors → [domain.ErrUnavailable]
//
// The translation adapter is deliberately different: it never returns an
// error. Any failure, from transport errors to malformed bodies, yields
// the original text so that a broken translation service cannot take the
// gallery down.
package acl
