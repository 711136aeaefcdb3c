// Package store persists OrganizationProgram documents in the
// "organizationprogram" collection.
package store

import (
	"context"
	"errors"

	"growthsphere/internal/program/models"
	"growthsphere/pkg/domain"
)

// Collection is the store collection name: lowercase entity type name.
const Collection = "organizationprogram"

// DefaultLimit bounds list results when the caller does not say otherwise.
const DefaultLimit = 50

// ErrNotFound is returned when no document matches a well-formed identifier.
var ErrNotFound = errors.New("program not found")

// Store is the persistence port for programs. Results come back in
// store-native order; neither implementation applies an explicit sort.
type Store interface {
	// Insert stores the program's fields as a new document, letting the
	// store assign the identity, and returns that identity.
	Insert(ctx context.Context, program *models.OrganizationProgram) (domain.ProgramID, error)
	// FindByID returns the document with the given identity or ErrNotFound.
	FindByID(ctx context.Context, id domain.ProgramID) (*models.OrganizationProgram, error)
	// List returns up to limit programs; limit <= 0 means DefaultLimit.
	List(ctx context.Context, limit int64) ([]*models.OrganizationProgram, error)
}

func normalizeLimit(limit int64) int64 {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
