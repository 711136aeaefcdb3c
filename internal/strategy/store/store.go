// Package store persists StrategyProfile documents in the "strategyprofile"
// collection.
package store

import (
	"context"
	"errors"

	"growthsphere/internal/strategy/models"
	"growthsphere/pkg/domain"
)

// Collection is the store collection name: lowercase entity type name.
const Collection = "strategyprofile"

// DefaultLimit bounds list results when the caller does not say otherwise.
const DefaultLimit = 50

// ErrNotFound is returned when no document matches a well-formed identifier.
var ErrNotFound = errors.New("strategy not found")

// ListFilter is an equality filter over stored strategies. The zero value
// matches everything. ProgramID matches the stored string exactly and is
// never validated here; a well-formed id that references nothing simply
// matches no documents.
type ListFilter struct {
	ProgramID string
}

// Store is the persistence port for strategies. Results come back in
// store-native order; neither implementation applies an explicit sort.
type Store interface {
	Insert(ctx context.Context, strategy *models.StrategyProfile) (domain.StrategyID, error)
	List(ctx context.Context, filter ListFilter, limit int64) ([]*models.StrategyProfile, error)
}

func normalizeLimit(limit int64) int64 {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
