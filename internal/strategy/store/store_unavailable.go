package store

import (
	"context"

	"growthsphere/internal/strategy/models"
	"growthsphere/pkg/domain"
	dErrors "growthsphere/pkg/domain-errors"
)

// Unavailable is the Store used when the document store was never configured
// or could not be reached at startup.
type Unavailable struct{}

func NewUnavailable() Unavailable { return Unavailable{} }

func (Unavailable) Insert(ctx context.Context, strategy *models.StrategyProfile) (domain.StrategyID, error) {
	return domain.StrategyID{}, errUnavailable()
}

func (Unavailable) List(ctx context.Context, filter ListFilter, limit int64) ([]*models.StrategyProfile, error) {
	return nil, errUnavailable()
}

func errUnavailable() error {
	return dErrors.New(dErrors.CodeUnavailable, "document store is not available")
}
