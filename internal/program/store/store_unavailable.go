package store

import (
	"context"

	"growthsphere/internal/program/models"
	"growthsphere/pkg/domain"
	dErrors "growthsphere/pkg/domain-errors"
)

// Unavailable is the Store used when the document store was never configured
// or could not be reached at startup. The process still serves liveness and
// diagnostics; every data operation reports the store as unavailable.
type Unavailable struct{}

func NewUnavailable() Unavailable { return Unavailable{} }

func (Unavailable) Insert(ctx context.Context, program *models.OrganizationProgram) (domain.ProgramID, error) {
	return domain.ProgramID{}, errUnavailable()
}

func (Unavailable) FindByID(ctx context.Context, id domain.ProgramID) (*models.OrganizationProgram, error) {
	return nil, errUnavailable()
}

func (Unavailable) List(ctx context.Context, limit int64) ([]*models.OrganizationProgram, error) {
	return nil, errUnavailable()
}

func errUnavailable() error {
	return dErrors.New(dErrors.CodeUnavailable, "document store is not available")
}
