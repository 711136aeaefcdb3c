// Package service orchestrates StrategyProfile operations, including the
// advisory referential check against the program module.
package service

import (
	"context"

	"growthsphere/internal/platform/metrics"
	programmodels "growthsphere/internal/program/models"
	"growthsphere/internal/strategy/models"
	"growthsphere/internal/strategy/store"
	"growthsphere/pkg/domain"
	dErrors "growthsphere/pkg/domain-errors"
)

// ProgramResolver is the slice of the program service this module needs for
// the parent existence check.
type ProgramResolver interface {
	Get(ctx context.Context, id domain.ProgramID) (*programmodels.OrganizationProgram, error)
}

type Service struct {
	strategies store.Store
	programs   ProgramResolver
	metrics    *metrics.Metrics
}

func New(strategies store.Store, programs ProgramResolver, m *metrics.Metrics) *Service {
	return &Service{strategies: strategies, programs: programs, metrics: m}
}

// Create validates the strategy, verifies its program_id resolves to an
// existing program, and persists it.
//
// The existence check is advisory: it reads then writes without any lock, so
// a program observed here could in principle disappear before the insert
// commits. No delete operation exists, which makes that race unreachable in
// practice; this is accepted rather than re-architected with transactions.
func (s *Service) Create(ctx context.Context, strategy *models.StrategyProfile) (domain.StrategyID, error) {
	strategy.Normalize()
	if err := strategy.Validate(); err != nil {
		return domain.StrategyID{}, err
	}

	programID, err := domain.ParseProgramID(strategy.ProgramID)
	if err != nil {
		return domain.StrategyID{}, err
	}
	if _, err := s.programs.Get(ctx, programID); err != nil {
		return domain.StrategyID{}, err
	}

	id, err := s.strategies.Insert(ctx, strategy)
	if err != nil {
		return domain.StrategyID{}, wrapStoreErr(err, "failed to create strategy")
	}
	s.metrics.IncrementStrategiesCreated()
	return id, nil
}

// List returns up to limit strategies, optionally filtered by exact
// program_id equality. The filter value is matched as-is against stored
// documents and is never parsed.
func (s *Service) List(ctx context.Context, filter store.ListFilter, limit int64) ([]*models.StrategyProfile, error) {
	strategies, err := s.strategies.List(ctx, filter, limit)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to list strategies")
	}
	return strategies, nil
}

func wrapStoreErr(err error, msg string) error {
	if dErrors.HasCode(err, dErrors.CodeUnavailable) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}
