// Package service orchestrates OrganizationProgram operations between the
// HTTP handlers and the store.
package service

import (
	"context"
	"errors"

	"growthsphere/internal/platform/metrics"
	"growthsphere/internal/program/models"
	"growthsphere/internal/program/store"
	"growthsphere/pkg/domain"
	dErrors "growthsphere/pkg/domain-errors"
)

type Service struct {
	programs store.Store
	metrics  *metrics.Metrics
}

func New(programs store.Store, m *metrics.Metrics) *Service {
	return &Service{programs: programs, metrics: m}
}

// Create validates and persists a new program, returning its store-assigned
// identity. Validation failures enumerate every violated field.
func (s *Service) Create(ctx context.Context, program *models.OrganizationProgram) (domain.ProgramID, error) {
	program.Normalize()
	if err := program.Validate(); err != nil {
		return domain.ProgramID{}, err
	}

	id, err := s.programs.Insert(ctx, program)
	if err != nil {
		return domain.ProgramID{}, wrapStoreErr(err, "failed to create program")
	}
	s.metrics.IncrementProgramsCreated()
	return id, nil
}

// Get returns the program with the given identity.
func (s *Service) Get(ctx context.Context, id domain.ProgramID) (*models.OrganizationProgram, error) {
	program, err := s.programs.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "program not found")
	}
	if err != nil {
		return nil, wrapStoreErr(err, "failed to fetch program")
	}
	return program, nil
}

// List returns up to limit programs in store-native order.
func (s *Service) List(ctx context.Context, limit int64) ([]*models.OrganizationProgram, error) {
	programs, err := s.programs.List(ctx, limit)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to list programs")
	}
	return programs, nil
}

func wrapStoreErr(err error, msg string) error {
	if dErrors.HasCode(err, dErrors.CodeUnavailable) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}
