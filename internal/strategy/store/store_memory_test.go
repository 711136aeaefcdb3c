package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"growthsphere/internal/strategy/models"
)

type StrategyStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *StrategyStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestStrategyStoreSuite(t *testing.T) {
	suite.Run(t, new(StrategyStoreSuite))
}

func (s *StrategyStoreSuite) newStrategy(programID, name string) *models.StrategyProfile {
	st := &models.StrategyProfile{
		ProgramID: programID,
		Metadata:  models.StrategyMetadata{Name: name},
	}
	st.Normalize()
	return st
}

// TestListFilter verifies exact program_id equality filtering.
func (s *StrategyStoreSuite) TestListFilter() {
	progA := primitive.NewObjectID().Hex()
	progB := primitive.NewObjectID().Hex()

	for _, name := range []string{"Buyout", "Growth"} {
		_, err := s.store.Insert(s.ctx, s.newStrategy(progA, name))
		s.Require().NoError(err)
	}
	_, err := s.store.Insert(s.ctx, s.newStrategy(progB, "VC"))
	s.Require().NoError(err)

	s.Run("empty filter returns everything", func() {
		strategies, err := s.store.List(s.ctx, ListFilter{}, 0)
		s.Require().NoError(err)
		s.Len(strategies, 3)
	})

	s.Run("filter returns exactly the matching program's strategies", func() {
		strategies, err := s.store.List(s.ctx, ListFilter{ProgramID: progA}, 0)
		s.Require().NoError(err)
		s.Require().Len(strategies, 2)
		for _, st := range strategies {
			s.Equal(progA, st.ProgramID)
		}
	})

	s.Run("filter on an unreferenced id matches nothing", func() {
		strategies, err := s.store.List(s.ctx, ListFilter{ProgramID: primitive.NewObjectID().Hex()}, 0)
		s.Require().NoError(err)
		s.Empty(strategies)
	})

	s.Run("limit bounds filtered results", func() {
		strategies, err := s.store.List(s.ctx, ListFilter{ProgramID: progA}, 1)
		s.Require().NoError(err)
		s.Len(strategies, 1)
	})
}

// TestInsert verifies identity assignment and stored shape.
func (s *StrategyStoreSuite) TestInsert() {
	progID := primitive.NewObjectID().Hex()
	id, err := s.store.Insert(s.ctx, s.newStrategy(progID, "Buyout"))
	s.Require().NoError(err)
	s.False(id.IsZero())

	strategies, err := s.store.List(s.ctx, ListFilter{}, 0)
	s.Require().NoError(err)
	s.Require().Len(strategies, 1)
	s.Equal(id.ObjectID(), strategies[0].ID)
	s.Equal(progID, strategies[0].ProgramID)
	s.NotNil(strategies[0].Sectors)
	s.NotNil(strategies[0].Overrides)
}
