package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"growthsphere/internal/strategy/models"
	"growthsphere/pkg/domain"
)

// InMemory is a map-backed Store for tests and local development.
// Documents are returned in insertion order.
type InMemory struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]models.StrategyProfile
}

func NewInMemory() *InMemory {
	return &InMemory{docs: make(map[primitive.ObjectID]models.StrategyProfile)}
}

func (s *InMemory) Insert(ctx context.Context, strategy *models.StrategyProfile) (domain.StrategyID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := primitive.NewObjectID()
	doc := *strategy
	doc.ID = id
	s.docs[id] = doc
	s.order = append(s.order, id)
	return domain.StrategyID(id), nil
}

func (s *InMemory) List(ctx context.Context, filter ListFilter, limit int64) ([]*models.StrategyProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit = normalizeLimit(limit)
	out := []*models.StrategyProfile{}
	for _, id := range s.order {
		if int64(len(out)) >= limit {
			break
		}
		doc := s.docs[id]
		if filter.ProgramID != "" && doc.ProgramID != filter.ProgramID {
			continue
		}
		out = append(out, &doc)
	}
	return out, nil
}
