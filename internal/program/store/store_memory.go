package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"growthsphere/internal/program/models"
	"growthsphere/pkg/domain"
)

// InMemory is a map-backed Store for tests and local development.
// Documents are returned in insertion order.
type InMemory struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]models.OrganizationProgram
}

func NewInMemory() *InMemory {
	return &InMemory{docs: make(map[primitive.ObjectID]models.OrganizationProgram)}
}

func (s *InMemory) Insert(ctx context.Context, program *models.OrganizationProgram) (domain.ProgramID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := primitive.NewObjectID()
	doc := *program
	doc.ID = id
	s.docs[id] = doc
	s.order = append(s.order, id)
	return domain.ProgramID(id), nil
}

func (s *InMemory) FindByID(ctx context.Context, id domain.ProgramID) (*models.OrganizationProgram, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id.ObjectID()]
	if !ok {
		return nil, ErrNotFound
	}
	return &doc, nil
}

func (s *InMemory) List(ctx context.Context, limit int64) ([]*models.OrganizationProgram, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit = normalizeLimit(limit)
	out := make([]*models.OrganizationProgram, 0, len(s.order))
	for _, id := range s.order {
		if int64(len(out)) >= limit {
			break
		}
		doc := s.docs[id]
		out = append(out, &doc)
	}
	return out, nil
}
