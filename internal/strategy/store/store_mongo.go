package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"growthsphere/internal/strategy/models"
	"growthsphere/pkg/domain"
)

// Mongo implements Store on the shared database handle.
type Mongo struct {
	coll *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{coll: db.Collection(Collection)}
}

func (s *Mongo) Insert(ctx context.Context, strategy *models.StrategyProfile) (domain.StrategyID, error) {
	strategy.ID = primitive.NilObjectID
	res, err := s.coll.InsertOne(ctx, strategy)
	if err != nil {
		return domain.StrategyID{}, fmt.Errorf("insert strategy: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.StrategyID{}, fmt.Errorf("insert strategy: unexpected inserted id type %T", res.InsertedID)
	}
	return domain.StrategyID(oid), nil
}

func (s *Mongo) List(ctx context.Context, filter ListFilter, limit int64) ([]*models.StrategyProfile, error) {
	query := bson.M{}
	if filter.ProgramID != "" {
		query["program_id"] = filter.ProgramID
	}

	cursor, err := s.coll.Find(ctx, query, options.Find().SetLimit(normalizeLimit(limit)))
	if err != nil {
		return nil, fmt.Errorf("list strategies: %w", err)
	}
	defer cursor.Close(ctx)

	out := []*models.StrategyProfile{}
	for cursor.Next(ctx) {
		var doc models.StrategyProfile
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode strategy: %w", err)
		}
		out = append(out, &doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list strategies: %w", err)
	}
	return out, nil
}
