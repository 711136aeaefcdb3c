package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"growthsphere/internal/program/models"
	"growthsphere/pkg/domain"
)

// Mongo implements Store on the shared database handle.
type Mongo struct {
	coll *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{coll: db.Collection(Collection)}
}

func (s *Mongo) Insert(ctx context.Context, program *models.OrganizationProgram) (domain.ProgramID, error) {
	// _id is tagged omitempty, so a zero ID is excluded and the store
	// assigns one.
	program.ID = primitive.NilObjectID
	res, err := s.coll.InsertOne(ctx, program)
	if err != nil {
		return domain.ProgramID{}, fmt.Errorf("insert program: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.ProgramID{}, fmt.Errorf("insert program: unexpected inserted id type %T", res.InsertedID)
	}
	return domain.ProgramID(oid), nil
}

func (s *Mongo) FindByID(ctx context.Context, id domain.ProgramID) (*models.OrganizationProgram, error) {
	var doc models.OrganizationProgram
	err := s.coll.FindOne(ctx, bson.M{"_id": id.ObjectID()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find program: %w", err)
	}
	return &doc, nil
}

func (s *Mongo) List(ctx context.Context, limit int64) ([]*models.OrganizationProgram, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetLimit(normalizeLimit(limit)))
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	defer cursor.Close(ctx)

	out := []*models.OrganizationProgram{}
	for cursor.Next(ctx) {
		var doc models.OrganizationProgram
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode program: %w", err)
		}
		out = append(out, &doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return out, nil
}
