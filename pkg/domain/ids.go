// Package domain defines typed identifiers parsed at trust boundaries.
//
// Identifiers are opaque strings at the HTTP boundary and MongoDB ObjectIDs
// internally. Parse functions are the only way to cross that boundary, so a
// structurally invalid id is rejected before any store access.
package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	dErrors "growthsphere/pkg/domain-errors"
)

// ProgramID identifies an OrganizationProgram document.
type ProgramID primitive.ObjectID

// StrategyID identifies a StrategyProfile document.
type StrategyID primitive.ObjectID

// ParseProgramID parses the hex form of a program identifier.
// Invariant: ParseProgramID(id.String()) round-trips exactly.
func ParseProgramID(s string) (ProgramID, error) {
	oid, err := parseObjectID(s)
	if err != nil {
		return ProgramID{}, err
	}
	return ProgramID(oid), nil
}

// ParseStrategyID parses the hex form of a strategy identifier.
func ParseStrategyID(s string) (StrategyID, error) {
	oid, err := parseObjectID(s)
	if err != nil {
		return StrategyID{}, err
	}
	return StrategyID(oid), nil
}

func parseObjectID(s string) (primitive.ObjectID, error) {
	if s == "" {
		return primitive.NilObjectID, dErrors.New(dErrors.CodeInvalidInput, "id must not be empty")
	}
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, dErrors.Wrap(err, dErrors.CodeInvalidInput, "id is not a valid identifier")
	}
	if oid.IsZero() {
		return primitive.NilObjectID, dErrors.New(dErrors.CodeInvalidInput, "id must not be the zero identifier")
	}
	return oid, nil
}

func (id ProgramID) String() string { return primitive.ObjectID(id).Hex() }
func (id ProgramID) IsZero() bool   { return primitive.ObjectID(id).IsZero() }

// ObjectID exposes the store-native form for persistence adapters only.
func (id ProgramID) ObjectID() primitive.ObjectID { return primitive.ObjectID(id) }

func (id StrategyID) String() string { return primitive.ObjectID(id).Hex() }
func (id StrategyID) IsZero() bool   { return primitive.ObjectID(id).IsZero() }

func (id StrategyID) ObjectID() primitive.ObjectID { return primitive.ObjectID(id) }
