// Package models defines the StrategyProfile entity. A strategy belongs to
// exactly one OrganizationProgram via program_id; the reference is checked at
// creation time but not enforced by the store.
package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	programmodels "growthsphere/internal/program/models"
	dErrors "growthsphere/pkg/domain-errors"
)

// StrategyMetadata names and annotates a strategy.
type StrategyMetadata struct {
	Name  string `bson:"name" json:"name"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// StrategyOverrides is a partial override of the parent program's fields.
// Absent fields mean "inherit from the parent program". Overrides are stored
// as-is and never merged with the parent; resolving the effective value is
// the consumer's job.
type StrategyOverrides struct {
	OrganizationType      *programmodels.OrgType              `bson:"organization_type,omitempty" json:"organization_type,omitempty"`
	OrganizationTypeOther *string                             `bson:"organization_type_other,omitempty" json:"organization_type_other,omitempty"`
	DomicileRegion        *programmodels.Region               `bson:"domicile_region,omitempty" json:"domicile_region,omitempty"`
	RegulatoryFlags       *programmodels.RegulatoryFlags      `bson:"regulatory_flags,omitempty" json:"regulatory_flags,omitempty"`
	MarketingEligibility  *programmodels.MarketingEligibility `bson:"marketing_eligibility,omitempty" json:"marketing_eligibility,omitempty"`
}

// StrategyProfile is an investment strategy scoped to a parent program.
//
// Identity is assigned by the store on creation and immutable. Strategies are
// created and listed only; there is no read-one, update, or delete endpoint.
type StrategyProfile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProgramID string             `bson:"program_id" json:"program_id"`
	Metadata  StrategyMetadata   `bson:"metadata" json:"metadata"`
	Sectors   []string           `bson:"sectors" json:"sectors"`
	Overrides *StrategyOverrides `bson:"overrides" json:"overrides"`
}

// Normalize trims the reference and fills defaults for omitted groups.
func (s *StrategyProfile) Normalize() {
	s.ProgramID = strings.TrimSpace(s.ProgramID)
	s.Metadata.Name = strings.TrimSpace(s.Metadata.Name)
	if s.Sectors == nil {
		s.Sectors = []string{}
	}
	if s.Overrides == nil {
		s.Overrides = &StrategyOverrides{}
	} else if s.Overrides.MarketingEligibility != nil {
		s.Overrides.MarketingEligibility.Normalize()
	}
}

// Validate checks every schema constraint and returns a single validation
// error enumerating all violated fields, or nil. Whether program_id resolves
// to an existing program is a service-level check, not a schema one.
func (s *StrategyProfile) Validate() error {
	var fields []string

	if s.ProgramID == "" {
		fields = append(fields, "program_id: must not be empty")
	}
	if s.Metadata.Name == "" {
		fields = append(fields, "metadata.name: must not be empty")
	}
	if s.Overrides != nil {
		if s.Overrides.OrganizationType != nil && !s.Overrides.OrganizationType.IsValid() {
			fields = append(fields, "overrides.organization_type: must be a valid organization type")
		}
		if s.Overrides.DomicileRegion != nil && !s.Overrides.DomicileRegion.IsValid() {
			fields = append(fields, "overrides.domicile_region: must be one of US, UK, EU, MENA, APAC, Other")
		}
		if s.Overrides.MarketingEligibility != nil {
			fields = s.Overrides.MarketingEligibility.Validate("overrides.marketing_eligibility", fields)
		}
	}

	if len(fields) > 0 {
		return dErrors.NewValidation(fields)
	}
	return nil
}
