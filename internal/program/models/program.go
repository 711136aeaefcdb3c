// Package models defines the OrganizationProgram entity and its ingress
// validation. Collection name is the lowercase entity type name.
package models

import (
	"net/mail"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	dErrors "growthsphere/pkg/domain-errors"
)

// OrgType classifies the investor organization.
type OrgType string

const (
	OrgTypePublicPension       OrgType = "Public pension"
	OrgTypeCorporatePension    OrgType = "Corporate pension"
	OrgTypeEndowment           OrgType = "Endowment"
	OrgTypeFoundation          OrgType = "Foundation"
	OrgTypeFamilyOffice        OrgType = "Family office"
	OrgTypeSovereignWealthFund OrgType = "Sovereign wealth fund"
	OrgTypeInsurance           OrgType = "Insurance"
	OrgTypeFundOfFunds         OrgType = "Fund-of-funds"
	OrgTypeOther               OrgType = "Other"
)

func (t OrgType) IsValid() bool {
	switch t {
	case OrgTypePublicPension, OrgTypeCorporatePension, OrgTypeEndowment,
		OrgTypeFoundation, OrgTypeFamilyOffice, OrgTypeSovereignWealthFund,
		OrgTypeInsurance, OrgTypeFundOfFunds, OrgTypeOther:
		return true
	}
	return false
}

// Region is a domicile region.
type Region string

const (
	RegionUS    Region = "US"
	RegionUK    Region = "UK"
	RegionEU    Region = "EU"
	RegionMENA  Region = "MENA"
	RegionAPAC  Region = "APAC"
	RegionOther Region = "Other"
)

func (r Region) IsValid() bool {
	switch r {
	case RegionUS, RegionUK, RegionEU, RegionMENA, RegionAPAC, RegionOther:
		return true
	}
	return false
}

// EligibilityStatus is a per-region marketing eligibility state.
type EligibilityStatus string

const (
	Eligible    EligibilityStatus = "Eligible"
	NotEligible EligibilityStatus = "Not eligible"
)

func (s EligibilityStatus) IsValid() bool {
	return s == Eligible || s == NotEligible
}

// PrimaryContact is the structured contact sub-object of a program.
type PrimaryContact struct {
	Name  string `bson:"name" json:"name"`
	Title string `bson:"title,omitempty" json:"title,omitempty"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// RegulatoryFlags holds regulatory regime markers; all default false/empty.
// Field casing follows the persisted document shape.
type RegulatoryFlags struct {
	ERISA       bool   `bson:"ERISA" json:"ERISA"`
	AIFMD       bool   `bson:"AIFMD" json:"AIFMD"`
	SFDRArt8or9 bool   `bson:"SFDR_Art_8_9" json:"SFDR_Art_8_9"`
	FOIA        bool   `bson:"FOIA" json:"FOIA"`
	Other       string `bson:"Other,omitempty" json:"Other,omitempty"`
}

// MarketingEligibility records per-region eligibility; every region defaults
// to Eligible.
type MarketingEligibility struct {
	NA   EligibilityStatus `bson:"NA" json:"NA"`
	EU   EligibilityStatus `bson:"EU" json:"EU"`
	UK   EligibilityStatus `bson:"UK" json:"UK"`
	APAC EligibilityStatus `bson:"APAC" json:"APAC"`
}

// DefaultMarketingEligibility returns the documented default: all Eligible.
func DefaultMarketingEligibility() *MarketingEligibility {
	return &MarketingEligibility{NA: Eligible, EU: Eligible, UK: Eligible, APAC: Eligible}
}

// Normalize fills omitted regions with the Eligible default.
func (m *MarketingEligibility) Normalize() {
	if m.NA == "" {
		m.NA = Eligible
	}
	if m.EU == "" {
		m.EU = Eligible
	}
	if m.UK == "" {
		m.UK = Eligible
	}
	if m.APAC == "" {
		m.APAC = Eligible
	}
}

// Validate appends a field-path-qualified message per invalid region.
func (m *MarketingEligibility) Validate(path string, fields []string) []string {
	regions := []struct {
		name   string
		status EligibilityStatus
	}{
		{"NA", m.NA}, {"EU", m.EU}, {"UK", m.UK}, {"APAC", m.APAC},
	}
	for _, r := range regions {
		if !r.status.IsValid() {
			fields = append(fields, path+"."+r.name+": must be 'Eligible' or 'Not eligible'")
		}
	}
	return fields
}

// OrganizationProgram is an investor organization's profile.
//
// Identity is assigned by the store on creation and immutable thereafter.
// There is no update or delete operation for programs.
type OrganizationProgram struct {
	ID                    primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	OrganizationName      string                `bson:"organization_name" json:"organization_name"`
	OrganizationType      OrgType               `bson:"organization_type" json:"organization_type"`
	OrganizationTypeOther string                `bson:"organization_type_other,omitempty" json:"organization_type_other,omitempty"`
	Website               string                `bson:"website,omitempty" json:"website,omitempty"`
	PrimaryContact        PrimaryContact        `bson:"primary_contact" json:"primary_contact"`
	DomicileRegion        Region                `bson:"domicile_region" json:"domicile_region"`
	RegulatoryFlags       *RegulatoryFlags      `bson:"regulatory_flags" json:"regulatory_flags"`
	MarketingEligibility  *MarketingEligibility `bson:"marketing_eligibility" json:"marketing_eligibility"`
}

// Normalize trims the name and fills documented defaults for omitted groups.
// Call before Validate so defaults are never reported as violations.
func (p *OrganizationProgram) Normalize() {
	p.OrganizationName = strings.TrimSpace(p.OrganizationName)
	if p.RegulatoryFlags == nil {
		p.RegulatoryFlags = &RegulatoryFlags{}
	}
	if p.MarketingEligibility == nil {
		p.MarketingEligibility = DefaultMarketingEligibility()
	} else {
		p.MarketingEligibility.Normalize()
	}
}

// Validate checks every schema constraint and returns a single validation
// error enumerating all violated fields, or nil.
//
// There is deliberately no cross-field validation: organization_type "Other"
// does not require organization_type_other.
func (p *OrganizationProgram) Validate() error {
	var fields []string

	if p.OrganizationName == "" {
		fields = append(fields, "organization_name: must not be empty")
	}
	if !p.OrganizationType.IsValid() {
		fields = append(fields, "organization_type: must be a valid organization type")
	}
	if p.PrimaryContact.Name == "" {
		fields = append(fields, "primary_contact.name: must not be empty")
	}
	if p.PrimaryContact.Email == "" {
		fields = append(fields, "primary_contact.email: must not be empty")
	} else if !ValidEmail(p.PrimaryContact.Email) {
		fields = append(fields, "primary_contact.email: must be a valid email address")
	}
	if !p.DomicileRegion.IsValid() {
		fields = append(fields, "domicile_region: must be one of US, UK, EU, MENA, APAC, Other")
	}
	if p.MarketingEligibility != nil {
		fields = p.MarketingEligibility.Validate("marketing_eligibility", fields)
	}

	if len(fields) > 0 {
		return dErrors.NewValidation(fields)
	}
	return nil
}

// ValidEmail reports whether s is a syntactically valid bare address.
// Display-name forms like "Jane <jane@example.com>" are rejected.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
