package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	programmodels "growthsphere/internal/program/models"
	dErrors "growthsphere/pkg/domain-errors"
)

func validStrategy() *StrategyProfile {
	return &StrategyProfile{
		ProgramID: primitive.NewObjectID().Hex(),
		Metadata:  StrategyMetadata{Name: "Buyout"},
	}
}

func TestStrategyValidate(t *testing.T) {
	t.Run("valid strategy passes", func(t *testing.T) {
		s := validStrategy()
		s.Normalize()
		require.NoError(t, s.Validate())
	})

	t.Run("missing program_id rejected", func(t *testing.T) {
		s := validStrategy()
		s.ProgramID = ""
		s.Normalize()
		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, dErrors.FieldsOf(err), "program_id: must not be empty")
	})

	t.Run("missing metadata name rejected", func(t *testing.T) {
		s := validStrategy()
		s.Metadata.Name = ""
		s.Normalize()
		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, dErrors.FieldsOf(err), "metadata.name: must not be empty")
	})

	t.Run("invalid override enum rejected with path", func(t *testing.T) {
		s := validStrategy()
		bad := programmodels.OrgType("Hedge fund")
		s.Overrides = &StrategyOverrides{OrganizationType: &bad}
		s.Normalize()
		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, dErrors.FieldsOf(err), "overrides.organization_type: must be a valid organization type")
	})

	t.Run("program_id syntax is not a schema concern", func(t *testing.T) {
		// Existence and well-formedness of the reference are checked by the
		// service against the program module, not by the schema.
		s := validStrategy()
		s.ProgramID = "not-an-id"
		s.Normalize()
		require.NoError(t, s.Validate())
	})
}

func TestStrategyNormalize(t *testing.T) {
	t.Run("nil sectors becomes empty list", func(t *testing.T) {
		s := validStrategy()
		s.Normalize()
		require.NotNil(t, s.Sectors)
		assert.Empty(t, s.Sectors)
	})

	t.Run("nil overrides becomes empty overrides object", func(t *testing.T) {
		s := validStrategy()
		s.Normalize()
		require.NotNil(t, s.Overrides)
		assert.Nil(t, s.Overrides.OrganizationType)
		assert.Nil(t, s.Overrides.RegulatoryFlags)
	})

	t.Run("override eligibility fills omitted regions", func(t *testing.T) {
		s := validStrategy()
		s.Overrides = &StrategyOverrides{
			MarketingEligibility: &programmodels.MarketingEligibility{UK: programmodels.NotEligible},
		}
		s.Normalize()
		assert.Equal(t, programmodels.Eligible, s.Overrides.MarketingEligibility.NA)
		assert.Equal(t, programmodels.NotEligible, s.Overrides.MarketingEligibility.UK)
	})
}
