package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierCatalog_quotas_are_monotonic(t *testing.T) {
	pairs := [][2]Tier{
		{TierStarter, TierProfessional},
		{TierProfessional, TierEnterprise},
		{TierStarter, TierEnterprise},
	}

	for _, pair := range pairs {
		lower, higher := pair[0], pair[1]
		for _, resource := range ValidResourceNames {
			assert.Truef(t,
				higher.Quota(resource).GreaterOrEqual(lower.Quota(resource)),
				"quota for %s must not decrease from %s to %s", resource, lower, higher)
		}
	}
}

func TestTierCatalog_features_are_inherited_upward(t *testing.T) {
	pairs := [][2]Tier{
		{TierStarter, TierProfessional},
		{TierProfessional, TierEnterprise},
	}

	for _, pair := range pairs {
		lower, higher := pair[0], pair[1]
		for _, feature := range ValidFeatureNames {
			if lower.HasFeature(feature) {
				assert.Truef(t, higher.HasFeature(feature),
					"feature %s enabled on %s must stay enabled on %s", feature, lower, higher)
			}
		}
	}
}

func TestTierCatalog_every_tier_covers_all_resources_and_features(t *testing.T) {
	for _, tier := range ValidTiers {
		config := tier.Configuration()
		assert.Len(t, config.Quotas, len(ValidResourceNames))
		assert.Len(t, config.Features, len(ValidFeatureNames))
		assert.NotEmpty(t, config.DisplayName)
		assert.Positive(t, config.MonthlyPrice)
	}
}

func TestTierUnknown_denies_everything(t *testing.T) {
	for _, resource := range ValidResourceNames {
		assert.False(t, TierUnknown.Quota(resource).Allows(0))
	}
	for _, feature := range ValidFeatureNames {
		assert.False(t, TierUnknown.HasFeature(feature))
	}
}

func TestLimit_Allows(t *testing.T) {
	limit := FiniteLimit(25)

	assert.True(t, limit.Allows(24))
	assert.False(t, limit.Allows(25), "at the limit, one more unit is not allowed")
	assert.False(t, limit.Allows(26), "over the limit, after a quota was lowered")

	assert.True(t, Unlimited.Allows(0))
	assert.True(t, Unlimited.Allows(10000))
}

func TestLimit_Int_wire_encoding(t *testing.T) {
	assert.Equal(t, 25, FiniteLimit(25).Int())
	assert.Equal(t, -1, Unlimited.Int())
}

func TestTierFromString_round_trip(t *testing.T) {
	for _, tier := range ValidTiers {
		assert.Equal(t, tier, TierFromString(tier.String()))
	}
	assert.Equal(t, TierUnknown, TierFromString("gold"))
}
