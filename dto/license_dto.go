package dto

import (
	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/pure_utils"
)

// QuotaCheckDto encodes an unlimited quota as limit = -1 on the wire.
type QuotaCheckDto struct {
	Allowed bool `json:"allowed"`
	Current int  `json:"current"`
	Limit   int  `json:"limit"`
}

func AdaptQuotaCheckDto(check models.QuotaCheck) QuotaCheckDto {
	return QuotaCheckDto{
		Allowed: check.Allowed,
		Current: check.Current,
		Limit:   check.Limit.Int(),
	}
}

type FeatureAccessDto struct {
	HasAccess bool `json:"hasAccess"`
}

// EntitlementsDto is the currentTier payload. Tier is null when the
// organization has never been assigned one.
type EntitlementsDto struct {
	Tier        *string         `json:"tier"`
	Status      string          `json:"status"`
	Features    map[string]bool `json:"features"`
	Limitations map[string]int  `json:"limitations"`
}

func AdaptEntitlementsDto(entitlements models.OrganizationEntitlements) EntitlementsDto {
	var tier *string
	if entitlements.Tier != models.TierUnknown {
		tierName := entitlements.Tier.String()
		tier = &tierName
	}

	features := make(map[string]bool, len(entitlements.Features))
	for feature, enabled := range entitlements.Features {
		features[feature.String()] = enabled
	}
	limitations := make(map[string]int, len(entitlements.Limits))
	for resource, limit := range entitlements.Limits {
		limitations[resource.String()] = limit.Int()
	}

	return EntitlementsDto{
		Tier:        tier,
		Status:      entitlements.SubscriptionStatus.String(),
		Features:    features,
		Limitations: limitations,
	}
}

type UpgradeBenefitsDto struct {
	NewFeatures     []string `json:"newFeatures"`
	PriceDifference int64    `json:"priceDifference"`
}

func AdaptUpgradeBenefitsDto(benefits models.UpgradeBenefits) UpgradeBenefitsDto {
	return UpgradeBenefitsDto{
		NewFeatures: pure_utils.Map(benefits.NewFeatures,
			func(f models.FeatureName) string { return f.String() }),
		PriceDifference: benefits.PriceDifference,
	}
}
