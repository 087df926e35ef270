package models

// TierConfiguration is the full static configuration of a tier: display
// metadata, monthly price (currency-agnostic), per-resource quotas and
// feature flags.
type TierConfiguration struct {
	DisplayName  string
	MonthlyPrice int64
	Quotas       map[ResourceName]Limit
	Features     map[FeatureName]bool
}

// TierConfigurations is the tier catalog. It is static and never mutated at
// runtime. Quotas and features must stay monotonically non-decreasing with
// tier rank (starter <= professional <= enterprise); this contract is not
// enforced here but is verified by the catalog tests.
var TierConfigurations = map[Tier]TierConfiguration{
	TierStarter: {
		DisplayName:  "Starter",
		MonthlyPrice: 29,
		Quotas: map[ResourceName]Limit{
			ResourceMembers:          FiniteLimit(25),
			ResourceCoaches:          FiniteLimit(2),
			ResourceSessionsPerMonth: FiniteLimit(50),
			ResourcePaymentsPerMonth: FiniteLimit(100),
		},
		Features: map[FeatureName]bool{
			FeatureMemberManagement:   true,
			FeatureSessionScheduling:  true,
			FeatureAttendanceTracking: true,
			FeaturePaymentTracking:    true,
			FeatureStripePayments:     false,
			FeatureSmsNotifications:   false,
			FeatureEmailNotifications: true,
			FeaturePushNotifications:  false,
			FeatureAdvancedReports:    false,
			FeatureMultiLocation:      false,
			FeatureCustomBranding:     false,
			FeatureApiAccess:          false,
			FeaturePrioritySupport:    false,
			FeatureProgressTracking:   true,
			FeatureEventManagement:    false,
			FeatureMarketingTools:     false,
		},
	},
	TierProfessional: {
		DisplayName:  "Professional",
		MonthlyPrice: 79,
		Quotas: map[ResourceName]Limit{
			ResourceMembers:          FiniteLimit(200),
			ResourceCoaches:          FiniteLimit(10),
			ResourceSessionsPerMonth: FiniteLimit(500),
			ResourcePaymentsPerMonth: FiniteLimit(1000),
		},
		Features: map[FeatureName]bool{
			FeatureMemberManagement:   true,
			FeatureSessionScheduling:  true,
			FeatureAttendanceTracking: true,
			FeaturePaymentTracking:    true,
			FeatureStripePayments:     true,
			FeatureSmsNotifications:   true,
			FeatureEmailNotifications: true,
			FeaturePushNotifications:  true,
			FeatureAdvancedReports:    true,
			FeatureMultiLocation:      false,
			FeatureCustomBranding:     false,
			FeatureApiAccess:          false,
			FeaturePrioritySupport:    false,
			FeatureProgressTracking:   true,
			FeatureEventManagement:    true,
			FeatureMarketingTools:     true,
		},
	},
	TierEnterprise: {
		DisplayName:  "Enterprise",
		MonthlyPrice: 199,
		Quotas: map[ResourceName]Limit{
			ResourceMembers:          Unlimited,
			ResourceCoaches:          Unlimited,
			ResourceSessionsPerMonth: Unlimited,
			ResourcePaymentsPerMonth: Unlimited,
		},
		Features: map[FeatureName]bool{
			FeatureMemberManagement:   true,
			FeatureSessionScheduling:  true,
			FeatureAttendanceTracking: true,
			FeaturePaymentTracking:    true,
			FeatureStripePayments:     true,
			FeatureSmsNotifications:   true,
			FeatureEmailNotifications: true,
			FeaturePushNotifications:  true,
			FeatureAdvancedReports:    true,
			FeatureMultiLocation:      true,
			FeatureCustomBranding:     true,
			FeatureApiAccess:          true,
			FeaturePrioritySupport:    true,
			FeatureProgressTracking:   true,
			FeatureEventManagement:    true,
			FeatureMarketingTools:     true,
		},
	},
}

// Configuration returns the catalog entry for the tier. TierUnknown maps to
// an empty configuration: every quota resolves to zero and every feature to
// false, which is the intended behavior for organizations without a tier.
func (t Tier) Configuration() TierConfiguration {
	config, ok := TierConfigurations[t]
	if !ok {
		return TierConfiguration{
			DisplayName: "No plan",
			Quotas:      map[ResourceName]Limit{},
			Features:    map[FeatureName]bool{},
		}
	}
	return config
}

// Quota returns the limit for a resource under the tier. Resources missing
// from the catalog entry resolve to a zero limit, denying creation.
func (t Tier) Quota(resource ResourceName) Limit {
	limit, ok := t.Configuration().Quotas[resource]
	if !ok {
		return FiniteLimit(0)
	}
	return limit
}

// HasFeature returns the catalog's flag for the feature under the tier,
// without any subscription-status override.
func (t Tier) HasFeature(feature FeatureName) bool {
	return t.Configuration().Features[feature]
}
