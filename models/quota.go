package models

// QuotaCheck is the advisory result of a limit check: whether one more unit
// may be created, the live count and the applicable limit. It is computed
// from live counts on every call and never cached; the underlying counts can
// change between check and use, which is accepted. Hard enforcement happens
// again inside the mutating transaction.
type QuotaCheck struct {
	Allowed bool
	Current int
	Limit   Limit
}

// UpgradeBenefits describes what a tier change would unlock, for display
// only. PriceDifference may be negative for a downgrade pair.
type UpgradeBenefits struct {
	NewFeatures     []FeatureName
	PriceDifference int64
}
