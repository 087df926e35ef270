package models

import (
	"time"

	"github.com/guregu/null/v5"
)

type Organization struct {
	Id                 string
	Name               string
	Tier               Tier
	SubscriptionStatus SubscriptionStatus
	StripeCustomerId   null.String
	TrialEndsAt        null.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type CreateOrganizationInput struct {
	Name string
	Tier Tier
}

// UpdateSubscriptionInput carries a subscription state change, typically
// derived from a billing webhook event.
type UpdateSubscriptionInput struct {
	OrganizationId     string
	Tier               Tier
	SubscriptionStatus SubscriptionStatus
	TrialEndsAt        null.Time
}

// OrganizationEntitlements is the full licensing snapshot of an organization:
// its tier, subscription status and the resolved feature flags and quotas.
// Transient, recomputed on every call.
type OrganizationEntitlements struct {
	Tier               Tier
	SubscriptionStatus SubscriptionStatus
	Features           map[FeatureName]bool
	Limits             map[ResourceName]Limit
}
