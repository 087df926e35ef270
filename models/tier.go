package models

type Tier int

const (
	// TierUnknown is the zero value, used for organizations that were never
	// assigned a tier. Every quota and feature is denied for it.
	TierUnknown Tier = iota
	TierStarter
	TierProfessional
	TierEnterprise
)

var ValidTiers = []Tier{TierStarter, TierProfessional, TierEnterprise}

// Provide a string value for each tier
func (t Tier) String() string {
	switch t {
	case TierStarter:
		return "starter"
	case TierProfessional:
		return "professional"
	case TierEnterprise:
		return "enterprise"
	}
	return "unknown"
}

// Provide a Tier from a string value
func TierFromString(s string) Tier {
	switch s {
	case "starter":
		return TierStarter
	case "professional":
		return TierProfessional
	case "enterprise":
		return TierEnterprise
	}
	return TierUnknown
}

type SubscriptionStatus int

const (
	SubscriptionNone SubscriptionStatus = iota
	SubscriptionTrialing
	SubscriptionActive
	SubscriptionPastDue
	SubscriptionCancelled
)

func (s SubscriptionStatus) String() string {
	switch s {
	case SubscriptionTrialing:
		return "trialing"
	case SubscriptionActive:
		return "active"
	case SubscriptionPastDue:
		return "past_due"
	case SubscriptionCancelled:
		return "cancelled"
	}
	return "none"
}

func SubscriptionStatusFromString(s string) SubscriptionStatus {
	switch s {
	case "trialing":
		return SubscriptionTrialing
	case "active":
		return SubscriptionActive
	case "past_due":
		return SubscriptionPastDue
	case "cancelled":
		return SubscriptionCancelled
	}
	return SubscriptionNone
}
