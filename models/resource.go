package models

// ResourceName identifies a countable resource bounded by a tier quota.
// Headcount resources count live records; per-month resources count records
// created within the current calendar month.
type ResourceName string

const (
	ResourceMembers          ResourceName = "members"
	ResourceCoaches          ResourceName = "coaches"
	ResourceSessionsPerMonth ResourceName = "sessions_per_month"
	ResourcePaymentsPerMonth ResourceName = "payments_per_month"

	ResourceUnknown ResourceName = "unknown"
)

var ValidResourceNames = []ResourceName{
	ResourceMembers,
	ResourceCoaches,
	ResourceSessionsPerMonth,
	ResourcePaymentsPerMonth,
}

func ResourceNameFromString(s string) ResourceName {
	switch ResourceName(s) {
	case ResourceMembers:
		return ResourceMembers
	case ResourceCoaches:
		return ResourceCoaches
	case ResourceSessionsPerMonth:
		return ResourceSessionsPerMonth
	case ResourcePaymentsPerMonth:
		return ResourcePaymentsPerMonth
	}
	return ResourceUnknown
}

func (r ResourceName) String() string {
	return string(r)
}

type FeatureName string

const (
	FeatureMemberManagement   FeatureName = "member_management"
	FeatureSessionScheduling  FeatureName = "session_scheduling"
	FeatureAttendanceTracking FeatureName = "attendance_tracking"
	FeaturePaymentTracking    FeatureName = "payment_tracking"
	FeatureStripePayments     FeatureName = "stripe_payments"
	FeatureSmsNotifications   FeatureName = "sms_notifications"
	FeatureEmailNotifications FeatureName = "email_notifications"
	FeaturePushNotifications  FeatureName = "push_notifications"
	FeatureAdvancedReports    FeatureName = "advanced_reports"
	FeatureMultiLocation      FeatureName = "multi_location"
	FeatureCustomBranding     FeatureName = "custom_branding"
	FeatureApiAccess          FeatureName = "api_access"
	FeaturePrioritySupport    FeatureName = "priority_support"
	FeatureProgressTracking   FeatureName = "progress_tracking"
	FeatureEventManagement    FeatureName = "event_management"
	FeatureMarketingTools     FeatureName = "marketing_tools"

	FeatureUnknown FeatureName = "unknown"
)

var ValidFeatureNames = []FeatureName{
	FeatureMemberManagement,
	FeatureSessionScheduling,
	FeatureAttendanceTracking,
	FeaturePaymentTracking,
	FeatureStripePayments,
	FeatureSmsNotifications,
	FeatureEmailNotifications,
	FeaturePushNotifications,
	FeatureAdvancedReports,
	FeatureMultiLocation,
	FeatureCustomBranding,
	FeatureApiAccess,
	FeaturePrioritySupport,
	FeatureProgressTracking,
	FeatureEventManagement,
	FeatureMarketingTools,
}

func FeatureNameFromString(s string) FeatureName {
	for _, name := range ValidFeatureNames {
		if FeatureName(s) == name {
			return name
		}
	}
	return FeatureUnknown
}

func (f FeatureName) String() string {
	return string(f)
}
