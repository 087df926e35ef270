package dto

type APIErrorResponse struct {
	Message   string    `json:"message"`
	ErrorCode ErrorCode `json:"error_code,omitempty"`
}

type ErrorCode string

const (
	// licensing related
	QuotaExceeded       ErrorCode = "quota_exceeded"
	FeatureNotAvailable ErrorCode = "feature_not_available"
	UnknownLimitType    ErrorCode = "unknown_limit_type"
	UnknownFeature      ErrorCode = "unknown_feature"
	UnknownTier         ErrorCode = "unknown_tier"

	// billing related
	BillingNotConfigured ErrorCode = "billing_not_configured"
)
