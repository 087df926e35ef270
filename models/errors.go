package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Licensing related errors
var (
	ErrUnknownResourceName = errors.Wrap(BadParameterError, "unknown limit type")
	ErrUnknownFeatureName  = errors.Wrap(BadParameterError, "unknown feature")
	ErrUnknownTier         = errors.Wrap(BadParameterError, "unknown tier")

	// ErrQuotaExceeded is returned by the mutating usecases when the
	// in-transaction re-check of a quota fails.
	ErrQuotaExceeded = errors.Wrap(ForbiddenError, "tier quota exceeded")

	ErrFeatureNotAvailable = errors.Wrap(ForbiddenError, "feature is not available on the current plan")
)

// Billing related errors
var ErrBillingNotConfigured = errors.Wrap(ForbiddenError, "billing is not configured on this deployment")

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")
