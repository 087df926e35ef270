package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/studioflow/studioflow-backend/dto"
	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/utils"
)

func errorCode(err error) dto.ErrorCode {
	switch {
	case errors.Is(err, models.ErrQuotaExceeded):
		return dto.QuotaExceeded
	case errors.Is(err, models.ErrFeatureNotAvailable):
		return dto.FeatureNotAvailable
	case errors.Is(err, models.ErrUnknownResourceName):
		return dto.UnknownLimitType
	case errors.Is(err, models.ErrUnknownFeatureName):
		return dto.UnknownFeature
	case errors.Is(err, models.ErrUnknownTier):
		return dto.UnknownTier
	case errors.Is(err, models.ErrBillingNotConfigured):
		return dto.BillingNotConfigured
	}
	return ""
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.BadParameterError):
		return http.StatusBadRequest
	case errors.Is(err, models.UnAuthorizedError):
		return http.StatusUnauthorized
	case errors.Is(err, models.ForbiddenError):
		return http.StatusForbidden
	case errors.Is(err, models.NotFoundError):
		return http.StatusNotFound
	case errors.Is(err, models.ConflictError):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// presentError renders err as a json error response and reports true, or
// does nothing and reports false when err is nil. Unexpected errors are
// logged and reported to Sentry before being rendered as a 500.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		utils.LogAndReportSentryError(ctx, err)
	}

	c.JSON(status, dto.APIErrorResponse{
		Message:   err.Error(),
		ErrorCode: errorCode(err),
	})
	return true
}
