package utils

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studioflow/studioflow-backend/models"
)

type ContextKey int

const (
	ContextKeyCredentials ContextKey = iota
	ContextKeyLogger
)

func CredentialsFromCtx(ctx context.Context) (models.Credentials, bool) {
	creds, found := ctx.Value(ContextKeyCredentials).(models.Credentials)
	return creds, found
}

func StoreCredentialsInContext(ctx context.Context, creds models.Credentials) context.Context {
	return context.WithValue(ctx, ContextKeyCredentials, creds)
}

// OrganizationIdFromRequest resolves the organization the request acts on:
// the caller's own organization, or the one passed in the organization-id
// query param if the credentials allow acting on it.
func OrganizationIdFromRequest(c *gin.Context) (string, error) {
	creds, found := CredentialsFromCtx(c.Request.Context())
	if !found {
		return "", errors.Wrap(models.UnAuthorizedError, "no credentials in context")
	}

	requestOrganizationId := c.Query("organization-id")
	if requestOrganizationId != "" {
		if err := ValidateUuid(requestOrganizationId); err != nil {
			return "", err
		}
		if err := EnforceOrganizationAccess(creds, requestOrganizationId); err != nil {
			return "", err
		}
		return requestOrganizationId, nil
	}

	if creds.OrganizationId == "" {
		return "", errors.Wrap(models.ForbiddenError, "no organizationId in credentials")
	}
	return creds.OrganizationId, nil
}

func ValidateUuid(uuidParam string) error {
	if _, err := uuid.Parse(uuidParam); err != nil {
		return errors.Wrapf(models.BadParameterError, "'%s' is not a valid UUID", uuidParam)
	}
	return nil
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		return slog.Default()
	}
	return logger
}

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
