package utils

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
)

// LogAndReportSentryError logs the error and forwards it to Sentry, using
// the hub attached to the context when there is one.
func LogAndReportSentryError(ctx context.Context, err error) {
	logger := LoggerFromContext(ctx)
	logger.ErrorContext(ctx, fmt.Sprintf("Unexpected error: %+v", err))

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.CaptureException(err)
	} else {
		sentry.CaptureException(err)
	}
}
