package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studioflow/studioflow-backend/utils"
)

type loggingConfig struct {
	ignorePaths map[string]struct{}
}

type LoggingOption func(*loggingConfig)

// WithIgnorePath silences request logging for exact path matches, typically
// probe and scrape endpoints.
func WithIgnorePath(paths ...string) LoggingOption {
	return func(c *loggingConfig) {
		for _, path := range paths {
			c.ignorePaths[path] = struct{}{}
		}
	}
}

func NewLogging(logger *slog.Logger, options ...LoggingOption) gin.HandlerFunc {
	conf := loggingConfig{ignorePaths: make(map[string]struct{})}
	for _, option := range options {
		option(&conf)
	}

	return func(c *gin.Context) {
		if _, ok := conf.ignorePaths[c.Request.URL.Path]; ok {
			return
		}

		path := c.Request.URL.Path
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		bytesOut := max(c.Writer.Size(), 0)

		attributes := []slog.Attr{
			slog.Int("status", status),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			slog.String("client_ip", c.ClientIP()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("bytes_out", bytesOut),
			slog.String("user_agent", c.Request.UserAgent()),
		}
		// The authentication middleware has run by this point, so the
		// organization is known for any authenticated route.
		if creds, ok := utils.CredentialsFromCtx(c.Request.Context()); ok {
			attributes = append(attributes, slog.String("organization_id", creds.OrganizationId))
		}
		if c.Errors != nil {
			attributes = append(attributes, slog.String("error", c.Errors.String()))
		}

		logger.LogAttrs(c.Request.Context(), level,
			fmt.Sprintf("%s %s", c.Request.Method, path), attributes...)
	}
}
