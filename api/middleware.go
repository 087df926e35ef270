package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/utils"
)

type tokenClaims struct {
	jwt.RegisteredClaims
	OrganizationId string `json:"organization_id"`
	Role           string `json:"role"`
}

type Authentication struct {
	jwtSigningSecret []byte
}

func NewAuthentication(jwtSigningSecret string) Authentication {
	return Authentication{jwtSigningSecret: []byte(jwtSigningSecret)}
}

func parseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", errors.Wrap(models.UnAuthorizedError, "missing Authorization header")
	}
	token, found := strings.CutPrefix(authorization, "Bearer ")
	if !found {
		return "", errors.Wrap(models.UnAuthorizedError, "malformed Authorization header")
	}
	return strings.TrimSpace(token), nil
}

func (auth Authentication) validateToken(tokenString string) (models.Credentials, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Newf("unexpected signing method %v", token.Header["alg"])
		}
		return auth.jwtSigningSecret, nil
	})
	if err != nil || !token.Valid {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "invalid token")
	}

	return models.Credentials{
		OrganizationId: claims.OrganizationId,
		UserId:         claims.Subject,
		Role:           models.RoleFromString(claims.Role),
	}, nil
}

// Middleware authenticates the request and stores the resulting credentials
// in the request context, along with a logger enriched with the caller's
// identity.
func (auth Authentication) Middleware(c *gin.Context) {
	tokenString, err := parseAuthorizationBearerHeader(c.Request.Header)
	if err != nil {
		presentError(c.Request.Context(), c, err)
		c.Abort()
		return
	}

	creds, err := auth.validateToken(tokenString)
	if err != nil {
		presentError(c.Request.Context(), c, err)
		c.Abort()
		return
	}

	ctx := utils.StoreCredentialsInContext(c.Request.Context(), creds)
	logger := utils.LoggerFromContext(ctx).With(
		slog.String("organization_id", creds.OrganizationId),
		slog.String("role", creds.Role.String()),
	)
	ctx = utils.StoreLoggerInContext(ctx, logger)

	c.Request = c.Request.WithContext(ctx)
	c.Next()
}
