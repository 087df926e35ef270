package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/studioflow/studioflow-backend/dto"
	"github.com/studioflow/studioflow-backend/models"
)

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{errors.Wrap(models.BadParameterError, "oops"), http.StatusBadRequest},
		{models.ErrUnknownResourceName, http.StatusBadRequest},
		{models.UnAuthorizedError, http.StatusUnauthorized},
		{models.ErrQuotaExceeded, http.StatusForbidden},
		{models.ErrFeatureNotAvailable, http.StatusForbidden},
		{models.NotFoundError, http.StatusNotFound},
		{models.ConflictError, http.StatusConflict},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		assert.Equal(t, c.status, errorStatus(c.err), "error %v", c.err)
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, dto.QuotaExceeded, errorCode(errors.Wrap(models.ErrQuotaExceeded, "members")))
	assert.Equal(t, dto.UnknownLimitType, errorCode(models.ErrUnknownResourceName))
	assert.Equal(t, dto.ErrorCode(""), errorCode(errors.New("some other error")))
}

func TestPresentError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("nil error does nothing", func(t *testing.T) {
		r := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(r)

		assert.False(t, presentError(context.Background(), c, nil))
	})

	t.Run("quota exceeded renders 403 with code", func(t *testing.T) {
		r := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(r)

		assert.True(t, presentError(context.Background(), c,
			errors.Wrap(models.ErrQuotaExceeded, "members")))
		assert.Equal(t, http.StatusForbidden, r.Code)
		assert.Contains(t, r.Body.String(), `"error_code":"quota_exceeded"`)
	})
}
