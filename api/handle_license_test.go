package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/studioflow/studioflow-backend/usecases"
)

func TestHandleLicense_UnknownAction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/license", handleLicense(usecases.Usecases{}))

	r := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/license?action=becomeEnterprise", nil)
	router.ServeHTTP(r, request)

	assert.Equal(t, http.StatusBadRequest, r.Code)
}

// A request without credentials must not only fail, it must carry an
// explicit denial in the payload.
func TestHandleLicense_CheckLimitFailsClosed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/license", handleLicense(usecases.Usecases{}))

	r := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/license?action=checkLimit&limitType=members", nil)
	router.ServeHTTP(r, request)

	assert.Equal(t, http.StatusUnauthorized, r.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(r.Body.Bytes(), &body))
	assert.Equal(t, false, body["allowed"])
}

func TestHandleLicense_CheckFeatureFailsClosed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/license", handleLicense(usecases.Usecases{}))

	r := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/license?action=checkFeature&feature=api_access", nil)
	router.ServeHTTP(r, request)

	assert.Equal(t, http.StatusUnauthorized, r.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(r.Body.Bytes(), &body))
	assert.Equal(t, false, body["hasAccess"])
}
