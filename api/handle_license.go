package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/studioflow/studioflow-backend/dto"
	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/usecases"
	"github.com/studioflow/studioflow-backend/utils"
)

// handleLicense serves the advisory licensing reads. The action query param
// selects the operation: checkFeature, checkLimit or currentTier.
//
// On any failure the payload carries an explicit denial (allowed: false,
// hasAccess: false) next to the error, so a caller that only looks at the
// decision fields still fails closed.
func handleLicense(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		switch c.Query("action") {
		case "checkFeature":
			handleLicenseCheckFeature(uc, c)
		case "checkLimit":
			handleLicenseCheckLimit(uc, c)
		case "currentTier":
			handleLicenseCurrentTier(uc, c)
		default:
			c.JSON(http.StatusBadRequest, dto.APIErrorResponse{
				Message: "action must be one of checkFeature, checkLimit, currentTier",
			})
		}
	}
}

func handleLicenseCheckFeature(uc usecases.Usecases, c *gin.Context) {
	ctx := c.Request.Context()

	organizationId, err := utils.OrganizationIdFromRequest(c)
	if err != nil {
		presentLicenseDenial(c, err, gin.H{"hasAccess": false})
		return
	}

	usecase := uc.NewLicenseUsecase()
	hasAccess, err := usecase.CheckFeatureAccess(ctx, organizationId,
		models.FeatureNameFromString(c.Query("feature")))
	if err != nil {
		presentLicenseDenial(c, err, gin.H{"hasAccess": false})
		return
	}

	c.JSON(http.StatusOK, dto.FeatureAccessDto{HasAccess: hasAccess})
}

func handleLicenseCheckLimit(uc usecases.Usecases, c *gin.Context) {
	ctx := c.Request.Context()

	organizationId, err := utils.OrganizationIdFromRequest(c)
	if err != nil {
		presentLicenseDenial(c, err, gin.H{"allowed": false})
		return
	}

	usecase := uc.NewLicenseUsecase()
	check, err := usecase.CheckLimit(ctx, organizationId,
		models.ResourceNameFromString(c.Query("limitType")))
	if err != nil {
		presentLicenseDenial(c, err, gin.H{"allowed": false})
		return
	}

	c.JSON(http.StatusOK, dto.AdaptQuotaCheckDto(check))
}

func handleLicenseCurrentTier(uc usecases.Usecases, c *gin.Context) {
	ctx := c.Request.Context()

	organizationId, err := utils.OrganizationIdFromRequest(c)
	if err != nil {
		presentError(ctx, c, err)
		return
	}

	usecase := uc.NewLicenseUsecase()
	entitlements, err := usecase.Entitlements(ctx, organizationId)
	if presentError(ctx, c, err) {
		return
	}

	c.JSON(http.StatusOK, dto.AdaptEntitlementsDto(entitlements))
}

func handleUpgradeBenefits(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewLicenseUsecase()
		benefits, err := usecase.UpgradeBenefits(
			models.TierFromString(c.Query("from")),
			models.TierFromString(c.Query("to")))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptUpgradeBenefitsDto(benefits))
	}
}

// presentLicenseDenial renders a non-2xx response whose body still carries a
// safe denial payload. A transient read failure surfaces as a 500 so clients
// can distinguish "retry" from a business-rule denial.
func presentLicenseDenial(c *gin.Context, err error, denial gin.H) {
	ctx := c.Request.Context()

	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		utils.LogAndReportSentryError(ctx, errors.Wrap(err, "license check failed"))
	}

	body := gin.H{}
	for k, v := range denial {
		body[k] = v
	}
	body["message"] = err.Error()
	if code := errorCode(err); code != "" {
		body["error_code"] = code
	}
	c.JSON(status, body)
}
