package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/usecases"
	"github.com/studioflow/studioflow-backend/utils"
)

// Stripe documents webhook payloads as capped at 64KB.
const maxWebhookBodyBytes = int64(65536)

type checkoutBodyDto struct {
	Tier string `json:"tier" binding:"required"`
}

func handlePostCheckoutSession(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		organizationId, err := utils.OrganizationIdFromRequest(c)
		if presentError(ctx, c, err) {
			return
		}

		var data checkoutBodyDto
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewBillingUsecase()
		checkoutUrl, err := usecase.CreateCheckoutSession(ctx, organizationId,
			models.TierFromString(data.Tier))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"checkout_url": checkoutUrl,
		})
	}
}

// handleStripeWebhook is unauthenticated; the payload signature is verified
// against the webhook secret instead.
func handleStripeWebhook(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusServiceUnavailable)
			return
		}

		usecase := uc.NewBillingUsecase()
		err = usecase.HandleWebhookEvent(ctx, payload, c.GetHeader("Stripe-Signature"))
		if presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusOK)
	}
}
