package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studioflow/studioflow-backend/dto"
	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/pure_utils"
	"github.com/studioflow/studioflow-backend/usecases"
	"github.com/studioflow/studioflow-backend/utils"
)

func handleListPayments(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		organizationId, err := utils.OrganizationIdFromRequest(c)
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewPaymentUsecase()
		payments, err := usecase.ListPayments(ctx, organizationId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"payments": pure_utils.Map(payments, dto.AdaptPaymentDto),
		})
	}
}

func handlePostPayment(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		organizationId, err := utils.OrganizationIdFromRequest(c)
		if presentError(ctx, c, err) {
			return
		}

		var data dto.RecordPaymentBodyDto
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewPaymentUsecase()
		payment, err := usecase.RecordPayment(ctx, models.RecordPaymentInput{
			OrganizationId: organizationId,
			MemberId:       data.MemberId,
			AmountCents:    data.AmountCents,
			Currency:       data.Currency,
			Method:         data.Method,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"payment": dto.AdaptPaymentDto(payment),
		})
	}
}
