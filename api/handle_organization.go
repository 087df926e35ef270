package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studioflow/studioflow-backend/dto"
	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/usecases"
	"github.com/studioflow/studioflow-backend/utils"
)

func handleGetOrganization(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		organizationId := c.Param("organization_id")
		if err := utils.ValidateUuid(organizationId); err != nil {
			presentError(ctx, c, err)
			return
		}

		usecase := uc.NewOrganizationUsecase()
		organization, err := usecase.GetOrganization(ctx, organizationId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"organization": dto.AdaptOrganizationDto(organization),
		})
	}
}

func handlePostOrganization(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.CreateOrganizationBodyDto
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewOrganizationUsecase()
		organization, err := usecase.CreateOrganization(ctx, models.CreateOrganizationInput{
			Name: data.Name,
			Tier: models.TierFromString(data.Tier),
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"organization": dto.AdaptOrganizationDto(organization),
		})
	}
}
