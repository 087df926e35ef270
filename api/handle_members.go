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

func handleListMembers(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		organizationId, err := utils.OrganizationIdFromRequest(c)
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewMemberUsecase()
		members, err := usecase.ListMembers(ctx, organizationId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"members": pure_utils.Map(members, dto.AdaptMemberDto),
		})
	}
}

func handlePostMember(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		organizationId, err := utils.OrganizationIdFromRequest(c)
		if presentError(ctx, c, err) {
			return
		}

		var data dto.CreateMemberBodyDto
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewMemberUsecase()
		member, err := usecase.CreateMember(ctx, models.CreateMemberInput{
			OrganizationId: organizationId,
			Name:           data.Name,
			Email:          data.Email,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"member": dto.AdaptMemberDto(member),
		})
	}
}

func handleListCoaches(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		organizationId, err := utils.OrganizationIdFromRequest(c)
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewMemberUsecase()
		coaches, err := usecase.ListCoaches(ctx, organizationId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"coaches": pure_utils.Map(coaches, dto.AdaptCoachDto),
		})
	}
}

func handlePostCoach(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		organizationId, err := utils.OrganizationIdFromRequest(c)
		if presentError(ctx, c, err) {
			return
		}

		var data dto.CreateCoachBodyDto
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewMemberUsecase()
		coach, err := usecase.CreateCoach(ctx, models.CreateCoachInput{
			OrganizationId: organizationId,
			Name:           data.Name,
			Email:          data.Email,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"coach": dto.AdaptCoachDto(coach),
		})
	}
}
