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

func handleListSessions(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		organizationId, err := utils.OrganizationIdFromRequest(c)
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewSessionUsecase()
		sessions, err := usecase.ListSessions(ctx, organizationId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"sessions": pure_utils.Map(sessions, dto.AdaptSessionDto),
		})
	}
}

func handlePostSession(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		organizationId, err := utils.OrganizationIdFromRequest(c)
		if presentError(ctx, c, err) {
			return
		}

		var data dto.CreateSessionBodyDto
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewSessionUsecase()
		session, err := usecase.CreateSession(ctx, models.CreateSessionInput{
			OrganizationId: organizationId,
			CoachId:        data.CoachId,
			Name:           data.Name,
			StartsAt:       data.StartsAt,
			DurationMin:    data.DurationMin,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"session": dto.AdaptSessionDto(session),
		})
	}
}
