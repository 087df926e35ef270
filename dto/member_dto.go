package dto

import (
	"time"

	"github.com/studioflow/studioflow-backend/models"
)

type APIMember struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func AdaptMemberDto(member models.Member) APIMember {
	return APIMember{
		Id:        member.Id,
		Name:      member.Name,
		Email:     member.Email,
		Status:    string(member.Status),
		CreatedAt: member.CreatedAt,
	}
}

type CreateMemberBodyDto struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

type APICoach struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func AdaptCoachDto(coach models.Coach) APICoach {
	return APICoach{
		Id:        coach.Id,
		Name:      coach.Name,
		Email:     coach.Email,
		Status:    string(coach.Status),
		CreatedAt: coach.CreatedAt,
	}
}

type CreateCoachBodyDto struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}
