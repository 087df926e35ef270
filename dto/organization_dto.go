package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/studioflow/studioflow-backend/models"
)

type APIOrganization struct {
	Id                 string    `json:"id"`
	Name               string    `json:"name"`
	Tier               *string   `json:"tier"`
	SubscriptionStatus string    `json:"subscription_status"`
	TrialEndsAt        null.Time `json:"trial_ends_at"`
	CreatedAt          time.Time `json:"created_at"`
}

func AdaptOrganizationDto(org models.Organization) APIOrganization {
	var tier *string
	if org.Tier != models.TierUnknown {
		tierName := org.Tier.String()
		tier = &tierName
	}
	return APIOrganization{
		Id:                 org.Id,
		Name:               org.Name,
		Tier:               tier,
		SubscriptionStatus: org.SubscriptionStatus.String(),
		TrialEndsAt:        org.TrialEndsAt,
		CreatedAt:          org.CreatedAt,
	}
}

type CreateOrganizationBodyDto struct {
	Name string `json:"name" binding:"required"`
	Tier string `json:"tier"`
}
