package models

import (
	"time"

	"github.com/guregu/null/v5"
)

type Session struct {
	Id             string
	OrganizationId string
	CoachId        null.String
	Name           string
	StartsAt       time.Time
	DurationMin    int
	CreatedAt      time.Time
}

type CreateSessionInput struct {
	OrganizationId string
	CoachId        null.String
	Name           string
	StartsAt       time.Time
	DurationMin    int
}

type Payment struct {
	Id             string
	OrganizationId string
	MemberId       string
	AmountCents    int64
	Currency       string
	Method         string
	CreatedAt      time.Time
}

type RecordPaymentInput struct {
	OrganizationId string
	MemberId       string
	AmountCents    int64
	Currency       string
	Method         string
}
