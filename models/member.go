package models

import "time"

type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberArchived MemberStatus = "archived"
)

type Member struct {
	Id             string
	OrganizationId string
	Name           string
	Email          string
	Status         MemberStatus
	CreatedAt      time.Time
}

type CreateMemberInput struct {
	OrganizationId string
	Name           string
	Email          string
}

type Coach struct {
	Id             string
	OrganizationId string
	Name           string
	Email          string
	Status         MemberStatus
	CreatedAt      time.Time
}

type CreateCoachInput struct {
	OrganizationId string
	Name           string
	Email          string
}
