package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/studioflow/studioflow-backend/models"
)

type APISession struct {
	Id          string      `json:"id"`
	CoachId     null.String `json:"coach_id"`
	Name        string      `json:"name"`
	StartsAt    time.Time   `json:"starts_at"`
	DurationMin int         `json:"duration_minutes"`
	CreatedAt   time.Time   `json:"created_at"`
}

func AdaptSessionDto(session models.Session) APISession {
	return APISession{
		Id:          session.Id,
		CoachId:     session.CoachId,
		Name:        session.Name,
		StartsAt:    session.StartsAt,
		DurationMin: session.DurationMin,
		CreatedAt:   session.CreatedAt,
	}
}

type CreateSessionBodyDto struct {
	CoachId     null.String `json:"coach_id"`
	Name        string      `json:"name" binding:"required"`
	StartsAt    time.Time   `json:"starts_at" binding:"required"`
	DurationMin int         `json:"duration_minutes" binding:"required"`
}

type APIPayment struct {
	Id          string    `json:"id"`
	MemberId    string    `json:"member_id"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Method      string    `json:"method"`
	CreatedAt   time.Time `json:"created_at"`
}

func AdaptPaymentDto(payment models.Payment) APIPayment {
	return APIPayment{
		Id:          payment.Id,
		MemberId:    payment.MemberId,
		AmountCents: payment.AmountCents,
		Currency:    payment.Currency,
		Method:      payment.Method,
		CreatedAt:   payment.CreatedAt,
	}
}

type RecordPaymentBodyDto struct {
	MemberId    string `json:"member_id" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required"`
	Currency    string `json:"currency"`
	Method      string `json:"method"`
}
