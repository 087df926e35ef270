package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/utils"
)

type DBSession struct {
	Id             string      `db:"id"`
	OrganizationId string      `db:"org_id"`
	CoachId        pgtype.Text `db:"coach_id"`
	Name           string      `db:"name"`
	StartsAt       time.Time   `db:"starts_at"`
	DurationMin    int         `db:"duration_min"`
	CreatedAt      time.Time   `db:"created_at"`
}

const TABLE_SESSIONS = "sessions"

var SelectSessionColumns = utils.ColumnList[DBSession]()

func AdaptSession(db DBSession) (models.Session, error) {
	return models.Session{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		CoachId:        null.NewString(db.CoachId.String, db.CoachId.Valid),
		Name:           db.Name,
		StartsAt:       db.StartsAt,
		DurationMin:    db.DurationMin,
		CreatedAt:      db.CreatedAt,
	}, nil
}

type DBPayment struct {
	Id             string    `db:"id"`
	OrganizationId string    `db:"org_id"`
	MemberId       string    `db:"member_id"`
	AmountCents    int64     `db:"amount_cents"`
	Currency       string    `db:"currency"`
	Method         string    `db:"method"`
	CreatedAt      time.Time `db:"created_at"`
}

const TABLE_PAYMENTS = "payments"

var SelectPaymentColumns = utils.ColumnList[DBPayment]()

func AdaptPayment(db DBPayment) (models.Payment, error) {
	return models.Payment{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		MemberId:       db.MemberId,
		AmountCents:    db.AmountCents,
		Currency:       db.Currency,
		Method:         db.Method,
		CreatedAt:      db.CreatedAt,
	}, nil
}
