package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/utils"
)

type DBOrganization struct {
	Id                 string             `db:"id"`
	Name               string             `db:"name"`
	Tier               pgtype.Text        `db:"tier"`
	SubscriptionStatus string             `db:"subscription_status"`
	StripeCustomerId   pgtype.Text        `db:"stripe_customer_id"`
	TrialEndsAt        pgtype.Timestamptz `db:"trial_ends_at"`
	CreatedAt          time.Time          `db:"created_at"`
	UpdatedAt          time.Time          `db:"updated_at"`
}

const TABLE_ORGANIZATIONS = "organizations"

var SelectOrganizationColumns = utils.ColumnList[DBOrganization]()

func AdaptOrganization(db DBOrganization) (models.Organization, error) {
	org := models.Organization{
		Id:                 db.Id,
		Name:               db.Name,
		SubscriptionStatus: models.SubscriptionStatusFromString(db.SubscriptionStatus),
		StripeCustomerId:   null.NewString(db.StripeCustomerId.String, db.StripeCustomerId.Valid),
		TrialEndsAt:        null.NewTime(db.TrialEndsAt.Time, db.TrialEndsAt.Valid),
		CreatedAt:          db.CreatedAt,
		UpdatedAt:          db.UpdatedAt,
	}
	// A null tier is a valid state: the organization was never assigned one.
	if db.Tier.Valid {
		org.Tier = models.TierFromString(db.Tier.String)
	}
	return org, nil
}
