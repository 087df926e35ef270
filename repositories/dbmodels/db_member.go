package dbmodels

import (
	"time"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/utils"
)

type DBMember struct {
	Id             string    `db:"id"`
	OrganizationId string    `db:"org_id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
}

const TABLE_MEMBERS = "members"

var SelectMemberColumns = utils.ColumnList[DBMember]()

func AdaptMember(db DBMember) (models.Member, error) {
	return models.Member{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		Name:           db.Name,
		Email:          db.Email,
		Status:         models.MemberStatus(db.Status),
		CreatedAt:      db.CreatedAt,
	}, nil
}

type DBCoach struct {
	Id             string    `db:"id"`
	OrganizationId string    `db:"org_id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
}

const TABLE_COACHES = "coaches"

var SelectCoachColumns = utils.ColumnList[DBCoach]()

func AdaptCoach(db DBCoach) (models.Coach, error) {
	return models.Coach{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		Name:           db.Name,
		Email:          db.Email,
		Status:         models.MemberStatus(db.Status),
		CreatedAt:      db.CreatedAt,
	}, nil
}
