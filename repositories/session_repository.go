package repositories

import (
	"context"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories/dbmodels"
)

type SessionRepository interface {
	GetSessionById(ctx context.Context, exec Executor, sessionId string) (models.Session, error)
	ListSessions(ctx context.Context, exec Executor, organizationId string) ([]models.Session, error)
	CreateSession(ctx context.Context, exec Executor, sessionId string, input models.CreateSessionInput) error
}

type SessionRepositoryPostgresql struct{}

func (repo *SessionRepositoryPostgresql) GetSessionById(ctx context.Context,
	exec Executor, sessionId string,
) (models.Session, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Session{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectSessionColumns...).
			From(dbmodels.TABLE_SESSIONS).
			Where("id = ?", sessionId),
		dbmodels.AdaptSession,
	)
}

func (repo *SessionRepositoryPostgresql) ListSessions(ctx context.Context,
	exec Executor, organizationId string,
) ([]models.Session, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectSessionColumns...).
			From(dbmodels.TABLE_SESSIONS).
			Where("org_id = ?", organizationId).
			OrderBy("starts_at DESC"),
		dbmodels.AdaptSession,
	)
}

func (repo *SessionRepositoryPostgresql) CreateSession(
	ctx context.Context,
	exec Executor,
	sessionId string,
	input models.CreateSessionInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	var coachId any
	if input.CoachId.Valid {
		coachId = input.CoachId.String
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_SESSIONS).
			Columns(
				"id",
				"org_id",
				"coach_id",
				"name",
				"starts_at",
				"duration_min",
			).
			Values(
				sessionId,
				input.OrganizationId,
				coachId,
				input.Name,
				input.StartsAt,
				input.DurationMin,
			),
	)
}
