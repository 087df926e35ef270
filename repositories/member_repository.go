package repositories

import (
	"context"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories/dbmodels"
)

type MemberRepository interface {
	GetMemberById(ctx context.Context, exec Executor, memberId string) (models.Member, error)
	ListMembers(ctx context.Context, exec Executor, organizationId string) ([]models.Member, error)
	CreateMember(ctx context.Context, exec Executor, memberId string, input models.CreateMemberInput) error
	GetCoachById(ctx context.Context, exec Executor, coachId string) (models.Coach, error)
	ListCoaches(ctx context.Context, exec Executor, organizationId string) ([]models.Coach, error)
	CreateCoach(ctx context.Context, exec Executor, coachId string, input models.CreateCoachInput) error
}

type MemberRepositoryPostgresql struct{}

func (repo *MemberRepositoryPostgresql) GetMemberById(ctx context.Context,
	exec Executor, memberId string,
) (models.Member, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Member{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectMemberColumns...).
			From(dbmodels.TABLE_MEMBERS).
			Where("id = ?", memberId),
		dbmodels.AdaptMember,
	)
}

func (repo *MemberRepositoryPostgresql) ListMembers(ctx context.Context,
	exec Executor, organizationId string,
) ([]models.Member, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectMemberColumns...).
			From(dbmodels.TABLE_MEMBERS).
			Where("org_id = ?", organizationId).
			OrderBy("created_at DESC"),
		dbmodels.AdaptMember,
	)
}

func (repo *MemberRepositoryPostgresql) CreateMember(
	ctx context.Context,
	exec Executor,
	memberId string,
	input models.CreateMemberInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_MEMBERS).
			Columns(
				"id",
				"org_id",
				"name",
				"email",
				"status",
			).
			Values(
				memberId,
				input.OrganizationId,
				input.Name,
				input.Email,
				string(models.MemberActive),
			),
	)
}

func (repo *MemberRepositoryPostgresql) GetCoachById(ctx context.Context,
	exec Executor, coachId string,
) (models.Coach, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Coach{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCoachColumns...).
			From(dbmodels.TABLE_COACHES).
			Where("id = ?", coachId),
		dbmodels.AdaptCoach,
	)
}

func (repo *MemberRepositoryPostgresql) ListCoaches(ctx context.Context,
	exec Executor, organizationId string,
) ([]models.Coach, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCoachColumns...).
			From(dbmodels.TABLE_COACHES).
			Where("org_id = ?", organizationId).
			OrderBy("created_at DESC"),
		dbmodels.AdaptCoach,
	)
}

func (repo *MemberRepositoryPostgresql) CreateCoach(
	ctx context.Context,
	exec Executor,
	coachId string,
	input models.CreateCoachInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_COACHES).
			Columns(
				"id",
				"org_id",
				"name",
				"email",
				"status",
			).
			Values(
				coachId,
				input.OrganizationId,
				input.Name,
				input.Email,
				string(models.MemberActive),
			),
	)
}
