package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories"
	"github.com/studioflow/studioflow-backend/usecases/executor_factory"
)

type memberRepository interface {
	GetMemberById(ctx context.Context, exec repositories.Executor, memberId string) (models.Member, error)
	ListMembers(ctx context.Context, exec repositories.Executor, organizationId string) ([]models.Member, error)
	CreateMember(ctx context.Context, exec repositories.Executor, memberId string,
		input models.CreateMemberInput) error
	GetCoachById(ctx context.Context, exec repositories.Executor, coachId string) (models.Coach, error)
	ListCoaches(ctx context.Context, exec repositories.Executor, organizationId string) ([]models.Coach, error)
	CreateCoach(ctx context.Context, exec repositories.Executor, coachId string,
		input models.CreateCoachInput) error
}

type limitEnforcer interface {
	EnforceLimit(ctx context.Context, exec repositories.Executor,
		organizationId string, resource models.ResourceName) error
}

type MemberUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	memberRepository   memberRepository
	limitEnforcer      limitEnforcer
}

func (usecase MemberUsecase) ListMembers(ctx context.Context, organizationId string) ([]models.Member, error) {
	return usecase.memberRepository.ListMembers(ctx, usecase.executorFactory.NewExecutor(), organizationId)
}

// CreateMember inserts the member after re-checking the members quota inside
// the same transaction. The advisory CheckLimit the client may have called
// beforehand is not trusted here.
func (usecase MemberUsecase) CreateMember(ctx context.Context,
	input models.CreateMemberInput,
) (models.Member, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Member, error) {
		if err := usecase.limitEnforcer.EnforceLimit(ctx, tx,
			input.OrganizationId, models.ResourceMembers); err != nil {
			return models.Member{}, err
		}

		memberId := uuid.NewString()
		if err := usecase.memberRepository.CreateMember(ctx, tx, memberId, input); err != nil {
			return models.Member{}, err
		}
		return usecase.memberRepository.GetMemberById(ctx, tx, memberId)
	})
}

func (usecase MemberUsecase) ListCoaches(ctx context.Context, organizationId string) ([]models.Coach, error) {
	return usecase.memberRepository.ListCoaches(ctx, usecase.executorFactory.NewExecutor(), organizationId)
}

func (usecase MemberUsecase) CreateCoach(ctx context.Context,
	input models.CreateCoachInput,
) (models.Coach, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Coach, error) {
		if err := usecase.limitEnforcer.EnforceLimit(ctx, tx,
			input.OrganizationId, models.ResourceCoaches); err != nil {
			return models.Coach{}, err
		}

		coachId := uuid.NewString()
		if err := usecase.memberRepository.CreateCoach(ctx, tx, coachId, input); err != nil {
			return models.Coach{}, err
		}
		return usecase.memberRepository.GetCoachById(ctx, tx, coachId)
	})
}
