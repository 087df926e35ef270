package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories"
)

type MemberRepository struct {
	mock.Mock
}

func (r *MemberRepository) GetMemberById(ctx context.Context, exec repositories.Executor,
	memberId string,
) (models.Member, error) {
	args := r.Called(ctx, exec, memberId)
	return args.Get(0).(models.Member), args.Error(1)
}

func (r *MemberRepository) ListMembers(ctx context.Context, exec repositories.Executor,
	organizationId string,
) ([]models.Member, error) {
	args := r.Called(ctx, exec, organizationId)
	return args.Get(0).([]models.Member), args.Error(1)
}

func (r *MemberRepository) CreateMember(ctx context.Context, exec repositories.Executor,
	memberId string, input models.CreateMemberInput,
) error {
	args := r.Called(ctx, exec, memberId, input)
	return args.Error(0)
}

func (r *MemberRepository) GetCoachById(ctx context.Context, exec repositories.Executor,
	coachId string,
) (models.Coach, error) {
	args := r.Called(ctx, exec, coachId)
	return args.Get(0).(models.Coach), args.Error(1)
}

func (r *MemberRepository) ListCoaches(ctx context.Context, exec repositories.Executor,
	organizationId string,
) ([]models.Coach, error) {
	args := r.Called(ctx, exec, organizationId)
	return args.Get(0).([]models.Coach), args.Error(1)
}

func (r *MemberRepository) CreateCoach(ctx context.Context, exec repositories.Executor,
	coachId string, input models.CreateCoachInput,
) error {
	args := r.Called(ctx, exec, coachId, input)
	return args.Error(0)
}
