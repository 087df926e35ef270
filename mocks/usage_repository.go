package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/studioflow/studioflow-backend/repositories"
)

type UsageRepository struct {
	mock.Mock
}

func (r *UsageRepository) CountActiveMembers(ctx context.Context, exec repositories.Executor,
	organizationId string,
) (int, error) {
	args := r.Called(ctx, exec, organizationId)
	return args.Int(0), args.Error(1)
}

func (r *UsageRepository) CountActiveCoaches(ctx context.Context, exec repositories.Executor,
	organizationId string,
) (int, error) {
	args := r.Called(ctx, exec, organizationId)
	return args.Int(0), args.Error(1)
}

func (r *UsageRepository) CountSessionsInMonth(ctx context.Context, exec repositories.Executor,
	organizationId string, ref time.Time,
) (int, error) {
	args := r.Called(ctx, exec, organizationId, ref)
	return args.Int(0), args.Error(1)
}

func (r *UsageRepository) CountPaymentsInMonth(ctx context.Context, exec repositories.Executor,
	organizationId string, ref time.Time,
) (int, error) {
	args := r.Called(ctx, exec, organizationId, ref)
	return args.Int(0), args.Error(1)
}
