package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories"
)

type LimitEnforcer struct {
	mock.Mock
}

func (e *LimitEnforcer) EnforceLimit(ctx context.Context, exec repositories.Executor,
	organizationId string, resource models.ResourceName,
) error {
	args := e.Called(ctx, exec, organizationId, resource)
	return args.Error(0)
}
