package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories"
)

type OrganizationRepository struct {
	mock.Mock
}

func (r *OrganizationRepository) GetOrganizationById(ctx context.Context, exec repositories.Executor,
	organizationId string,
) (models.Organization, error) {
	args := r.Called(ctx, exec, organizationId)
	return args.Get(0).(models.Organization), args.Error(1)
}

func (r *OrganizationRepository) GetOrganizationByStripeCustomerId(ctx context.Context, exec repositories.Executor,
	stripeCustomerId string,
) (models.Organization, error) {
	args := r.Called(ctx, exec, stripeCustomerId)
	return args.Get(0).(models.Organization), args.Error(1)
}

func (r *OrganizationRepository) CreateOrganization(ctx context.Context, exec repositories.Executor,
	organizationId string, input models.CreateOrganizationInput,
) error {
	args := r.Called(ctx, exec, organizationId, input)
	return args.Error(0)
}

func (r *OrganizationRepository) UpdateOrganizationSubscription(ctx context.Context, exec repositories.Executor,
	input models.UpdateSubscriptionInput,
) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}

func (r *OrganizationRepository) UpdateOrganizationStripeCustomerId(ctx context.Context, exec repositories.Executor,
	organizationId, stripeCustomerId string,
) error {
	args := r.Called(ctx, exec, organizationId, stripeCustomerId)
	return args.Error(0)
}
