package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/studioflow/studioflow-backend/mocks"
	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/usecases/executor_factory"
	"github.com/studioflow/studioflow-backend/utils"
)

func TestOrganizationUsecase_CreateOrganization_RequiresSupportAdmin(t *testing.T) {
	usecase := OrganizationUsecase{
		executorFactory:        executor_factory.NewExecutorFactoryStub(),
		transactionFactory:     executor_factory.NewExecutorFactoryStub(),
		organizationRepository: new(mocks.OrganizationRepository),
	}

	ctx := utils.StoreCredentialsInContext(context.Background(), models.Credentials{
		OrganizationId: "some-org",
		Role:           models.ADMIN,
	})

	_, err := usecase.CreateOrganization(ctx, models.CreateOrganizationInput{Name: "Flow Yoga"})
	assert.ErrorIs(t, err, models.ForbiddenError)
}

func TestOrganizationUsecase_CreateOrganization(t *testing.T) {
	organizationRepository := new(mocks.OrganizationRepository)
	stub := executor_factory.NewExecutorFactoryStub()
	usecase := OrganizationUsecase{
		executorFactory:        stub,
		transactionFactory:     stub,
		organizationRepository: organizationRepository,
	}

	ctx := utils.StoreCredentialsInContext(context.Background(), models.Credentials{
		Role: models.SUPPORT_ADMIN,
	})
	input := models.CreateOrganizationInput{Name: "Flow Yoga", Tier: models.TierStarter}
	created := models.Organization{Name: "Flow Yoga", Tier: models.TierStarter}

	organizationRepository.On("CreateOrganization",
		ctx, mock.Anything, mock.AnythingOfType("string"), input).Return(nil)
	organizationRepository.On("GetOrganizationById",
		ctx, mock.Anything, mock.AnythingOfType("string")).Return(created, nil)

	organization, err := usecase.CreateOrganization(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, created, organization)
	organizationRepository.AssertExpectations(t)
}

func TestOrganizationUsecase_GetOrganization_CrossOrgForbidden(t *testing.T) {
	usecase := OrganizationUsecase{
		executorFactory:        executor_factory.NewExecutorFactoryStub(),
		organizationRepository: new(mocks.OrganizationRepository),
	}

	ctx := utils.StoreCredentialsInContext(context.Background(), models.Credentials{
		OrganizationId: "org-a",
		Role:           models.ADMIN,
	})

	_, err := usecase.GetOrganization(ctx, "org-b")
	assert.ErrorIs(t, err, models.ForbiddenError)
}
