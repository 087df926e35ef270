package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories"
	"github.com/studioflow/studioflow-backend/usecases/executor_factory"
	"github.com/studioflow/studioflow-backend/utils"
)

type organizationRepository interface {
	GetOrganizationById(ctx context.Context, exec repositories.Executor, organizationId string) (models.Organization, error)
	CreateOrganization(ctx context.Context, exec repositories.Executor, organizationId string,
		input models.CreateOrganizationInput) error
}

type OrganizationUsecase struct {
	executorFactory        executor_factory.ExecutorFactory
	transactionFactory     executor_factory.TransactionFactory
	organizationRepository organizationRepository
}

func (usecase OrganizationUsecase) GetOrganization(ctx context.Context, organizationId string) (models.Organization, error) {
	creds, found := utils.CredentialsFromCtx(ctx)
	if !found {
		return models.Organization{}, models.UnAuthorizedError
	}
	if err := utils.EnforceOrganizationAccess(creds, organizationId); err != nil {
		return models.Organization{}, err
	}
	return usecase.organizationRepository.GetOrganizationById(ctx,
		usecase.executorFactory.NewExecutor(), organizationId)
}

// CreateOrganization is reserved for support admins.
func (usecase OrganizationUsecase) CreateOrganization(ctx context.Context,
	input models.CreateOrganizationInput,
) (models.Organization, error) {
	creds, found := utils.CredentialsFromCtx(ctx)
	if !found || creds.Role != models.SUPPORT_ADMIN {
		return models.Organization{}, models.ForbiddenError
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Organization, error) {
		organizationId := uuid.NewString()
		if err := usecase.organizationRepository.CreateOrganization(ctx, tx, organizationId, input); err != nil {
			return models.Organization{}, err
		}
		return usecase.organizationRepository.GetOrganizationById(ctx, tx, organizationId)
	})
}
