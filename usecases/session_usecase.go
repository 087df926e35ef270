package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories"
	"github.com/studioflow/studioflow-backend/usecases/executor_factory"
)

type sessionRepository interface {
	GetSessionById(ctx context.Context, exec repositories.Executor, sessionId string) (models.Session, error)
	ListSessions(ctx context.Context, exec repositories.Executor, organizationId string) ([]models.Session, error)
	CreateSession(ctx context.Context, exec repositories.Executor, sessionId string,
		input models.CreateSessionInput) error
}

type SessionUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	sessionRepository  sessionRepository
	limitEnforcer      limitEnforcer
}

func (usecase SessionUsecase) ListSessions(ctx context.Context, organizationId string) ([]models.Session, error) {
	return usecase.sessionRepository.ListSessions(ctx, usecase.executorFactory.NewExecutor(), organizationId)
}

// CreateSession counts against the current calendar month's session quota,
// re-checked inside the insert transaction.
func (usecase SessionUsecase) CreateSession(ctx context.Context,
	input models.CreateSessionInput,
) (models.Session, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Session, error) {
		if err := usecase.limitEnforcer.EnforceLimit(ctx, tx,
			input.OrganizationId, models.ResourceSessionsPerMonth); err != nil {
			return models.Session{}, err
		}

		sessionId := uuid.NewString()
		if err := usecase.sessionRepository.CreateSession(ctx, tx, sessionId, input); err != nil {
			return models.Session{}, err
		}
		return usecase.sessionRepository.GetSessionById(ctx, tx, sessionId)
	})
}
