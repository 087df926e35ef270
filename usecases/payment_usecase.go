package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories"
	"github.com/studioflow/studioflow-backend/usecases/executor_factory"
)

type paymentRepository interface {
	GetPaymentById(ctx context.Context, exec repositories.Executor, paymentId string) (models.Payment, error)
	ListPayments(ctx context.Context, exec repositories.Executor, organizationId string) ([]models.Payment, error)
	RecordPayment(ctx context.Context, exec repositories.Executor, paymentId string,
		input models.RecordPaymentInput) error
}

type PaymentUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	paymentRepository  paymentRepository
	limitEnforcer      limitEnforcer
}

func (usecase PaymentUsecase) ListPayments(ctx context.Context, organizationId string) ([]models.Payment, error) {
	return usecase.paymentRepository.ListPayments(ctx, usecase.executorFactory.NewExecutor(), organizationId)
}

// RecordPayment counts against the current calendar month's payment quota,
// re-checked inside the insert transaction.
func (usecase PaymentUsecase) RecordPayment(ctx context.Context,
	input models.RecordPaymentInput,
) (models.Payment, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Payment, error) {
		if err := usecase.limitEnforcer.EnforceLimit(ctx, tx,
			input.OrganizationId, models.ResourcePaymentsPerMonth); err != nil {
			return models.Payment{}, err
		}

		paymentId := uuid.NewString()
		if err := usecase.paymentRepository.RecordPayment(ctx, tx, paymentId, input); err != nil {
			return models.Payment{}, err
		}
		return usecase.paymentRepository.GetPaymentById(ctx, tx, paymentId)
	})
}
