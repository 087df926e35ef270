package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories"
)

type PaymentRepository struct {
	mock.Mock
}

func (r *PaymentRepository) GetPaymentById(ctx context.Context, exec repositories.Executor,
	paymentId string,
) (models.Payment, error) {
	args := r.Called(ctx, exec, paymentId)
	return args.Get(0).(models.Payment), args.Error(1)
}

func (r *PaymentRepository) ListPayments(ctx context.Context, exec repositories.Executor,
	organizationId string,
) ([]models.Payment, error) {
	args := r.Called(ctx, exec, organizationId)
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (r *PaymentRepository) RecordPayment(ctx context.Context, exec repositories.Executor,
	paymentId string, input models.RecordPaymentInput,
) error {
	args := r.Called(ctx, exec, paymentId, input)
	return args.Error(0)
}
