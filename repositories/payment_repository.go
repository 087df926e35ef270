package repositories

import (
	"context"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories/dbmodels"
)

type PaymentRepository interface {
	GetPaymentById(ctx context.Context, exec Executor, paymentId string) (models.Payment, error)
	ListPayments(ctx context.Context, exec Executor, organizationId string) ([]models.Payment, error)
	RecordPayment(ctx context.Context, exec Executor, paymentId string, input models.RecordPaymentInput) error
}

type PaymentRepositoryPostgresql struct{}

func (repo *PaymentRepositoryPostgresql) GetPaymentById(ctx context.Context,
	exec Executor, paymentId string,
) (models.Payment, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Payment{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectPaymentColumns...).
			From(dbmodels.TABLE_PAYMENTS).
			Where("id = ?", paymentId),
		dbmodels.AdaptPayment,
	)
}

func (repo *PaymentRepositoryPostgresql) ListPayments(ctx context.Context,
	exec Executor, organizationId string,
) ([]models.Payment, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectPaymentColumns...).
			From(dbmodels.TABLE_PAYMENTS).
			Where("org_id = ?", organizationId).
			OrderBy("created_at DESC"),
		dbmodels.AdaptPayment,
	)
}

func (repo *PaymentRepositoryPostgresql) RecordPayment(
	ctx context.Context,
	exec Executor,
	paymentId string,
	input models.RecordPaymentInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_PAYMENTS).
			Columns(
				"id",
				"org_id",
				"member_id",
				"amount_cents",
				"currency",
				"method",
			).
			Values(
				paymentId,
				input.OrganizationId,
				input.MemberId,
				input.AmountCents,
				input.Currency,
				input.Method,
			),
	)
}
