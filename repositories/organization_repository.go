package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories/dbmodels"
)

type OrganizationRepository interface {
	GetOrganizationById(ctx context.Context, exec Executor, organizationId string) (models.Organization, error)
	GetOrganizationByStripeCustomerId(ctx context.Context, exec Executor, stripeCustomerId string) (models.Organization, error)
	CreateOrganization(ctx context.Context, exec Executor, newOrganizationId string, input models.CreateOrganizationInput) error
	UpdateOrganizationSubscription(ctx context.Context, exec Executor, input models.UpdateSubscriptionInput) error
	UpdateOrganizationStripeCustomerId(ctx context.Context, exec Executor, organizationId, stripeCustomerId string) error
}

type OrganizationRepositoryPostgresql struct{}

func (repo *OrganizationRepositoryPostgresql) GetOrganizationById(ctx context.Context,
	exec Executor, organizationId string,
) (models.Organization, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Organization{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectOrganizationColumns...).
			From(dbmodels.TABLE_ORGANIZATIONS).
			Where("id = ?", organizationId),
		dbmodels.AdaptOrganization,
	)
}

func (repo *OrganizationRepositoryPostgresql) GetOrganizationByStripeCustomerId(ctx context.Context,
	exec Executor, stripeCustomerId string,
) (models.Organization, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Organization{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectOrganizationColumns...).
			From(dbmodels.TABLE_ORGANIZATIONS).
			Where("stripe_customer_id = ?", stripeCustomerId),
		dbmodels.AdaptOrganization,
	)
}

func (repo *OrganizationRepositoryPostgresql) CreateOrganization(
	ctx context.Context,
	exec Executor,
	newOrganizationId string,
	input models.CreateOrganizationInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	// tier stays NULL for organizations created without a plan
	var tier any
	if input.Tier != models.TierUnknown {
		tier = input.Tier.String()
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_ORGANIZATIONS).
			Columns(
				"id",
				"name",
				"tier",
				"subscription_status",
			).
			Values(
				newOrganizationId,
				input.Name,
				tier,
				models.SubscriptionNone.String(),
			),
	)
}

func (repo *OrganizationRepositoryPostgresql) UpdateOrganizationSubscription(
	ctx context.Context, exec Executor, input models.UpdateSubscriptionInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	updateRequest := NewQueryBuilder().
		Update(dbmodels.TABLE_ORGANIZATIONS).
		Set("tier", input.Tier.String()).
		Set("subscription_status", input.SubscriptionStatus.String()).
		Set("updated_at", squirrel.Expr("now()"))

	if input.TrialEndsAt.Valid {
		updateRequest = updateRequest.Set("trial_ends_at", input.TrialEndsAt.Time)
	}

	return ExecBuilder(ctx, exec, updateRequest.Where("id = ?", input.OrganizationId))
}

func (repo *OrganizationRepositoryPostgresql) UpdateOrganizationStripeCustomerId(
	ctx context.Context, exec Executor, organizationId, stripeCustomerId string,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_ORGANIZATIONS).
			Set("stripe_customer_id", stripeCustomerId).
			Where("id = ?", organizationId),
	)
	if IsUniqueViolationError(err) {
		return errors.Wrapf(models.ConflictError,
			"stripe customer %s is already linked to an organization", stripeCustomerId)
	}
	return err
}
