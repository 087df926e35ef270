package billing

import (
	"context"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories"
	"github.com/studioflow/studioflow-backend/usecases/executor_factory"
)

// StripeConfig carries everything needed to talk to Stripe. PriceIds maps a
// subscription tier to the Stripe price the checkout session should charge.
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	SuccessUrl    string
	CancelUrl     string
	PriceIds      map[models.Tier]string
}

func (c StripeConfig) IsConfigured() bool {
	return c.SecretKey != "" && c.WebhookSecret != ""
}

type organizationRepository interface {
	GetOrganizationById(ctx context.Context, exec repositories.Executor, organizationId string) (models.Organization, error)
	GetOrganizationByStripeCustomerId(ctx context.Context, exec repositories.Executor,
		stripeCustomerId string) (models.Organization, error)
	UpdateOrganizationSubscription(ctx context.Context, exec repositories.Executor,
		input models.UpdateSubscriptionInput) error
	UpdateOrganizationStripeCustomerId(ctx context.Context, exec repositories.Executor,
		organizationId, stripeCustomerId string) error
}

type BillingUsecase interface {
	CreateCheckoutSession(ctx context.Context, organizationId string, tier models.Tier) (string, error)
	HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error
}

func NewBillingUsecase(
	config StripeConfig,
	executorFactory executor_factory.ExecutorFactory,
	transactionFactory executor_factory.TransactionFactory,
	organizationRepository organizationRepository,
) BillingUsecase {
	if config.IsConfigured() {
		return NewStripeBillingUsecase(config, executorFactory, transactionFactory, organizationRepository)
	}
	return NewDisabledBillingUsecase()
}
