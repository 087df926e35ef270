package billing

import (
	"context"

	"github.com/studioflow/studioflow-backend/models"
)

// DisabledBillingUsecase is wired when no Stripe credentials are configured,
// typically on self-hosted deployments where tiers are assigned manually.
type DisabledBillingUsecase struct{}

func NewDisabledBillingUsecase() DisabledBillingUsecase {
	return DisabledBillingUsecase{}
}

func (u DisabledBillingUsecase) CreateCheckoutSession(ctx context.Context, organizationId string, tier models.Tier) (string, error) {
	return "", models.ErrBillingNotConfigured
}

func (u DisabledBillingUsecase) HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error {
	return models.ErrBillingNotConfigured
}
