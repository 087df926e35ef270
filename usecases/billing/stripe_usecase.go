package billing

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories"
	"github.com/studioflow/studioflow-backend/usecases/executor_factory"
	"github.com/studioflow/studioflow-backend/utils"
)

type StripeBillingUsecase struct {
	config                 StripeConfig
	executorFactory        executor_factory.ExecutorFactory
	transactionFactory     executor_factory.TransactionFactory
	organizationRepository organizationRepository
}

func NewStripeBillingUsecase(
	config StripeConfig,
	executorFactory executor_factory.ExecutorFactory,
	transactionFactory executor_factory.TransactionFactory,
	organizationRepository organizationRepository,
) StripeBillingUsecase {
	stripe.Key = config.SecretKey
	return StripeBillingUsecase{
		config:                 config,
		executorFactory:        executorFactory,
		transactionFactory:     transactionFactory,
		organizationRepository: organizationRepository,
	}
}

// CreateCheckoutSession returns the Stripe-hosted checkout url for upgrading
// the organization to the given tier. The Stripe customer is created lazily
// on first checkout and persisted on the organization.
func (u StripeBillingUsecase) CreateCheckoutSession(ctx context.Context,
	organizationId string, tier models.Tier,
) (string, error) {
	priceId, ok := u.config.PriceIds[tier]
	if !ok {
		return "", errors.Wrapf(models.ErrUnknownTier,
			"no Stripe price configured for tier %s", tier)
	}

	exec := u.executorFactory.NewExecutor()
	organization, err := u.organizationRepository.GetOrganizationById(ctx, exec, organizationId)
	if err != nil {
		return "", err
	}

	stripeCustomerId := organization.StripeCustomerId.String
	if stripeCustomerId == "" {
		cust, err := customer.New(&stripe.CustomerParams{
			Name: stripe.String(organization.Name),
			Metadata: map[string]string{
				"organization_id": organization.Id,
			},
		})
		if err != nil {
			return "", errors.Wrap(err, "failed to create Stripe customer")
		}
		stripeCustomerId = cust.ID
		if err := u.organizationRepository.UpdateOrganizationStripeCustomerId(
			ctx, exec, organization.Id, stripeCustomerId); err != nil {
			return "", err
		}
	}

	checkoutSession, err := session.New(&stripe.CheckoutSessionParams{
		Customer: stripe.String(stripeCustomerId),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceId),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(u.config.SuccessUrl),
		CancelURL:  stripe.String(u.config.CancelUrl),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to create Stripe checkout session")
	}
	return checkoutSession.URL, nil
}

// HandleWebhookEvent verifies the payload signature and applies subscription
// lifecycle events to the organization's subscription state. Event types we
// do not care about are acknowledged without action so Stripe stops retrying.
func (u StripeBillingUsecase) HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, u.config.WebhookSecret)
	if err != nil {
		return errors.Wrap(models.BadParameterError, err.Error())
	}

	logger := utils.LoggerFromContext(ctx)

	switch event.Type {
	case "customer.subscription.created",
		"customer.subscription.updated",
		"customer.subscription.deleted":
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return errors.Wrap(models.BadParameterError, err.Error())
		}
		return u.applySubscriptionState(ctx, subscription)
	default:
		logger.DebugContext(ctx, "ignoring Stripe webhook event",
			"event_type", event.Type, "event_id", event.ID)
		return nil
	}
}

func (u StripeBillingUsecase) applySubscriptionState(ctx context.Context, subscription stripe.Subscription) error {
	if subscription.Customer == nil {
		return errors.Wrap(models.BadParameterError, "subscription event without customer")
	}

	tier := u.tierFromSubscription(subscription)
	status := adaptSubscriptionStatus(subscription.Status)

	var trialEndsAt null.Time
	if subscription.TrialEnd > 0 {
		trialEndsAt = null.TimeFrom(time.Unix(subscription.TrialEnd, 0).UTC())
	}

	return u.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		organization, err := u.organizationRepository.GetOrganizationByStripeCustomerId(
			ctx, tx, subscription.Customer.ID)
		if err != nil {
			return err
		}
		return u.organizationRepository.UpdateOrganizationSubscription(ctx, tx,
			models.UpdateSubscriptionInput{
				OrganizationId:     organization.Id,
				Tier:               tier,
				SubscriptionStatus: status,
				TrialEndsAt:        trialEndsAt,
			})
	})
}

func (u StripeBillingUsecase) tierFromSubscription(subscription stripe.Subscription) models.Tier {
	if subscription.Items == nil {
		return models.TierUnknown
	}
	for _, item := range subscription.Items.Data {
		if item.Price == nil {
			continue
		}
		for tier, priceId := range u.config.PriceIds {
			if item.Price.ID == priceId {
				return tier
			}
		}
	}
	return models.TierUnknown
}

func adaptSubscriptionStatus(status stripe.SubscriptionStatus) models.SubscriptionStatus {
	switch status {
	case stripe.SubscriptionStatusTrialing:
		return models.SubscriptionTrialing
	case stripe.SubscriptionStatusActive:
		return models.SubscriptionActive
	case stripe.SubscriptionStatusPastDue, stripe.SubscriptionStatusUnpaid:
		return models.SubscriptionPastDue
	case stripe.SubscriptionStatusCanceled, stripe.SubscriptionStatusIncompleteExpired:
		return models.SubscriptionCancelled
	default:
		return models.SubscriptionNone
	}
}
