package billing

import (
	"context"
	"testing"

	"github.com/stripe/stripe-go/v82"
	"github.com/stretchr/testify/assert"

	"github.com/studioflow/studioflow-backend/models"
)

func TestAdaptSubscriptionStatus(t *testing.T) {
	cases := map[stripe.SubscriptionStatus]models.SubscriptionStatus{
		stripe.SubscriptionStatusTrialing:          models.SubscriptionTrialing,
		stripe.SubscriptionStatusActive:            models.SubscriptionActive,
		stripe.SubscriptionStatusPastDue:           models.SubscriptionPastDue,
		stripe.SubscriptionStatusUnpaid:            models.SubscriptionPastDue,
		stripe.SubscriptionStatusCanceled:          models.SubscriptionCancelled,
		stripe.SubscriptionStatusIncompleteExpired: models.SubscriptionCancelled,
		stripe.SubscriptionStatusIncomplete:        models.SubscriptionNone,
	}

	for stripeStatus, expected := range cases {
		assert.Equal(t, expected, adaptSubscriptionStatus(stripeStatus),
			"stripe status %s", stripeStatus)
	}
}

func TestTierFromSubscription(t *testing.T) {
	usecase := StripeBillingUsecase{
		config: StripeConfig{
			PriceIds: map[models.Tier]string{
				models.TierStarter:      "price_starter",
				models.TierProfessional: "price_professional",
			},
		},
	}

	t.Run("known price", func(t *testing.T) {
		tier := usecase.tierFromSubscription(stripe.Subscription{
			Items: &stripe.SubscriptionItemList{
				Data: []*stripe.SubscriptionItem{
					{Price: &stripe.Price{ID: "price_professional"}},
				},
			},
		})
		assert.Equal(t, models.TierProfessional, tier)
	})

	t.Run("unknown price", func(t *testing.T) {
		tier := usecase.tierFromSubscription(stripe.Subscription{
			Items: &stripe.SubscriptionItemList{
				Data: []*stripe.SubscriptionItem{
					{Price: &stripe.Price{ID: "price_from_another_deployment"}},
				},
			},
		})
		assert.Equal(t, models.TierUnknown, tier)
	})

	t.Run("no items", func(t *testing.T) {
		assert.Equal(t, models.TierUnknown, usecase.tierFromSubscription(stripe.Subscription{}))
	})
}

func TestStripeConfig_IsConfigured(t *testing.T) {
	assert.False(t, StripeConfig{}.IsConfigured())
	assert.False(t, StripeConfig{SecretKey: "sk_test"}.IsConfigured())
	assert.True(t, StripeConfig{SecretKey: "sk_test", WebhookSecret: "whsec"}.IsConfigured())
}

func TestDisabledBillingUsecase(t *testing.T) {
	usecase := NewDisabledBillingUsecase()

	_, err := usecase.CreateCheckoutSession(context.Background(), "org", models.TierProfessional)
	assert.ErrorIs(t, err, models.ErrBillingNotConfigured)

	err = usecase.HandleWebhookEvent(context.Background(), nil, "")
	assert.ErrorIs(t, err, models.ErrBillingNotConfigured)
}
