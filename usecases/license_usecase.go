package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories"
	"github.com/studioflow/studioflow-backend/usecases/executor_factory"
)

type licenseOrganizationRepository interface {
	GetOrganizationById(ctx context.Context, exec repositories.Executor,
		organizationId string) (models.Organization, error)
}

type licenseUsageRepository interface {
	CountActiveMembers(ctx context.Context, exec repositories.Executor, organizationId string) (int, error)
	CountActiveCoaches(ctx context.Context, exec repositories.Executor, organizationId string) (int, error)
	CountSessionsInMonth(ctx context.Context, exec repositories.Executor,
		organizationId string, ref time.Time) (int, error)
	CountPaymentsInMonth(ctx context.Context, exec repositories.Executor,
		organizationId string, ref time.Time) (int, error)
}

// LicenseUsecase implements the advisory quota checks and feature gates
// backed by the tier catalog. All checks are stateless reads: two concurrent
// checks can both pass and let an organization end up one unit over quota,
// which is accepted. Hard enforcement happens in the mutating usecases
// through EnforceLimit, inside the insert transaction.
type LicenseUsecase struct {
	executorFactory        executor_factory.ExecutorFactory
	organizationRepository licenseOrganizationRepository
	usageRepository        licenseUsageRepository
	now                    func() time.Time
}

// CheckLimit decides whether the organization may create one more unit of
// the resource. The live count is reported even for unlimited quotas, for
// display purposes.
func (usecase LicenseUsecase) CheckLimit(
	ctx context.Context,
	organizationId string,
	resource models.ResourceName,
) (models.QuotaCheck, error) {
	if models.ResourceNameFromString(resource.String()) == models.ResourceUnknown {
		return models.QuotaCheck{}, errors.Wrapf(models.ErrUnknownResourceName, "'%s'", resource)
	}

	exec := usecase.executorFactory.NewExecutor()
	organization, err := usecase.organizationRepository.GetOrganizationById(ctx, exec, organizationId)
	if err != nil {
		return models.QuotaCheck{}, err
	}

	current, err := usecase.currentUsage(ctx, exec, organizationId, resource)
	if err != nil {
		return models.QuotaCheck{}, err
	}

	limit := organization.Tier.Quota(resource)
	return models.QuotaCheck{
		Allowed: limit.Allows(current),
		Current: current,
		Limit:   limit,
	}, nil
}

// EnforceLimit is the server-side twin of CheckLimit, meant to be called on
// the transaction that inserts the new unit so the count and the insert are
// atomic. Returns ErrQuotaExceeded on violation.
func (usecase LicenseUsecase) EnforceLimit(
	ctx context.Context,
	exec repositories.Executor,
	organizationId string,
	resource models.ResourceName,
) error {
	organization, err := usecase.organizationRepository.GetOrganizationById(ctx, exec, organizationId)
	if err != nil {
		return err
	}

	current, err := usecase.currentUsage(ctx, exec, organizationId, resource)
	if err != nil {
		return err
	}

	if !organization.Tier.Quota(resource).Allows(current) {
		return errors.Wrapf(models.ErrQuotaExceeded,
			"organization %s is at its %s limit (%d)", organizationId, resource, current)
	}
	return nil
}

func (usecase LicenseUsecase) currentUsage(
	ctx context.Context,
	exec repositories.Executor,
	organizationId string,
	resource models.ResourceName,
) (int, error) {
	switch resource {
	case models.ResourceMembers:
		return usecase.usageRepository.CountActiveMembers(ctx, exec, organizationId)
	case models.ResourceCoaches:
		return usecase.usageRepository.CountActiveCoaches(ctx, exec, organizationId)
	case models.ResourceSessionsPerMonth:
		return usecase.usageRepository.CountSessionsInMonth(ctx, exec, organizationId, usecase.now())
	case models.ResourcePaymentsPerMonth:
		return usecase.usageRepository.CountPaymentsInMonth(ctx, exec, organizationId, usecase.now())
	}
	return 0, errors.Wrapf(models.ErrUnknownResourceName, "'%s'", resource)
}

// CheckFeatureAccess decides whether the feature is available to the
// organization right now. A trialing subscription grants every feature
// regardless of tier: trial users get the full product before picking a
// plan.
func (usecase LicenseUsecase) CheckFeatureAccess(
	ctx context.Context,
	organizationId string,
	feature models.FeatureName,
) (bool, error) {
	if models.FeatureNameFromString(feature.String()) == models.FeatureUnknown {
		return false, errors.Wrapf(models.ErrUnknownFeatureName, "'%s'", feature)
	}

	organization, err := usecase.organizationRepository.GetOrganizationById(ctx,
		usecase.executorFactory.NewExecutor(), organizationId)
	if err != nil {
		return false, err
	}

	if organization.SubscriptionStatus == models.SubscriptionTrialing {
		return true, nil
	}
	return organization.Tier.HasFeature(feature), nil
}

// Entitlements returns the full licensing snapshot of the organization: its
// tier and status plus every resolved feature flag and quota.
func (usecase LicenseUsecase) Entitlements(
	ctx context.Context,
	organizationId string,
) (models.OrganizationEntitlements, error) {
	organization, err := usecase.organizationRepository.GetOrganizationById(ctx,
		usecase.executorFactory.NewExecutor(), organizationId)
	if err != nil {
		return models.OrganizationEntitlements{}, err
	}

	trialing := organization.SubscriptionStatus == models.SubscriptionTrialing
	features := make(map[models.FeatureName]bool, len(models.ValidFeatureNames))
	for _, feature := range models.ValidFeatureNames {
		features[feature] = trialing || organization.Tier.HasFeature(feature)
	}
	limits := make(map[models.ResourceName]models.Limit, len(models.ValidResourceNames))
	for _, resource := range models.ValidResourceNames {
		limits[resource] = organization.Tier.Quota(resource)
	}

	return models.OrganizationEntitlements{
		Tier:               organization.Tier,
		SubscriptionStatus: organization.SubscriptionStatus,
		Features:           features,
		Limits:             limits,
	}, nil
}

// UpgradeBenefits computes what a tier change unlocks: the features enabled
// on the target but not on the current tier, and the price delta. Purely
// descriptive; downgrades yield a negative price difference and usually an
// empty feature list.
func (usecase LicenseUsecase) UpgradeBenefits(
	currentTier, targetTier models.Tier,
) (models.UpgradeBenefits, error) {
	if currentTier == models.TierUnknown || targetTier == models.TierUnknown {
		return models.UpgradeBenefits{}, errors.Wrap(models.ErrUnknownTier,
			"both tiers must be valid to compare them")
	}

	newFeatures := make([]models.FeatureName, 0)
	for _, feature := range models.ValidFeatureNames {
		if targetTier.HasFeature(feature) && !currentTier.HasFeature(feature) {
			newFeatures = append(newFeatures, feature)
		}
	}

	return models.UpgradeBenefits{
		NewFeatures: newFeatures,
		PriceDifference: targetTier.Configuration().MonthlyPrice -
			currentTier.Configuration().MonthlyPrice,
	}, nil
}
