package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/studioflow/studioflow-backend/mocks"
	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/usecases/executor_factory"
)

type LicenseUsecaseTestSuite struct {
	suite.Suite
	executorFactory        executor_factory.ExecutorFactoryStub
	organizationRepository *mocks.OrganizationRepository
	usageRepository        *mocks.UsageRepository

	ctx            context.Context
	organizationId string
	now            time.Time
	repositoryErr  error
}

func (suite *LicenseUsecaseTestSuite) SetupTest() {
	suite.executorFactory = executor_factory.NewExecutorFactoryStub()
	suite.organizationRepository = new(mocks.OrganizationRepository)
	suite.usageRepository = new(mocks.UsageRepository)

	suite.ctx = context.Background()
	suite.organizationId = "0ae6fda7-f7b3-4218-9fc3-4efa329432a7"
	suite.now = time.Date(2025, time.May, 15, 10, 0, 0, 0, time.UTC)
	suite.repositoryErr = errors.New("some repository error")
}

func (suite *LicenseUsecaseTestSuite) makeUsecase() LicenseUsecase {
	return LicenseUsecase{
		executorFactory:        suite.executorFactory,
		organizationRepository: suite.organizationRepository,
		usageRepository:        suite.usageRepository,
		now:                    func() time.Time { return suite.now },
	}
}

func (suite *LicenseUsecaseTestSuite) onGetOrganization(org models.Organization, err error) {
	suite.organizationRepository.On("GetOrganizationById",
		suite.ctx, mock.Anything, suite.organizationId).Return(org, err)
}

func (suite *LicenseUsecaseTestSuite) starterOrganization() models.Organization {
	return models.Organization{
		Id:                 suite.organizationId,
		Tier:               models.TierStarter,
		SubscriptionStatus: models.SubscriptionActive,
	}
}

func (suite *LicenseUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.organizationRepository.AssertExpectations(t)
	suite.usageRepository.AssertExpectations(t)
}

func (suite *LicenseUsecaseTestSuite) TestCheckLimit_UnderLimit() {
	suite.onGetOrganization(suite.starterOrganization(), nil)
	suite.usageRepository.On("CountActiveMembers",
		suite.ctx, mock.Anything, suite.organizationId).Return(24, nil)

	check, err := suite.makeUsecase().CheckLimit(suite.ctx, suite.organizationId, models.ResourceMembers)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, models.QuotaCheck{Allowed: true, Current: 24, Limit: models.FiniteLimit(25)}, check)
	suite.AssertExpectations()
}

func (suite *LicenseUsecaseTestSuite) TestCheckLimit_AtLimit() {
	suite.onGetOrganization(suite.starterOrganization(), nil)
	suite.usageRepository.On("CountActiveMembers",
		suite.ctx, mock.Anything, suite.organizationId).Return(25, nil)

	check, err := suite.makeUsecase().CheckLimit(suite.ctx, suite.organizationId, models.ResourceMembers)

	t := suite.T()
	assert.NoError(t, err)
	assert.False(t, check.Allowed)
	assert.Equal(t, 25, check.Current)
	assert.Equal(t, 25, check.Limit.Int())
	suite.AssertExpectations()
}

// The quota may have been lowered after units were created; the check must
// still deny.
func (suite *LicenseUsecaseTestSuite) TestCheckLimit_OverLimit() {
	suite.onGetOrganization(suite.starterOrganization(), nil)
	suite.usageRepository.On("CountActiveMembers",
		suite.ctx, mock.Anything, suite.organizationId).Return(30, nil)

	check, err := suite.makeUsecase().CheckLimit(suite.ctx, suite.organizationId, models.ResourceMembers)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), check.Allowed)
	suite.AssertExpectations()
}

func (suite *LicenseUsecaseTestSuite) TestCheckLimit_Unlimited() {
	org := suite.starterOrganization()
	org.Tier = models.TierEnterprise
	suite.onGetOrganization(org, nil)
	suite.usageRepository.On("CountActiveMembers",
		suite.ctx, mock.Anything, suite.organizationId).Return(9000, nil)

	check, err := suite.makeUsecase().CheckLimit(suite.ctx, suite.organizationId, models.ResourceMembers)

	t := suite.T()
	assert.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Equal(t, 9000, check.Current)
	assert.Equal(t, -1, check.Limit.Int())
	suite.AssertExpectations()
}

func (suite *LicenseUsecaseTestSuite) TestCheckLimit_MonthlyResourceUsesClock() {
	suite.onGetOrganization(suite.starterOrganization(), nil)
	suite.usageRepository.On("CountSessionsInMonth",
		suite.ctx, mock.Anything, suite.organizationId, suite.now).Return(10, nil)

	check, err := suite.makeUsecase().CheckLimit(suite.ctx, suite.organizationId,
		models.ResourceSessionsPerMonth)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), check.Allowed)
	suite.AssertExpectations()
}

// An organization that was never assigned a tier has every quota at zero.
func (suite *LicenseUsecaseTestSuite) TestCheckLimit_NoTier() {
	org := suite.starterOrganization()
	org.Tier = models.TierUnknown
	org.SubscriptionStatus = models.SubscriptionNone
	suite.onGetOrganization(org, nil)
	suite.usageRepository.On("CountActiveMembers",
		suite.ctx, mock.Anything, suite.organizationId).Return(0, nil)

	check, err := suite.makeUsecase().CheckLimit(suite.ctx, suite.organizationId, models.ResourceMembers)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), check.Allowed)
	suite.AssertExpectations()
}

func (suite *LicenseUsecaseTestSuite) TestCheckLimit_UnknownResource() {
	_, err := suite.makeUsecase().CheckLimit(suite.ctx, suite.organizationId, "fax_machines")

	assert.ErrorIs(suite.T(), err, models.ErrUnknownResourceName)
	suite.AssertExpectations()
}

func (suite *LicenseUsecaseTestSuite) TestCheckLimit_OrganizationNotFound() {
	suite.onGetOrganization(models.Organization{},
		errors.Wrap(models.NotFoundError, "organization"))

	_, err := suite.makeUsecase().CheckLimit(suite.ctx, suite.organizationId, models.ResourceMembers)

	assert.ErrorIs(suite.T(), err, models.NotFoundError)
	suite.AssertExpectations()
}

// A failed count read surfaces as an error, never as an allowed check.
func (suite *LicenseUsecaseTestSuite) TestCheckLimit_UsageReadFailure() {
	suite.onGetOrganization(suite.starterOrganization(), nil)
	suite.usageRepository.On("CountActiveMembers",
		suite.ctx, mock.Anything, suite.organizationId).Return(0, suite.repositoryErr)

	check, err := suite.makeUsecase().CheckLimit(suite.ctx, suite.organizationId, models.ResourceMembers)

	assert.ErrorIs(suite.T(), err, suite.repositoryErr)
	assert.False(suite.T(), check.Allowed)
	suite.AssertExpectations()
}

func (suite *LicenseUsecaseTestSuite) TestEnforceLimit_UnderLimit() {
	suite.onGetOrganization(suite.starterOrganization(), nil)
	suite.usageRepository.On("CountActiveMembers",
		suite.ctx, mock.Anything, suite.organizationId).Return(10, nil)

	err := suite.makeUsecase().EnforceLimit(suite.ctx,
		suite.executorFactory.NewExecutor(), suite.organizationId, models.ResourceMembers)

	assert.NoError(suite.T(), err)
	suite.AssertExpectations()
}

func (suite *LicenseUsecaseTestSuite) TestEnforceLimit_QuotaExceeded() {
	suite.onGetOrganization(suite.starterOrganization(), nil)
	suite.usageRepository.On("CountActiveMembers",
		suite.ctx, mock.Anything, suite.organizationId).Return(25, nil)

	err := suite.makeUsecase().EnforceLimit(suite.ctx,
		suite.executorFactory.NewExecutor(), suite.organizationId, models.ResourceMembers)

	assert.ErrorIs(suite.T(), err, models.ErrQuotaExceeded)
	suite.AssertExpectations()
}

func (suite *LicenseUsecaseTestSuite) TestCheckFeatureAccess_FollowsCatalog() {
	suite.onGetOrganization(suite.starterOrganization(), nil)

	hasAccess, err := suite.makeUsecase().CheckFeatureAccess(suite.ctx,
		suite.organizationId, models.FeatureStripePayments)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), hasAccess)
	suite.AssertExpectations()
}

// Trialing organizations get every feature, whatever their tier.
func (suite *LicenseUsecaseTestSuite) TestCheckFeatureAccess_Trialing() {
	org := suite.starterOrganization()
	org.SubscriptionStatus = models.SubscriptionTrialing
	suite.onGetOrganization(org, nil)

	hasAccess, err := suite.makeUsecase().CheckFeatureAccess(suite.ctx,
		suite.organizationId, models.FeatureStripePayments)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), hasAccess)
	suite.AssertExpectations()
}

func (suite *LicenseUsecaseTestSuite) TestCheckFeatureAccess_NoTier() {
	org := suite.starterOrganization()
	org.Tier = models.TierUnknown
	org.SubscriptionStatus = models.SubscriptionNone
	suite.onGetOrganization(org, nil)

	hasAccess, err := suite.makeUsecase().CheckFeatureAccess(suite.ctx,
		suite.organizationId, models.FeatureMemberManagement)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), hasAccess)
	suite.AssertExpectations()
}

func (suite *LicenseUsecaseTestSuite) TestCheckFeatureAccess_UnknownFeature() {
	hasAccess, err := suite.makeUsecase().CheckFeatureAccess(suite.ctx,
		suite.organizationId, "time_travel")

	assert.ErrorIs(suite.T(), err, models.ErrUnknownFeatureName)
	assert.False(suite.T(), hasAccess)
	suite.AssertExpectations()
}

func (suite *LicenseUsecaseTestSuite) TestEntitlements_ActiveFollowsCatalog() {
	suite.onGetOrganization(suite.starterOrganization(), nil)

	entitlements, err := suite.makeUsecase().Entitlements(suite.ctx, suite.organizationId)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, models.TierStarter, entitlements.Tier)
	assert.Equal(t, models.SubscriptionActive, entitlements.SubscriptionStatus)
	for _, feature := range models.ValidFeatureNames {
		assert.Equal(t, models.TierStarter.HasFeature(feature), entitlements.Features[feature],
			"feature %s", feature)
	}
	assert.Equal(t, models.FiniteLimit(25), entitlements.Limits[models.ResourceMembers])
	suite.AssertExpectations()
}

func (suite *LicenseUsecaseTestSuite) TestEntitlements_TrialingGrantsAllFeatures() {
	org := suite.starterOrganization()
	org.SubscriptionStatus = models.SubscriptionTrialing
	suite.onGetOrganization(org, nil)

	entitlements, err := suite.makeUsecase().Entitlements(suite.ctx, suite.organizationId)

	t := suite.T()
	assert.NoError(t, err)
	for _, feature := range models.ValidFeatureNames {
		assert.True(t, entitlements.Features[feature], "feature %s", feature)
	}
	// The trial grants features, not quotas.
	assert.Equal(t, models.FiniteLimit(25), entitlements.Limits[models.ResourceMembers])
	suite.AssertExpectations()
}

func (suite *LicenseUsecaseTestSuite) TestUpgradeBenefits_StarterToProfessional() {
	benefits, err := suite.makeUsecase().UpgradeBenefits(
		models.TierStarter, models.TierProfessional)

	t := suite.T()
	assert.NoError(t, err)
	assert.Contains(t, benefits.NewFeatures, models.FeatureStripePayments)
	assert.Contains(t, benefits.NewFeatures, models.FeatureSmsNotifications)
	assert.Equal(t, int64(50), benefits.PriceDifference)

	for _, feature := range benefits.NewFeatures {
		assert.True(t, models.TierProfessional.HasFeature(feature))
		assert.False(t, models.TierStarter.HasFeature(feature))
	}
}

func (suite *LicenseUsecaseTestSuite) TestUpgradeBenefits_Downgrade() {
	benefits, err := suite.makeUsecase().UpgradeBenefits(
		models.TierProfessional, models.TierStarter)

	t := suite.T()
	assert.NoError(t, err)
	assert.Empty(t, benefits.NewFeatures)
	assert.Equal(t, int64(-50), benefits.PriceDifference)
}

func (suite *LicenseUsecaseTestSuite) TestUpgradeBenefits_UnknownTier() {
	_, err := suite.makeUsecase().UpgradeBenefits(models.TierUnknown, models.TierProfessional)

	assert.ErrorIs(suite.T(), err, models.ErrUnknownTier)
}

func TestLicenseUsecase(t *testing.T) {
	suite.Run(t, new(LicenseUsecaseTestSuite))
}
