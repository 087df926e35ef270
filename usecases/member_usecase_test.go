package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/studioflow/studioflow-backend/mocks"
	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/usecases/executor_factory"
)

type MemberUsecaseTestSuite struct {
	suite.Suite
	executorFactory  executor_factory.ExecutorFactoryStub
	memberRepository *mocks.MemberRepository
	limitEnforcer    *mocks.LimitEnforcer

	ctx            context.Context
	organizationId string
	input          models.CreateMemberInput
}

func (suite *MemberUsecaseTestSuite) SetupTest() {
	suite.executorFactory = executor_factory.NewExecutorFactoryStub()
	suite.memberRepository = new(mocks.MemberRepository)
	suite.limitEnforcer = new(mocks.LimitEnforcer)

	suite.ctx = context.Background()
	suite.organizationId = "13617a88-56f5-4baa-8d11-ce102cd46fcd"
	suite.input = models.CreateMemberInput{
		OrganizationId: suite.organizationId,
		Name:           "Ada Lovelace",
		Email:          "ada@example.com",
	}
}

func (suite *MemberUsecaseTestSuite) makeUsecase() MemberUsecase {
	return MemberUsecase{
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.executorFactory,
		memberRepository:   suite.memberRepository,
		limitEnforcer:      suite.limitEnforcer,
	}
}

func (suite *MemberUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.memberRepository.AssertExpectations(t)
	suite.limitEnforcer.AssertExpectations(t)
}

func (suite *MemberUsecaseTestSuite) TestCreateMember() {
	created := models.Member{
		OrganizationId: suite.organizationId,
		Name:           suite.input.Name,
		Email:          suite.input.Email,
		Status:         models.MemberActive,
	}
	suite.limitEnforcer.On("EnforceLimit",
		suite.ctx, mock.Anything, suite.organizationId, models.ResourceMembers).Return(nil)
	suite.memberRepository.On("CreateMember",
		suite.ctx, mock.Anything, mock.AnythingOfType("string"), suite.input).Return(nil)
	suite.memberRepository.On("GetMemberById",
		suite.ctx, mock.Anything, mock.AnythingOfType("string")).Return(created, nil)

	member, err := suite.makeUsecase().CreateMember(suite.ctx, suite.input)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, created, member)
	suite.AssertExpectations()
}

// A full quota blocks the insert; nothing is written.
func (suite *MemberUsecaseTestSuite) TestCreateMember_QuotaExceeded() {
	suite.limitEnforcer.On("EnforceLimit",
		suite.ctx, mock.Anything, suite.organizationId, models.ResourceMembers).
		Return(errors.Wrap(models.ErrQuotaExceeded, "members"))

	_, err := suite.makeUsecase().CreateMember(suite.ctx, suite.input)

	assert.ErrorIs(suite.T(), err, models.ErrQuotaExceeded)
	suite.memberRepository.AssertNotCalled(suite.T(), "CreateMember",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.limitEnforcer.AssertExpectations(suite.T())
}

func (suite *MemberUsecaseTestSuite) TestCreateCoach_QuotaExceeded() {
	suite.limitEnforcer.On("EnforceLimit",
		suite.ctx, mock.Anything, suite.organizationId, models.ResourceCoaches).
		Return(errors.Wrap(models.ErrQuotaExceeded, "coaches"))

	_, err := suite.makeUsecase().CreateCoach(suite.ctx, models.CreateCoachInput{
		OrganizationId: suite.organizationId,
		Name:           "Grace Hopper",
	})

	assert.ErrorIs(suite.T(), err, models.ErrQuotaExceeded)
	suite.limitEnforcer.AssertExpectations(suite.T())
}

func (suite *MemberUsecaseTestSuite) TestListMembers() {
	expected := []models.Member{{Id: "m1", OrganizationId: suite.organizationId}}
	suite.memberRepository.On("ListMembers",
		suite.ctx, mock.Anything, suite.organizationId).Return(expected, nil)

	members, err := suite.makeUsecase().ListMembers(suite.ctx, suite.organizationId)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected, members)
	suite.AssertExpectations()
}

func TestMemberUsecase(t *testing.T) {
	suite.Run(t, new(MemberUsecaseTestSuite))
}
