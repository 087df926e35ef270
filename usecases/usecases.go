package usecases

import (
	"time"

	"github.com/studioflow/studioflow-backend/repositories"
	"github.com/studioflow/studioflow-backend/usecases/billing"
	"github.com/studioflow/studioflow-backend/usecases/executor_factory"
)

// Usecases is the composition root: it owns the repositories and the
// deployment configuration, and builds a fresh usecase value per request.
type Usecases struct {
	Repositories repositories.Repositories
	stripeConfig billing.StripeConfig
}

type Option func(*Usecases)

func WithStripeConfig(config billing.StripeConfig) Option {
	return func(u *Usecases) {
		u.stripeConfig = config
	}
}

func NewUsecases(repos repositories.Repositories, opts ...Option) Usecases {
	u := Usecases{Repositories: repos}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory: usecases.NewExecutorFactory(),
	}
}

func (usecases *Usecases) NewLicenseUsecase() LicenseUsecase {
	return LicenseUsecase{
		executorFactory:        usecases.NewExecutorFactory(),
		organizationRepository: usecases.Repositories.OrganizationRepository,
		usageRepository:        usecases.Repositories.UsageRepository,
		now:                    time.Now,
	}
}

func (usecases *Usecases) NewOrganizationUsecase() OrganizationUsecase {
	return OrganizationUsecase{
		executorFactory:        usecases.NewExecutorFactory(),
		transactionFactory:     usecases.NewTransactionFactory(),
		organizationRepository: usecases.Repositories.OrganizationRepository,
	}
}

func (usecases *Usecases) NewMemberUsecase() MemberUsecase {
	licenseUsecase := usecases.NewLicenseUsecase()
	return MemberUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		memberRepository:   usecases.Repositories.MemberRepository,
		limitEnforcer:      licenseUsecase,
	}
}

func (usecases *Usecases) NewSessionUsecase() SessionUsecase {
	licenseUsecase := usecases.NewLicenseUsecase()
	return SessionUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		sessionRepository:  usecases.Repositories.SessionRepository,
		limitEnforcer:      licenseUsecase,
	}
}

func (usecases *Usecases) NewPaymentUsecase() PaymentUsecase {
	licenseUsecase := usecases.NewLicenseUsecase()
	return PaymentUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		paymentRepository:  usecases.Repositories.PaymentRepository,
		limitEnforcer:      licenseUsecase,
	}
}

func (usecases *Usecases) NewBillingUsecase() billing.BillingUsecase {
	return billing.NewBillingUsecase(
		usecases.stripeConfig,
		usecases.NewExecutorFactory(),
		usecases.NewTransactionFactory(),
		usecases.Repositories.OrganizationRepository,
	)
}
