package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter         ExecutorGetter
	OrganizationRepository OrganizationRepository
	UsageRepository        UsageRepository
	MemberRepository       MemberRepository
	SessionRepository      SessionRepository
	PaymentRepository      PaymentRepository
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		ExecutorGetter:         NewExecutorGetter(pool),
		OrganizationRepository: &OrganizationRepositoryPostgresql{},
		UsageRepository:        &UsageRepositoryPostgresql{},
		MemberRepository:       &MemberRepositoryPostgresql{},
		SessionRepository:      &SessionRepositoryPostgresql{},
		PaymentRepository:      &PaymentRepositoryPostgresql{},
	}
}
