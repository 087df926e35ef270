package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studioflow/studioflow-backend/models"
)

type ExecutorGetter struct {
	connectionPool *pgxpool.Pool
}

func NewExecutorGetter(pool *pgxpool.Pool) ExecutorGetter {
	return ExecutorGetter{
		connectionPool: pool,
	}
}

func (g ExecutorGetter) GetExecutor() Executor {
	return PgExecutor{
		exec: g.connectionPool,
	}
}

const maxTransactionAttempts = 3

func (g ExecutorGetter) Transaction(
	ctx context.Context,
	fn func(tx Transaction) error,
) error {
	var err error
	// Quota enforcement counts and inserts in the same transaction, which
	// can deadlock under concurrent writes; deadlocked transactions are
	// retried.
	for attempt := 1; attempt <= maxTransactionAttempts; attempt++ {
		err = pgx.BeginFunc(ctx, g.connectionPool, func(tx pgx.Tx) error {
			return fn(PgTx{tx: tx})
		})
		if !IsDeadlockError(err) {
			break
		}
	}

	// The callback can return ErrIgnoreRollBackError to roll back without
	// surfacing an error to the caller.
	if errors.Is(err, models.ErrIgnoreRollBackError) {
		return nil
	}
	return errors.Wrap(err, "error executing transaction")
}
