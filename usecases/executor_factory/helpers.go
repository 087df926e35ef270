package executor_factory

import (
	"context"

	"github.com/studioflow/studioflow-backend/repositories"
)

// TransactionReturnValue runs fn in a transaction and returns its value,
// rolling back when fn errors.
func TransactionReturnValue[ReturnType any](
	ctx context.Context,
	factory TransactionFactory,
	fn func(tx repositories.Transaction) (ReturnType, error),
) (ReturnType, error) {
	var value ReturnType
	transactionErr := factory.Transaction(ctx, func(tx repositories.Transaction) error {
		var fnErr error
		value, fnErr = fn(tx)
		return fnErr
	})
	return value, transactionErr
}
