package usecases

import (
	"context"

	"github.com/studioflow/studioflow-backend/usecases/executor_factory"
)

type LivenessUsecase struct {
	executorFactory executor_factory.ExecutorFactory
}

func (usecase LivenessUsecase) Liveness(ctx context.Context) error {
	_, err := usecase.executorFactory.NewExecutor().Exec(ctx, "SELECT 1")
	return err
}
