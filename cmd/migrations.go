package cmd

import (
	"context"
	"fmt"

	"github.com/studioflow/studioflow-backend/infra"
	"github.com/studioflow/studioflow-backend/repositories"
	"github.com/studioflow/studioflow-backend/utils"
)

func RunMigrations() error {
	pgConfig := infra.PgConfig{
		Hostname: utils.GetEnv("PG_HOSTNAME", ""),
		Port:     utils.GetEnv("PG_PORT", "5432"),
		User:     utils.GetEnv("PG_USER", ""),
		Password: utils.GetEnv("PG_PASSWORD", ""),
		Database: utils.GetEnv("PG_DATABASE", "studioflow"),
		SslMode:  utils.GetEnv("PG_SSL_MODE", "prefer"),
	}

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	migrater := repositories.NewMigrater(pgConfig.GetConnectionString())
	if err := migrater.Run(ctx); err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error running migrations: %v", err))
		return err
	}

	return nil
}
