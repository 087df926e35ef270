package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/studioflow/studioflow-backend/api"
	"github.com/studioflow/studioflow-backend/infra"
	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories"
	"github.com/studioflow/studioflow-backend/usecases"
	"github.com/studioflow/studioflow-backend/usecases/billing"
	"github.com/studioflow/studioflow-backend/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:              utils.GetEnv("ENV", "development"),
		AppName:          "studioflow-backend",
		Port:             utils.GetRequiredEnv[string]("PORT"),
		AppUrl:           utils.GetEnv("APP_URL", ""),
		JwtSigningSecret: utils.GetRequiredEnv[string]("AUTHENTICATION_JWT_SIGNING_SECRET"),
		DefaultTimeout:   time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 5)) * time.Second,
	}
	pgConfig := infra.PgConfig{
		Hostname: utils.GetEnv("PG_HOSTNAME", ""),
		Port:     utils.GetEnv("PG_PORT", "5432"),
		User:     utils.GetEnv("PG_USER", ""),
		Password: utils.GetEnv("PG_PASSWORD", ""),
		Database: utils.GetEnv("PG_DATABASE", "studioflow"),
		SslMode:  utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
	stripeConfig := billing.StripeConfig{
		SecretKey:     utils.GetEnv("STRIPE_SECRET_KEY", ""),
		WebhookSecret: utils.GetEnv("STRIPE_WEBHOOK_SECRET", ""),
		SuccessUrl:    utils.GetEnv("STRIPE_CHECKOUT_SUCCESS_URL", ""),
		CancelUrl:     utils.GetEnv("STRIPE_CHECKOUT_CANCEL_URL", ""),
		PriceIds: map[models.Tier]string{
			models.TierStarter:      utils.GetEnv("STRIPE_PRICE_ID_STARTER", ""),
			models.TierProfessional: utils.GetEnv("STRIPE_PRICE_ID_PROFESSIONAL", ""),
			models.TierEnterprise:   utils.GetEnv("STRIPE_PRICE_ID_ENTERPRISE", ""),
		},
	}
	sentryDsn := utils.GetEnv("SENTRY_DSN", "")

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(sentryDsn, apiConfig.Env)
	defer sentry.Flush(3 * time.Second)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString())
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	repos := repositories.NewRepositories(pool)
	uc := usecases.NewUsecases(repos,
		usecases.WithStripeConfig(stripeConfig),
	)

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(ctx,
			errors.Wrap(err, "Error while shutting down the server"))
		return err
	}

	return nil
}
