package main

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/mail"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/pubsub"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// registry is the slice of RegistrationUsecase the maintenance commands use.
type registry interface {
	CleanupExpired(ctx context.Context, force bool, confirm usecase.ConfirmFunc) (int64, error)
	CountExpired(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*usecase.RegistrationStats, error)
}

// withRegistry runs fn against the RegistrationUsecase built from the API dependency graph
// without its HTTP layer.
func withRegistry(ctx context.Context, fn func(reg registry) error) error {
	var registrationUC usecase.RegistrationUsecase

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewPendingVerificationRepository,
			postgres.NewSettingRepository,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewURLSigner,
			mail.NewDispatcher,
			impl.NewSettingService,
			impl.NewRegistrationService,
		),
		pubsub.Module,
		fx.Populate(&registrationUC),
	)

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start maintenance dependencies")
	}

	runErr := fn(registrationUC)

	stopCtx, stopCancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Warn("Failed to stop maintenance dependencies", slog.Any("error", err))
	}

	return runErr
}
