// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// registrationService implements the RegistrationUsecase interface.
type registrationService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	pendingRepo repository.PendingVerificationRepository
	hasher      service.PasswordHasher
	tokenSvc    service.TokenService
	linkSigner  service.VerificationLinkSigner
	mailer      service.MailDispatcher
	settings    usecase.SettingUsecase
	tokenTTL    time.Duration
	storeName   string
	logger      *slog.Logger
	now         func() time.Time
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	PendingRepo repository.PendingVerificationRepository
	Hasher      service.PasswordHasher
	TokenSvc    service.TokenService
	LinkSigner  service.VerificationLinkSigner
	Mailer      service.MailDispatcher
	Settings    usecase.SettingUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	tokenTTL := entity.DefaultVerificationTTL
	if params.Config.Verification != nil && params.Config.Verification.TokenTTL > 0 {
		tokenTTL = params.Config.Verification.TokenTTL
	}

	storeName := ""
	if params.Config.Store != nil {
		storeName = params.Config.Store.Name
	}

	return &registrationService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		pendingRepo: params.PendingRepo,
		hasher:      params.Hasher,
		tokenSvc:    params.TokenSvc,
		linkSigner:  params.LinkSigner,
		mailer:      params.Mailer,
		settings:    params.Settings,
		tokenTTL:    tokenTTL,
		storeName:   storeName,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates the password, hashes it and hands over to Create.
func (srv *registrationService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	pending, err := srv.Create(ctx, strings.TrimSpace(input.Name), email, hashedPassword)
	if err != nil {
		return nil, err
	}

	return &usecase.RegisterOutput{Email: pending.Email, ExpiresAt: pending.TokenExpiresAt}, nil
}

// Create checks both the user table and live pending records, replaces an expired
// pending record for the same email and sends the verification mail after commit.
func (srv *registrationService) Create(ctx context.Context, name, email, passwordHash string) (*entity.PendingVerification, error) {
	email = normalizeEmail(email)
	now := srv.now()

	pending, err := entity.NewPendingVerification(name, email, passwordHash, now, srv.tokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByEmail(ctx, email); err == nil {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("user already exists")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		pendingRepo := repoFactory.PendingVerificationRepo()
		existing, err := pendingRepo.FindByEmail(ctx, email)
		switch {
		case errors.Is(err, repository.ErrPendingVerificationNotFound):
		case err != nil:
			return errors.Wrap(err, "failed to check existing pending verification")
		case !existing.IsExpired(now):
			return domainerrors.ErrVerificationPending.WrapMessage("pending verification still active")
		default:
			if err := pendingRepo.Delete(ctx, existing.ID); err != nil && !errors.Is(err, repository.ErrPendingVerificationNotFound) {
				return errors.Wrap(err, "failed to replace expired pending verification")
			}
		}

		return pendingRepo.Create(ctx, pending)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create pending verification", slog.String("email", email), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Pending verification created",
		slog.String("email", email),
		slog.Time("expires_at", pending.TokenExpiresAt),
	)

	// The record is durable; a lost mail is recoverable through Resend.
	if err := srv.sendVerificationMail(ctx, pending); err != nil {
		srv.log(ctx).Error("Failed to send verification email", slog.String("email", email), slog.Any("error", err))
	}

	return pending, nil
}

// Verify locks the pending row, creates the user and deletes the row in one transaction.
// A concurrent verifier blocks on the row lock and then sees it gone.
func (srv *registrationService) Verify(ctx context.Context, input *usecase.VerifyInput) (*usecase.VerifyOutput, error) {
	email := normalizeEmail(input.Email)

	if !input.SignatureValid {
		srv.log(ctx).Warn("Verification link signature rejected", slog.String("email", email))

		return nil, domainerrors.ErrVerificationInvalidSignature
	}

	now := srv.now()
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pendingRepo := repoFactory.PendingVerificationRepo()

		pending, err := pendingRepo.FindByTokenAndEmailForUpdate(ctx, input.Token, email)
		if errors.Is(err, repository.ErrPendingVerificationNotFound) {
			return domainerrors.ErrVerificationNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to load pending verification")
		}

		// Expired rows are kept so the user can still ask for a new link.
		if pending.IsExpired(now) {
			return domainerrors.ErrVerificationExpired
		}

		newUser := entity.NewVerifiedUser(pending, now)
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user from pending verification")
		}

		if err := pendingRepo.Delete(ctx, pending.ID); err != nil {
			if errors.Is(err, repository.ErrPendingVerificationNotFound) {
				return domainerrors.ErrVerificationNotFound
			}

			return errors.Wrap(err, "failed to delete pending verification")
		}

		user = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Verification failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Pending verification promoted to user", slog.String("email", email), slog.Any("user_id", user.ID))

	accessToken, expiresAt, err := srv.tokenSvc.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	// Only the transaction that consumed the pending row gets here, so the welcome mail goes out once.
	welcome := &service.MailMessage{
		Template:  constants.MailTemplateWelcome,
		To:        user.Email,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Data: map[string]any{
			"name":       user.Name,
			"store_name": srv.currentStoreName(ctx),
		},
	}
	if err := srv.mailer.Send(ctx, welcome); err != nil {
		srv.log(ctx).Error("Failed to send welcome email", slog.String("email", email), slog.Any("error", err))
	}

	return &usecase.VerifyOutput{
		User:                 user,
		AccessToken:          accessToken,
		AccessTokenExpiresAt: expiresAt,
	}, nil
}

// Resend keeps a live token and regenerates an expired one, then re-sends the mail.
func (srv *registrationService) Resend(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	pending, err := srv.pendingRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrPendingVerificationNotFound) {
		return domainerrors.ErrVerificationNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to load pending verification")
	}

	if pending.IsExpired(srv.now()) {
		if err := pending.RegenerateToken(srv.now(), srv.tokenTTL); err != nil {
			return errors.Wrap(err, "failed to regenerate verification token")
		}
		if err := srv.pendingRepo.Update(ctx, pending); err != nil {
			if errors.Is(err, repository.ErrPendingVerificationNotFound) {
				return domainerrors.ErrVerificationNotFound
			}

			return errors.Wrap(err, "failed to save regenerated token")
		}

		srv.log(ctx).Info("Verification token regenerated",
			slog.String("email", email),
			slog.Time("expires_at", pending.TokenExpiresAt),
		)
	}

	if err := srv.sendVerificationMail(ctx, pending); err != nil {
		srv.log(ctx).Error("Failed to resend verification email", slog.String("email", email), slog.Any("error", err))

		return errors.WithStack(err)
	}

	return nil
}

// CleanupExpired deletes every record whose token expiry has passed.
func (srv *registrationService) CleanupExpired(ctx context.Context, force bool, confirm usecase.ConfirmFunc) (int64, error) {
	cutoff := srv.now()

	if !force {
		expired, err := srv.pendingRepo.CountExpired(ctx, cutoff)
		if err != nil {
			return 0, errors.Wrap(err, "failed to count expired pending verifications")
		}
		if expired == 0 {
			return 0, nil
		}
		if confirm == nil || !confirm(expired) {
			srv.log(ctx).Info("Expired pending verification cleanup cancelled", slog.Int64("expired", expired))

			return 0, domainerrors.ErrCleanupNotConfirmed
		}
	}

	deleted, err := srv.pendingRepo.DeleteExpired(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired pending verifications")
	}

	srv.log(ctx).Info("Expired pending verifications deleted", slog.Int64("deleted", deleted), slog.Bool("force", force))

	return deleted, nil
}

// CountExpired counts records whose expiry has passed.
func (srv *registrationService) CountExpired(ctx context.Context) (int64, error) {
	count, err := srv.pendingRepo.CountExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to count expired pending verifications")
	}

	return count, nil
}

// Stats returns total and expired pending counts.
func (srv *registrationService) Stats(ctx context.Context) (*usecase.RegistrationStats, error) {
	total, err := srv.pendingRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending verifications")
	}

	expired, err := srv.CountExpired(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.RegistrationStats{Pending: total, Expired: expired}, nil
}

// Status checks the user table first so a promoted signup reads as verified.
func (srv *registrationService) Status(ctx context.Context, email string) (*usecase.VerificationStatusOutput, error) {
	email = normalizeEmail(email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil && user.IsVerified() {
		return &usecase.VerificationStatusOutput{Status: entity.VerificationStatusVerified}, nil
	}
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to load user")
	}

	pending, err := srv.pendingRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrPendingVerificationNotFound) {
		return &usecase.VerificationStatusOutput{Status: entity.VerificationStatusUnknown}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load pending verification")
	}

	expiresAt := pending.TokenExpiresAt

	return &usecase.VerificationStatusOutput{
		Status:    pending.Status(srv.now()),
		ExpiresAt: &expiresAt,
	}, nil
}

func (srv *registrationService) sendVerificationMail(ctx context.Context, pending *entity.PendingVerification) error {
	verificationURL, err := srv.linkSigner.SignedURL(pending.Token, pending.Email)
	if err != nil {
		return errors.Wrap(err, "failed to sign verification url")
	}

	return srv.mailer.Send(ctx, &service.MailMessage{
		Template:  constants.MailTemplateVerifyEmail,
		To:        pending.Email,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Data: map[string]any{
			"name":             pending.Name,
			"verification_url": verificationURL,
			"expires_at":       pending.TokenExpiresAt.UTC().Format(time.RFC1123),
			"store_name":       srv.currentStoreName(ctx),
		},
	})
}

func (srv *registrationService) currentStoreName(ctx context.Context) string {
	return srv.settings.GetOrDefault(ctx, constants.SettingStoreName, srv.storeName)
}
