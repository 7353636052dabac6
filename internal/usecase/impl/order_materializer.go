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

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// maxOrderNumberAttempts bounds regeneration after an order_number collision.
	maxOrderNumberAttempts = 3

	defaultProviderTimeout = 10 * time.Second
	defaultCustomerName    = "Customer"
)

type eventHandler func(ctx context.Context, event *service.PaymentEvent) error

// orderMaterializer implements the OrderUsecase interface.
type orderMaterializer struct {
	txManager       repository.TransactionManager
	orderRepo       repository.OrderRepository
	cartRepo        repository.CartRepository
	userRepo        repository.UserRepository
	addressRepo     repository.AddressRepository
	gateway         service.PaymentGateway
	mailer          service.MailDispatcher
	qrcode          service.QRCodeService
	settings        usecase.SettingUsecase
	handlers        map[string]eventHandler
	providerTimeout time.Duration
	defaultCurrency string
	storeName       string
	logger          *slog.Logger
	now             func() time.Time
}

// OrderMaterializerParams holds dependencies for OrderMaterializer, injected by Fx.
type OrderMaterializerParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	CartRepo    repository.CartRepository
	UserRepo    repository.UserRepository
	AddressRepo repository.AddressRepository
	Gateway     service.PaymentGateway
	Mailer      service.MailDispatcher
	QRCode      service.QRCodeService
	Settings    usecase.SettingUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderMaterializer is the constructor for orderMaterializer.
func NewOrderMaterializer(params OrderMaterializerParams) usecase.OrderUsecase {
	srv := &orderMaterializer{
		txManager:       params.TxManager,
		orderRepo:       params.OrderRepo,
		cartRepo:        params.CartRepo,
		userRepo:        params.UserRepo,
		addressRepo:     params.AddressRepo,
		gateway:         params.Gateway,
		mailer:          params.Mailer,
		qrcode:          params.QRCode,
		settings:        params.Settings,
		providerTimeout: defaultProviderTimeout,
		logger:          params.Logger,
		now:             time.Now,
	}

	if params.Config.Stripe != nil && params.Config.Stripe.RequestTimeout > 0 {
		srv.providerTimeout = params.Config.Stripe.RequestTimeout
	}
	if params.Config.Store != nil {
		srv.defaultCurrency = params.Config.Store.DefaultCurrency
		srv.storeName = params.Config.Store.Name
	}

	srv.handlers = map[string]eventHandler{
		constants.EventCheckoutSessionCompleted: srv.handleCheckoutSessionCompleted,
		constants.EventPaymentIntentSucceeded:   srv.handlePaymentIntentSucceeded,
	}

	return srv
}

func (srv *orderMaterializer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleEvent looks the event type up in the dispatch table.
func (srv *orderMaterializer) HandleEvent(ctx context.Context, event *service.PaymentEvent) error {
	if event == nil {
		return domainerrors.ErrWebhookPayloadInvalid
	}

	handler, ok := srv.handlers[event.Type]
	if !ok {
		srv.log(ctx).Info("Ignoring unhandled payment event",
			slog.String("event_id", event.ID),
			slog.String("event_type", event.Type),
		)

		return nil
	}

	return handler(ctx, event)
}

func (srv *orderMaterializer) handleCheckoutSessionCompleted(ctx context.Context, event *service.PaymentEvent) error {
	session := event.Session
	if session == nil || session.ID == "" {
		return domainerrors.ErrWebhookPayloadInvalid.WithDetails("checkout session missing from event")
	}

	if session.PaymentStatus != constants.CheckoutPaymentStatusPaid {
		srv.log(ctx).Info("Checkout session not paid, skipping",
			slog.String("session_id", session.ID),
			slog.String("payment_status", session.PaymentStatus),
		)

		return nil
	}

	_, err := srv.CreateOrderFromSession(ctx, session.ID, nil, session)

	return err
}

func (srv *orderMaterializer) handlePaymentIntentSucceeded(ctx context.Context, event *service.PaymentEvent) error {
	intent := event.PaymentIntent
	if intent == nil {
		return domainerrors.ErrWebhookPayloadInvalid.WithDetails("payment intent missing from event")
	}

	sessionID := intent.Metadata[constants.MetadataCheckoutSessionID]
	if sessionID == "" {
		srv.log(ctx).Info("Payment intent carries no checkout session, skipping",
			slog.String("payment_intent_id", intent.ID),
		)

		return nil
	}

	_, err := srv.CreateOrderFromSession(ctx, sessionID, intent, nil)

	return err
}

// CreateOrderFromSession checks for an existing order first; the unique index on
// stripe_checkout_session_id settles races between concurrent deliveries.
func (srv *orderMaterializer) CreateOrderFromSession(
	ctx context.Context,
	sessionID string,
	paymentIntent *service.PaymentIntent,
	session *service.CheckoutSession,
) (*entity.Order, error) {
	logger := srv.log(ctx).With(slog.String("session_id", sessionID))

	existing, err := srv.orderRepo.FindByCheckoutSessionID(ctx, sessionID)
	if err == nil {
		logger.Info("Order already exists for checkout session", slog.String("order_number", existing.OrderNumber))
		srv.ensureConfirmationEmail(ctx, logger, existing, nil)

		return existing, nil
	}
	if !errors.Is(err, repository.ErrOrderNotFound) {
		logger.Error("Failed to check for existing order", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check for existing order")
	}

	if session == nil {
		session, err = srv.retrieveSession(ctx, sessionID)
		if err != nil {
			logger.Error("Failed to retrieve checkout session", slog.Any("error", err))

			return nil, err
		}
	}

	cart, err := srv.resolveCart(ctx, session.Metadata)
	if errors.Is(err, domainerrors.ErrCartNotFound) {
		// A concurrent delivery may have committed the order and torn the cart down meanwhile.
		if existing, findErr := srv.orderRepo.FindByCheckoutSessionID(ctx, sessionID); findErr == nil {
			logger.Info("Order materialized concurrently", slog.String("order_number", existing.OrderNumber))
			srv.ensureConfirmationEmail(ctx, logger, existing, nil)

			return existing, nil
		}
	}
	if err != nil {
		logger.Error("Cannot materialize order without a usable cart", slog.Any("error", err))

		return nil, err
	}

	shippingAddr, err := shippingAddressFromSession(session)
	if err != nil {
		logger.Error("Cannot materialize order without a shipping address", slog.Any("error", err))

		return nil, err
	}

	totals := computeTotals(cart, session)
	if totals.NegativeSubtotal() {
		logger.Error("Provider amounts imply a negative subtotal",
			slog.String("total", totals.Total.StringFixed(2)),
			slog.String("tax", totals.Tax.StringFixed(2)),
			slog.String("shipping", totals.Shipping.StringFixed(2)),
		)

		return nil, domainerrors.ErrOrderCreationFailed.WrapMessage("provider amounts imply a negative subtotal")
	}
	if totals.ShippingMismatch() {
		logger.Warn("Charged shipping disagrees with cart shipping",
			slog.String("charged_shipping", totals.Shipping.StringFixed(2)),
			slog.String("cart_shipping", totals.CartShipping.Decimal.StringFixed(2)),
		)
	}
	if totals.CartMismatch() {
		logger.Warn("Provider amounts disagree with cart subtotal",
			slog.String("derived_subtotal", totals.Subtotal.StringFixed(2)),
			slog.String("cart_subtotal", totals.CartSubtotal.StringFixed(2)),
		)
	}

	order, err := srv.buildOrder(ctx, session, paymentIntent, cart, totals)
	if err != nil {
		return nil, err
	}
	shippingAddr.UserID = order.UserID
	if shippingAddr.Phone == "" {
		shippingAddr.Phone = order.GuestPhone
	}

	created, winner, err := srv.persistOrder(ctx, logger, order, cart, shippingAddr)
	if err != nil {
		logger.Error("Failed to persist order", slog.Any("error", err))

		return nil, err
	}
	if winner {
		srv.ensureConfirmationEmail(ctx, logger, created, nil)

		return created, nil
	}

	logger.Info("Order materialized from checkout session",
		slog.String("order_number", created.OrderNumber),
		slog.String("total", created.Total.StringFixed(2)),
		slog.Int("items", len(created.Items)),
	)

	srv.ensureConfirmationEmail(ctx, logger, created, shippingAddr)

	return created, nil
}

func (srv *orderMaterializer) retrieveSession(ctx context.Context, sessionID string) (*service.CheckoutSession, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, srv.providerTimeout)
	defer cancel()

	session, err := srv.gateway.RetrieveCheckoutSession(fetchCtx, sessionID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return session, nil
}

// resolveCart prefers cart_id and falls back to the guest session id.
func (srv *orderMaterializer) resolveCart(ctx context.Context, metadata map[string]string) (*entity.Cart, error) {
	var (
		cart *entity.Cart
		err  = repository.ErrCartNotFound
	)

	if raw := metadata[constants.MetadataCartID]; raw != "" {
		cartID, parseErr := uuid.Parse(raw)
		if parseErr == nil {
			cart, err = srv.cartRepo.FindByID(ctx, cartID)
		}
	}
	if errors.Is(err, repository.ErrCartNotFound) {
		if guestSessionID := metadata[constants.MetadataGuestSessionID]; guestSessionID != "" {
			cart, err = srv.cartRepo.FindByGuestSessionID(ctx, guestSessionID)
		}
	}

	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, domainerrors.ErrCartNotFound.WrapMessage("no cart matches the session metadata")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty.WrapMessage("cart has no purchasable items")
	}

	return cart, nil
}

func (srv *orderMaterializer) buildOrder(
	ctx context.Context,
	session *service.CheckoutSession,
	paymentIntent *service.PaymentIntent,
	cart *entity.Cart,
	totals orderTotals,
) (*entity.Order, error) {
	metadata := session.Metadata

	currency := session.Currency
	if currency == "" {
		currency = srv.settings.GetOrDefault(ctx, constants.SettingDefaultCurrency, srv.defaultCurrency)
	}

	paymentIntentID := session.PaymentIntentID
	if paymentIntent != nil && paymentIntent.ID != "" {
		paymentIntentID = paymentIntent.ID
	}

	order := &entity.Order{
		Status:                  entity.OrderStatusPending,
		PaymentStatus:           entity.PaymentStatusPending,
		Subtotal:                totals.Subtotal,
		Tax:                     totals.Tax,
		Shipping:                totals.Shipping,
		Total:                   totals.Total,
		Currency:                strings.ToUpper(currency),
		StripeCheckoutSessionID: session.ID,
		StripePaymentIntentID:   paymentIntentID,
		Notes:                   metadata[constants.MetadataOrderNotes],
	}

	// The session completed, so the payment settled before the order exists.
	if err := order.TransitionPaymentTo(entity.PaymentStatusSucceeded); err != nil {
		return nil, err
	}
	if err := order.TransitionTo(entity.OrderStatusProcessing); err != nil {
		return nil, err
	}

	if raw := metadata[constants.MetadataUserID]; raw != "" {
		if userID, err := uuid.Parse(raw); err == nil {
			order.UserID = &userID
		} else {
			srv.log(ctx).Warn("Ignoring malformed user id in session metadata",
				slog.String("session_id", session.ID),
				slog.String("user_id", raw),
			)
		}
	}

	if order.IsGuest() {
		order.GuestEmail = firstNonEmpty(metadata[constants.MetadataGuestEmail], customerEmail(session), session.CustomerEmail)
		order.GuestSessionID = firstNonEmpty(metadata[constants.MetadataGuestSessionID], cart.GuestSessionID)
		if session.CustomerDetails != nil {
			order.GuestPhone = session.CustomerDetails.Phone
		}
	}

	for _, item := range cart.Items {
		if item.Quantity <= 0 {
			continue
		}
		order.Items = append(order.Items, entity.NewOrderItemFromCart(item))
	}

	return order, nil
}

// persistOrder writes addresses, order, items and the cart teardown in one transaction.
// winner is true when a concurrent delivery committed the order for this session first.
func (srv *orderMaterializer) persistOrder(
	ctx context.Context,
	logger *slog.Logger,
	order *entity.Order,
	cart *entity.Cart,
	shippingAddr *entity.Address,
) (*entity.Order, bool, error) {
	for attempt := 1; attempt <= maxOrderNumberAttempts; attempt++ {
		orderNumber, err := entity.GenerateOrderNumber(srv.now())
		if err != nil {
			return nil, false, errors.Wrap(err, "failed to generate order number")
		}
		order.OrderNumber = orderNumber

		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			addressRepo := repoFactory.AddressRepo()

			billing := shippingAddr.CopyAs(entity.AddressTypeBilling)
			if err := addressRepo.Create(ctx, billing); err != nil {
				return errors.Wrap(err, "failed to create billing address")
			}
			shipping := shippingAddr.CopyAs(entity.AddressTypeShipping)
			if err := addressRepo.Create(ctx, shipping); err != nil {
				return errors.Wrap(err, "failed to create shipping address")
			}

			order.BillingAddressID = billing.ID
			order.ShippingAddressID = shipping.ID

			if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
				return err
			}

			if err := repoFactory.CartRepo().Delete(ctx, cart.ID); err != nil {
				return errors.Wrap(err, "failed to delete materialized cart")
			}

			return nil
		})

		switch {
		case err == nil:
			return order, false, nil
		case errors.Is(err, repository.ErrOrderNumberTaken):
			logger.Warn("Order number collision, regenerating", slog.Int("attempt", attempt))

			continue
		case errors.Is(err, domainerrors.ErrOrderAlreadyExists):
			winnerOrder, findErr := srv.orderRepo.FindByCheckoutSessionID(ctx, order.StripeCheckoutSessionID)
			if findErr == nil {
				logger.Info("Concurrent delivery already created the order", slog.String("order_number", winnerOrder.OrderNumber))

				return winnerOrder, true, nil
			}
			if !errors.Is(findErr, repository.ErrOrderNotFound) {
				return nil, false, errors.Wrap(findErr, "failed to load concurrently created order")
			}

			// No order holds this session, so the violated index was the order number.
			logger.Warn("Unique violation without a session winner, regenerating order number", slog.Int("attempt", attempt))

			continue
		default:
			return nil, false, errors.WithStack(err)
		}
	}

	return nil, false, domainerrors.ErrOrderCreationFailed.WrapMessage("could not allocate a unique order number")
}

// ensureConfirmationEmail claims the flag before sending so concurrent deliveries
// send at most once, and releases it when the send fails.
func (srv *orderMaterializer) ensureConfirmationEmail(ctx context.Context, logger *slog.Logger, order *entity.Order, shippingAddr *entity.Address) {
	if order.ConfirmationEmailSent {
		return
	}

	if shippingAddr == nil && order.ShippingAddressID != uuid.Nil {
		addr, err := srv.addressRepo.FindByID(ctx, order.ShippingAddressID)
		if err != nil {
			logger.Warn("Failed to load shipping address for confirmation email", slog.Any("error", err))
		} else {
			shippingAddr = addr
		}
	}

	recipient, customerName := srv.orderContact(ctx, logger, order, shippingAddr)
	if recipient == "" {
		logger.Warn("Order has no contact email, skipping confirmation", slog.String("order_number", order.OrderNumber))

		return
	}

	claimedAt := srv.now()
	claimed, err := srv.orderRepo.ClaimConfirmationEmail(ctx, order.ID, claimedAt)
	if err != nil {
		logger.Error("Failed to claim confirmation email", slog.String("order_number", order.OrderNumber), slog.Any("error", err))

		return
	}
	if !claimed {
		logger.Info("Confirmation email already claimed", slog.String("order_number", order.OrderNumber))

		return
	}

	msg := srv.confirmationMessage(ctx, order, recipient, customerName, shippingAddr)
	if err := srv.mailer.Send(ctx, msg); err != nil {
		logger.Error("Failed to send order confirmation email",
			slog.String("order_number", order.OrderNumber),
			slog.Any("error", err),
		)

		if releaseErr := srv.orderRepo.ReleaseConfirmationEmail(ctx, order.ID); releaseErr != nil {
			logger.Error("Failed to release confirmation email claim",
				slog.String("order_number", order.OrderNumber),
				slog.Any("error", releaseErr),
			)
		}

		return
	}

	order.ConfirmationEmailSent = true
	order.ConfirmationEmailSentAt = &claimedAt

	logger.Info("Order confirmation email queued", slog.String("order_number", order.OrderNumber))
}

func (srv *orderMaterializer) orderContact(ctx context.Context, logger *slog.Logger, order *entity.Order, shippingAddr *entity.Address) (email, name string) {
	if shippingAddr != nil {
		name = shippingAddr.Name
	}

	if order.IsGuest() {
		return order.GuestEmail, firstNonEmpty(name, defaultCustomerName)
	}

	user, err := srv.userRepo.FindByID(ctx, *order.UserID)
	if err != nil {
		logger.Warn("Failed to load order owner", slog.Any("user_id", *order.UserID), slog.Any("error", err))

		return "", ""
	}

	return user.Email, firstNonEmpty(name, user.Name, defaultCustomerName)
}

func (srv *orderMaterializer) confirmationMessage(
	ctx context.Context,
	order *entity.Order,
	recipient, customerName string,
	shippingAddr *entity.Address,
) *service.MailMessage {
	items := make([]map[string]any, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, map[string]any{
			"name":     item.ProductName,
			"quantity": item.Quantity,
			"total":    item.Total.StringFixed(entity.MoneyScale),
		})
	}

	address := ""
	if shippingAddr != nil {
		address = shippingAddr.Format()
	}

	return &service.MailMessage{
		Template:  constants.MailTemplateOrderConfirmation,
		To:        recipient,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Data: map[string]any{
			"customer_name":    customerName,
			"order_number":     order.OrderNumber,
			"items":            items,
			"subtotal":         order.Subtotal.StringFixed(entity.MoneyScale),
			"tax":              order.Tax.StringFixed(entity.MoneyScale),
			"shipping":         order.Shipping.StringFixed(entity.MoneyScale),
			"total":            order.Total.StringFixed(entity.MoneyScale),
			"currency":         order.Currency,
			"shipping_address": address,
			"lookup_url":       srv.qrcode.OrderLookupURL(order.OrderNumber, recipient),
			"store_name":       srv.settings.GetOrDefault(ctx, constants.SettingStoreName, srv.storeName),
		},
	}
}

// FindForGuest hides orders whose contact email does not match behind the not-found error.
func (srv *orderMaterializer) FindForGuest(ctx context.Context, orderNumber, email string) (*entity.Order, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, domainerrors.ErrOrderNotFound
	}

	order, err := srv.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.IsGuest() {
		if !strings.EqualFold(order.GuestEmail, email) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return order, nil
	}

	owner, err := srv.userRepo.FindByID(ctx, *order.UserID)
	if errors.Is(err, repository.ErrUserNotFound) || (err == nil && !strings.EqualFold(owner.Email, email)) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order owner")
	}

	return order, nil
}

// ListForUser returns the user's orders, newest first.
func (srv *orderMaterializer) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func customerEmail(session *service.CheckoutSession) string {
	if session.CustomerDetails == nil {
		return ""
	}

	return session.CustomerDetails.Email
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
