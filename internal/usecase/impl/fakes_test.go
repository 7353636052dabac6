package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Verification: &config.VerificationConfig{TokenTTL: 24 * time.Hour, LinkTTL: time.Hour},
		Stripe:       &config.StripeConfig{RequestTimeout: time.Second},
		Store:        &config.StoreConfig{Name: "Storefront", DefaultCurrency: "usd"},
	}
}

// memStore is an in-memory database shared by the fake repositories.
// Values are stored by copy so a rolled back transaction can restore a snapshot.
type memStore struct {
	mu        sync.Mutex
	users     map[uuid.UUID]entity.User
	pending   map[uuid.UUID]entity.PendingVerification
	carts     map[uuid.UUID]entity.Cart
	addresses map[uuid.UUID]entity.Address
	orders    map[uuid.UUID]entity.Order
	settings  map[string]entity.Setting

	// orderNumberCollisions makes the next N order inserts fail on the order_number index.
	orderNumberCollisions int
	// anonymousCollisions reports those failures as a generic unique violation.
	anonymousCollisions bool
	// staleSessionReads makes the next N session look-ups miss, like a read racing a commit.
	staleSessionReads int
	settingReads      int
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[uuid.UUID]entity.User),
		pending:   make(map[uuid.UUID]entity.PendingVerification),
		carts:     make(map[uuid.UUID]entity.Cart),
		addresses: make(map[uuid.UUID]entity.Address),
		orders:    make(map[uuid.UUID]entity.Order),
		settings:  make(map[string]entity.Setting),
	}
}

type memSnapshot struct {
	users     map[uuid.UUID]entity.User
	pending   map[uuid.UUID]entity.PendingVerification
	carts     map[uuid.UUID]entity.Cart
	addresses map[uuid.UUID]entity.Address
	orders    map[uuid.UUID]entity.Order
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return memSnapshot{
		users:     copyMap(s.users),
		pending:   copyMap(s.pending),
		carts:     copyMap(s.carts),
		addresses: copyMap(s.addresses),
		orders:    copyMap(s.orders),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = snap.users
	s.pending = snap.pending
	s.carts = snap.carts
	s.addresses = snap.addresses
	s.orders = snap.orders
}

func (s *memStore) addCart(cart *entity.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	for _, item := range cart.Items {
		item.CartID = cart.ID
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
	}
	s.carts[cart.ID] = *cart
}

func (s *memStore) addUser(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = *user
}

func (s *memStore) addPending(pending *entity.PendingVerification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pending.ID == uuid.Nil {
		pending.ID = uuid.New()
	}
	s.pending[pending.ID] = *pending
}

func (s *memStore) addOrder(order *entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	s.orders[order.ID] = cloneOrder(order)
}

func (s *memStore) orderList() []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}

	return out
}

func (s *memStore) userCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.users)
}

func (s *memStore) pendingByEmail(email string) (entity.PendingVerification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.pending {
		if p.Email == email {
			return p, true
		}
	}

	return entity.PendingVerification{}, false
}

func (s *memStore) hasCart(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.carts[id]

	return ok
}

func cloneOrder(order *entity.Order) entity.Order {
	cp := *order
	cp.Items = make([]*entity.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		itemCopy := *item
		cp.Items = append(cp.Items, &itemCopy)
	}

	return cp
}

// --- Transaction manager ---

type memTxManager struct {
	store *memStore
	txMu  sync.Mutex
}

func (tm *memTxManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.txMu.Lock()
	defer tm.txMu.Unlock()

	snap := tm.store.snapshot()
	if err := fn(&memRepoFactory{store: tm.store}); err != nil {
		tm.store.restore(snap)

		return err
	}

	return nil
}

type memRepoFactory struct {
	store *memStore
}

func (f *memRepoFactory) PendingVerificationRepo() repository.PendingVerificationRepository {
	return &memPendingRepo{store: f.store}
}

func (f *memRepoFactory) UserRepo() repository.UserRepository { return &memUserRepo{store: f.store} }

func (f *memRepoFactory) CartRepo() repository.CartRepository { return &memCartRepo{store: f.store} }

func (f *memRepoFactory) AddressRepo() repository.AddressRepository {
	return &memAddressRepo{store: f.store}
}

func (f *memRepoFactory) OrderRepo() repository.OrderRepository { return &memOrderRepo{store: f.store} }

// --- Users ---

type memUserRepo struct {
	store *memStore
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if strings.EqualFold(user.Email, email) {
			u := user

			return &u, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.store.users[user.ID] = *user

	return nil
}

// --- Pending verifications ---

type memPendingRepo struct {
	store *memStore
}

func (r *memPendingRepo) Create(_ context.Context, pending *entity.PendingVerification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.pending {
		if existing.Email == pending.Email {
			return domainerrors.ErrVerificationPending.WrapMessage("pending verification already exists for email")
		}
	}

	pending.ID = uuid.New()
	pending.CreatedAt = time.Now()
	pending.UpdatedAt = pending.CreatedAt
	r.store.pending[pending.ID] = *pending

	return nil
}

func (r *memPendingRepo) FindByEmail(_ context.Context, email string) (*entity.PendingVerification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.pending {
		if p.Email == email {
			found := p

			return &found, nil
		}
	}

	return nil, repository.ErrPendingVerificationNotFound
}

func (r *memPendingRepo) FindByTokenAndEmailForUpdate(_ context.Context, token, email string) (*entity.PendingVerification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.pending {
		if p.Token == token && p.Email == email {
			found := p

			return &found, nil
		}
	}

	return nil, repository.ErrPendingVerificationNotFound
}

func (r *memPendingRepo) Update(_ context.Context, pending *entity.PendingVerification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.pending[pending.ID]
	if !ok {
		return repository.ErrPendingVerificationNotFound
	}
	existing.Token = pending.Token
	existing.TokenExpiresAt = pending.TokenExpiresAt
	existing.UpdatedAt = time.Now()
	r.store.pending[pending.ID] = existing

	return nil
}

func (r *memPendingRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.pending[id]; !ok {
		return repository.ErrPendingVerificationNotFound
	}
	delete(r.store.pending, id)

	return nil
}

func (r *memPendingRepo) DeleteExpired(_ context.Context, cutoff time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var deleted int64
	for id, p := range r.store.pending {
		if !p.TokenExpiresAt.After(cutoff) {
			delete(r.store.pending, id)
			deleted++
		}
	}

	return deleted, nil
}

func (r *memPendingRepo) CountExpired(_ context.Context, cutoff time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var count int64
	for _, p := range r.store.pending {
		if !p.TokenExpiresAt.After(cutoff) {
			count++
		}
	}

	return count, nil
}

func (r *memPendingRepo) Count(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return int64(len(r.store.pending)), nil
}

// --- Carts and addresses ---

type memCartRepo struct {
	store *memStore
}

func (r *memCartRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Cart, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cart, ok := r.store.carts[id]
	if !ok {
		return nil, repository.ErrCartNotFound
	}

	return &cart, nil
}

func (r *memCartRepo) FindByGuestSessionID(_ context.Context, sessionID string) (*entity.Cart, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, cart := range r.store.carts {
		if cart.GuestSessionID == sessionID {
			found := cart

			return &found, nil
		}
	}

	return nil, repository.ErrCartNotFound
}

func (r *memCartRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.carts[id]; !ok {
		return repository.ErrCartNotFound
	}
	delete(r.store.carts, id)

	return nil
}

type memAddressRepo struct {
	store *memStore
}

func (r *memAddressRepo) Create(_ context.Context, address *entity.Address) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	address.ID = uuid.New()
	r.store.addresses[address.ID] = *address

	return nil
}

func (r *memAddressRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Address, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	address, ok := r.store.addresses[id]
	if !ok {
		return nil, repository.ErrAddressNotFound
	}

	return &address, nil
}

// --- Orders ---

type memOrderRepo struct {
	store *memStore
}

func (r *memOrderRepo) FindByCheckoutSessionID(_ context.Context, sessionID string) (*entity.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.staleSessionReads > 0 {
		r.store.staleSessionReads--

		return nil, repository.ErrOrderNotFound
	}

	for _, order := range r.store.orders {
		if order.StripeCheckoutSessionID == sessionID {
			found := cloneOrder(&order)

			return &found, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (r *memOrderRepo) FindByOrderNumber(_ context.Context, orderNumber string) (*entity.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, order := range r.store.orders {
		if order.OrderNumber == orderNumber {
			found := cloneOrder(&order)

			return &found, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (r *memOrderRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var orders []*entity.Order
	for _, order := range r.store.orders {
		if order.UserID != nil && *order.UserID == userID {
			found := cloneOrder(&order)
			orders = append(orders, &found)
		}
	}

	return orders, nil
}

func (r *memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.orderNumberCollisions > 0 {
		r.store.orderNumberCollisions--
		if r.store.anonymousCollisions {
			return domainerrors.ErrOrderAlreadyExists.WrapMessage("unique violation")
		}

		return repository.ErrOrderNumberTaken
	}

	for _, existing := range r.store.orders {
		if existing.StripeCheckoutSessionID == order.StripeCheckoutSessionID {
			return domainerrors.ErrOrderAlreadyExists.WrapMessage("order already exists for checkout session")
		}
		if existing.OrderNumber == order.OrderNumber {
			return repository.ErrOrderNumberTaken
		}
	}

	order.ID = uuid.New()
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	for _, item := range order.Items {
		item.ID = uuid.New()
		item.OrderID = order.ID
	}
	r.store.orders[order.ID] = cloneOrder(order)

	return nil
}

func (r *memOrderRepo) ClaimConfirmationEmail(_ context.Context, orderID uuid.UUID, at time.Time) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	order, ok := r.store.orders[orderID]
	if !ok || order.ConfirmationEmailSent {
		return false, nil
	}
	order.ConfirmationEmailSent = true
	order.ConfirmationEmailSentAt = &at
	r.store.orders[orderID] = order

	return true, nil
}

func (r *memOrderRepo) ReleaseConfirmationEmail(_ context.Context, orderID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	order, ok := r.store.orders[orderID]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.ConfirmationEmailSent = false
	order.ConfirmationEmailSentAt = nil
	r.store.orders[orderID] = order

	return nil
}

// --- Settings ---

type memSettingRepo struct {
	store *memStore
}

func (r *memSettingRepo) Get(_ context.Context, key string) (*entity.Setting, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.settingReads++
	setting, ok := r.store.settings[key]
	if !ok {
		return nil, repository.ErrSettingNotFound
	}

	return &setting, nil
}

func (r *memSettingRepo) Upsert(_ context.Context, setting *entity.Setting) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	setting.UpdatedAt = time.Now()
	r.store.settings[setting.Key] = *setting

	return nil
}

// --- Services ---

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Check(password, hash string) bool { return hash == "hashed:"+password }

func (fakeHasher) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerrors.ErrPasswordStrength.WithDetails("password must be at least 8 characters")
	}

	return nil
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateAccessToken(userID uuid.UUID, _ string) (string, time.Time, error) {
	return "access-" + userID.String(), time.Now().Add(time.Hour), nil
}

func (fakeTokenService) ValidateAccessToken(string) (*service.Claims, error) {
	return nil, domainerrors.ErrInvalidCredentials
}

type fakeLinkSigner struct{}

func (fakeLinkSigner) SignedURL(token, email string) (string, error) {
	return "https://shop.test/auth/verify?token=" + token + "&email=" + email + "&signature=sig", nil
}

func (fakeLinkSigner) Valid(_, _, signature string) bool { return signature == "sig" }

// recordingMailer captures dispatched messages and can be told to fail.
type recordingMailer struct {
	mu       sync.Mutex
	messages []*service.MailMessage
	err      error
}

func (m *recordingMailer) Send(_ context.Context, msg *service.MailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return errors.Wrap(domainerrors.ErrMailDispatchFailed, m.err.Error())
	}
	m.messages = append(m.messages, msg)

	return nil
}

func (m *recordingMailer) sent(template string) []*service.MailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*service.MailMessage
	for _, msg := range m.messages {
		if msg.Template == template {
			out = append(out, msg)
		}
	}

	return out
}

type fakeGateway struct {
	mu       sync.Mutex
	sessions map[string]*service.CheckoutSession
	err      error
	calls    int
}

func (g *fakeGateway) ConstructEvent([]byte, string) (*service.PaymentEvent, error) {
	return nil, domainerrors.ErrWebhookSignatureInvalid
}

func (g *fakeGateway) RetrieveCheckoutSession(ctx context.Context, sessionID string) (*service.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.calls++
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("provider call without deadline")
	}
	if g.err != nil {
		return nil, g.err
	}
	session, ok := g.sessions[sessionID]
	if !ok {
		return nil, domainerrors.ErrPaymentProviderUnavailable.WithDetails("resource_missing")
	}

	return session, nil
}

type fakeQRCode struct{}

func (fakeQRCode) GenerateOrderLookupQR(string, string) ([]byte, error) { return []byte("png"), nil }

func (fakeQRCode) OrderLookupURL(orderNumber, email string) string {
	return "https://shop.test/orders/" + orderNumber + "?email=" + email
}
