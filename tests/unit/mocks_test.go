package unit

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"sejour-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context, role, status string, page, pageSize int32) ([]domain.User, int32, error) {
	args := m.Called(ctx, role, status, page, pageSize)
	return args.Get(0).([]domain.User), args.Get(1).(int32), args.Error(2)
}

// MockPropertyRepo
type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) Create(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPropertyRepo) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) Update(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPropertyRepo) ListByHost(ctx context.Context, hostID int32) ([]domain.Property, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).([]domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Property, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Property), args.Get(1).(int32), args.Error(2)
}
func (m *MockPropertyRepo) ListBlockedDates(ctx context.Context, propertyID int32) ([]time.Time, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]time.Time), args.Error(1)
}
func (m *MockPropertyRepo) AddBlockedDate(ctx context.Context, propertyID int32, date time.Time) error {
	args := m.Called(ctx, propertyID, date)
	return args.Error(0)
}
func (m *MockPropertyRepo) RemoveBlockedDate(ctx context.Context, propertyID int32, date time.Time) error {
	args := m.Called(ctx, propertyID, date)
	return args.Error(0)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) ListActiveByProperty(ctx context.Context, propertyID int32) ([]domain.Booking, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByGuest(ctx context.Context, guestID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, guestID, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) ListByHost(ctx context.Context, hostID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, hostID, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) ListConfirmedEndedBefore(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListConfirmedStartingOn(ctx context.Context, day time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, day)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockLedgerRepo
type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockLedgerRepo) GetBalance(ctx context.Context, hostID int32) (int64, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockLedgerRepo) SumEarningsByBooking(ctx context.Context, bookingID int32) (int64, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockLedgerRepo) ListTransactions(ctx context.Context, hostID int32, page, pageSize int32) ([]domain.Transaction, int32, error) {
	args := m.Called(ctx, hostID, page, pageSize)
	return args.Get(0).([]domain.Transaction), args.Get(1).(int32), args.Error(2)
}
func (m *MockLedgerRepo) GetSummary(ctx context.Context, hostID int32) (*domain.WalletSummary, error) {
	args := m.Called(ctx, hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletSummary), args.Error(1)
}

// MockMessageRepo
type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
func (m *MockMessageRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Message, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Message), args.Error(1)
}
func (m *MockMessageRepo) ListThread(ctx context.Context, userID, counterpartID int32) ([]domain.Message, error) {
	args := m.Called(ctx, userID, counterpartID)
	return args.Get(0).([]domain.Message), args.Error(1)
}
func (m *MockMessageRepo) MarkThreadRead(ctx context.Context, userID, counterpartID int32) error {
	args := m.Called(ctx, userID, counterpartID)
	return args.Error(0)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockHostApplicationRepo
type MockHostApplicationRepo struct {
	mock.Mock
}

func (m *MockHostApplicationRepo) Create(ctx context.Context, app *domain.HostApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockHostApplicationRepo) GetByID(ctx context.Context, id int32) (*domain.HostApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HostApplication), args.Error(1)
}
func (m *MockHostApplicationRepo) Update(ctx context.Context, app *domain.HostApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockHostApplicationRepo) ListByStatus(ctx context.Context, status string) ([]domain.HostApplication, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.HostApplication), args.Error(1)
}
func (m *MockHostApplicationRepo) GetPendingByApplicant(ctx context.Context, applicantID int32) (*domain.HostApplication, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HostApplication), args.Error(1)
}

// MockSettingsRepo
type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) Get(ctx context.Context) (*domain.SystemSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemSettings), args.Error(1)
}
func (m *MockSettingsRepo) Update(ctx context.Context, s *domain.SystemSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingRequestNotification(ctx context.Context, hostEmail, guestName, propertyTitle, reference string) error {
	args := m.Called(ctx, hostEmail, guestName, propertyTitle, reference)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, guestEmail, propertyTitle, reference string) error {
	args := m.Called(ctx, guestEmail, propertyTitle, reference)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingCancellation(ctx context.Context, email, propertyTitle, reference, reason string) error {
	args := m.Called(ctx, email, propertyTitle, reference, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingCompletion(ctx context.Context, hostEmail, propertyTitle, reference string, earning int64) error {
	args := m.Called(ctx, hostEmail, propertyTitle, reference, earning)
	return args.Error(0)
}
func (m *MockEmailService) SendWithdrawalNotification(ctx context.Context, hostEmail string, amount int64) error {
	args := m.Called(ctx, hostEmail, amount)
	return args.Error(0)
}
func (m *MockEmailService) SendCheckinReminder(ctx context.Context, guestEmail, propertyTitle string, checkIn time.Time) error {
	args := m.Called(ctx, guestEmail, propertyTitle, checkIn)
	return args.Error(0)
}
func (m *MockEmailService) SendApplicationDecision(ctx context.Context, email, name string, approved bool, reason string) error {
	args := m.Called(ctx, email, name, approved, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendPropertyModerationNotice(ctx context.Context, hostEmail, title string, approved bool, reason string) error {
	args := m.Called(ctx, hostEmail, title, approved, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendAccountStatusNotification(ctx context.Context, email, name, status, reason string) error {
	args := m.Called(ctx, email, name, status, reason)
	return args.Error(0)
}

// eventRecorder collects published events for assertions.
type eventRecorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *eventRecorder) Publish(_ context.Context, event domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *eventRecorder) Events() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *eventRecorder) Types() []domain.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	var types []domain.EventType
	for _, e := range r.events {
		types = append(types, e.Type)
	}
	return types
}
