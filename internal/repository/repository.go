package repository

import (
	"context"
	"time"

	"sejour-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, role, status string, page, pageSize int32) ([]domain.User, int32, error)
}

type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id int32) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	ListByHost(ctx context.Context, hostID int32) ([]domain.Property, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Property, int32, error)

	// Blocked dates (host-imposed unavailability)
	ListBlockedDates(ctx context.Context, propertyID int32) ([]time.Time, error)
	AddBlockedDate(ctx context.Context, propertyID int32, date time.Time) error
	RemoveBlockedDate(ctx context.Context, propertyID int32, date time.Time) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	// ListActiveByProperty returns bookings holding dates against the
	// property, i.e. status in (En attente, Confirmé).
	ListActiveByProperty(ctx context.Context, propertyID int32) ([]domain.Booking, error)
	ListByGuest(ctx context.Context, guestID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	ListByHost(ctx context.Context, hostID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	ListConfirmedEndedBefore(ctx context.Context, cutoff time.Time) ([]domain.Booking, error)
	ListConfirmedStartingOn(ctx context.Context, day time.Time) ([]domain.Booking, error)
}

type LedgerRepository interface {
	CreateTransaction(ctx context.Context, tx *domain.Transaction) error
	// GetBalance derives the withdrawable balance: sum of earnings minus sum
	// of withdrawals (pending withdrawals included, so funds cannot be spent
	// twice while settlement is in flight).
	GetBalance(ctx context.Context, hostID int32) (int64, error)
	// SumEarningsByBooking returns the net earning posted for one booking,
	// reversals included.
	SumEarningsByBooking(ctx context.Context, bookingID int32) (int64, error)
	ListTransactions(ctx context.Context, hostID int32, page, pageSize int32) ([]domain.Transaction, int32, error)
	GetSummary(ctx context.Context, hostID int32) (*domain.WalletSummary, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	// ListByUser returns every message where the user is sender or receiver,
	// oldest first.
	ListByUser(ctx context.Context, userID int32) ([]domain.Message, error)
	ListThread(ctx context.Context, userID, counterpartID int32) ([]domain.Message, error)
	// MarkThreadRead flips read on messages from counterpart to user.
	// Idempotent; never touches the opposite direction.
	MarkThreadRead(ctx context.Context, userID, counterpartID int32) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}

type HostApplicationRepository interface {
	Create(ctx context.Context, app *domain.HostApplication) error
	GetByID(ctx context.Context, id int32) (*domain.HostApplication, error)
	Update(ctx context.Context, app *domain.HostApplication) error
	ListByStatus(ctx context.Context, status string) ([]domain.HostApplication, error)
	GetPendingByApplicant(ctx context.Context, applicantID int32) (*domain.HostApplication, error)
}

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SystemSettings, error)
	Update(ctx context.Context, s *domain.SystemSettings) error
}
