package service

import (
	"context"
	"time"

	"sejour-backend/internal/domain"
)

type BookingService interface {
	// CheckAvailability reports whether [checkIn, checkOut) is free of
	// active bookings and blocked dates for the property.
	CheckAvailability(ctx context.Context, propertyID int32, checkIn, checkOut time.Time) (bool, error)
	// CreateBooking atomically re-checks availability and creates the
	// booking. initialStatus must be non-terminal; Confirmé is only
	// accepted for instant-book properties.
	CreateBooking(ctx context.Context, guestID, propertyID int32, checkIn, checkOut time.Time, initialStatus domain.BookingStatus) (*domain.Booking, error)
	// TransitionBooking drives the lifecycle. actorID 0 means the system
	// (scheduled jobs, admin tooling).
	TransitionBooking(ctx context.Context, actorID, bookingID int32, next domain.BookingStatus, reason string) (*domain.Booking, error)
	ToggleBlockedDate(ctx context.Context, actorID, propertyID int32, date time.Time) error
	GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error)
	ListGuestBookings(ctx context.Context, guestID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	ListHostBookings(ctx context.Context, hostID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
}

type LedgerService interface {
	AvailableBalance(ctx context.Context, hostID int32) (int64, error)
	// PostEarning records the host's net earning for a confirmed booking.
	PostEarning(ctx context.Context, hostID, bookingID int32, amount int64, description string) (*domain.Transaction, error)
	// PostReversal offsets a previously posted earning after a cancellation.
	PostReversal(ctx context.Context, hostID, bookingID int32, amount int64, description string) (*domain.Transaction, error)
	// EarningsForBooking returns the net earning currently posted for a
	// booking, reversals included.
	EarningsForBooking(ctx context.Context, bookingID int32) (int64, error)
	RequestWithdrawal(ctx context.Context, hostID int32, amount int64) (*domain.Transaction, error)
	GetTransactions(ctx context.Context, hostID int32, page, pageSize int32) ([]domain.Transaction, int32, error)
	GetSummary(ctx context.Context, hostID int32) (*domain.WalletSummary, error)
}

type ConversationService interface {
	// ConversationsFor derives the conversation list from the message log.
	// include adds placeholder threads for counterparts with no messages yet
	// (the UI passes the profile currently being viewed).
	ConversationsFor(ctx context.Context, userID int32, include ...int32) ([]domain.Conversation, error)
	Thread(ctx context.Context, userID, counterpartID int32) ([]domain.Message, error)
	SendMessage(ctx context.Context, senderID, receiverID int32, text string) (*domain.Message, error)
	MarkRead(ctx context.Context, userID, counterpartID int32) error
}

type PropertyService interface {
	SubmitProperty(ctx context.Context, hostID int32, p *domain.Property) error
	UpdateProperty(ctx context.Context, actorID int32, p *domain.Property) error
	GetProperty(ctx context.Context, id int32) (*domain.Property, error)
	ListOnline(ctx context.Context, page, pageSize int32) ([]domain.Property, int32, error)
	ListByHost(ctx context.Context, hostID int32) ([]domain.Property, error)
	ListForModeration(ctx context.Context, adminID int32, status string, page, pageSize int32) ([]domain.Property, int32, error)
	ListBlockedDates(ctx context.Context, propertyID int32) ([]time.Time, error)
	Moderate(ctx context.Context, adminID, propertyID int32, approve bool, reason string) (*domain.Property, error)
	TakeOffline(ctx context.Context, actorID, propertyID int32) (*domain.Property, error)
}

type UserService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, name, phone, avatarURL string) error
	SubmitVerification(ctx context.Context, userID int32) error
	SetVerification(ctx context.Context, adminID, userID int32, approve bool) error
	SetUserStatus(ctx context.Context, adminID, userID int32, status domain.UserStatus, reason string) error
	SetUserRole(ctx context.Context, adminID, userID int32, role domain.UserRole) error
	ListUsers(ctx context.Context, adminID int32, role, status string, page, pageSize int32) ([]domain.User, int32, error)
}

type HostApplicationService interface {
	Apply(ctx context.Context, applicantID int32, businessDomain, description string) (*domain.HostApplication, error)
	Decide(ctx context.Context, adminID, applicationID int32, approve bool, reason string) (*domain.HostApplication, error)
	List(ctx context.Context, adminID int32, status string) ([]domain.HostApplication, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.SystemSettings, error)
	Update(ctx context.Context, adminID int32, s *domain.SystemSettings) error
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendBookingRequestNotification(ctx context.Context, hostEmail, guestName, propertyTitle, reference string) error
	SendBookingConfirmation(ctx context.Context, guestEmail, propertyTitle, reference string) error
	SendBookingCancellation(ctx context.Context, email, propertyTitle, reference, reason string) error
	SendBookingCompletion(ctx context.Context, hostEmail, propertyTitle, reference string, earning int64) error
	SendWithdrawalNotification(ctx context.Context, hostEmail string, amount int64) error
	SendCheckinReminder(ctx context.Context, guestEmail, propertyTitle string, checkIn time.Time) error
	SendApplicationDecision(ctx context.Context, email, name string, approved bool, reason string) error
	SendPropertyModerationNotice(ctx context.Context, hostEmail, title string, approved bool, reason string) error
	SendAccountStatusNotification(ctx context.Context, email, name, status, reason string) error
}
