package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/logger"
	"sejour-backend/internal/repository"
	"sejour-backend/internal/utils"
)

type bookingService struct {
	bookingRepo  repository.BookingRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
	ledgerSvc    LedgerService
	emailSvc     EmailService
	events       EventSink

	// One lock per property: the availability check and the write that
	// depends on it must be a single atomic unit.
	propertyLocks *keyedMutex
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
	settingsRepo repository.SettingsRepository,
	ledgerSvc LedgerService,
	emailSvc EmailService,
	events EventSink,
) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		propertyRepo:  propertyRepo,
		userRepo:      userRepo,
		settingsRepo:  settingsRepo,
		ledgerSvc:     ledgerSvc,
		emailSvc:      emailSvc,
		events:        events,
		propertyLocks: newKeyedMutex(),
	}
}

// newBookingReference builds the opaque human-readable reference shown to
// guests and hosts, e.g. SJ-9F3A21C4.
func newBookingReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "SJ-" + strings.ToUpper(id[:8])
}

func (s *bookingService) CheckAvailability(ctx context.Context, propertyID int32, checkIn, checkOut time.Time) (bool, error) {
	s.propertyLocks.Lock(propertyID)
	defer s.propertyLocks.Unlock(propertyID)
	return s.checkAvailabilityLocked(ctx, propertyID, utils.Day(checkIn), utils.Day(checkOut))
}

// checkAvailabilityLocked assumes the property lock is held and the dates
// are normalized to UTC midnight.
func (s *bookingService) checkAvailabilityLocked(ctx context.Context, propertyID int32, checkIn, checkOut time.Time) (bool, error) {
	if !checkIn.Before(checkOut) {
		return false, nil
	}

	active, err := s.bookingRepo.ListActiveByProperty(ctx, propertyID)
	if err != nil {
		return false, err
	}
	for i := range active {
		if active[i].Overlaps(checkIn, checkOut) {
			return false, nil
		}
	}

	blocked, err := s.propertyRepo.ListBlockedDates(ctx, propertyID)
	if err != nil {
		return false, err
	}
	for _, d := range blocked {
		d = utils.Day(d)
		if !d.Before(checkIn) && d.Before(checkOut) {
			return false, nil
		}
	}
	return true, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, guestID, propertyID int32, checkIn, checkOut time.Time, initialStatus domain.BookingStatus) (*domain.Booking, error) {
	if initialStatus.Terminal() || !initialStatus.Active() {
		return nil, fmt.Errorf("creation status %q: %w", initialStatus, domain.ErrInvalidTransition)
	}

	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.Status != domain.PropertyStatusOnline {
		return nil, fmt.Errorf("property %d is not online: %w", propertyID, domain.ErrForbidden)
	}
	if property.HostID == guestID {
		return nil, fmt.Errorf("cannot book own listing: %w", domain.ErrForbidden)
	}
	if initialStatus == domain.BookingStatusConfirmed && !property.InstantBook {
		return nil, fmt.Errorf("property %d requires host approval: %w", propertyID, domain.ErrForbidden)
	}

	checkIn = utils.Day(checkIn)
	checkOut = utils.Day(checkOut)

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	price := utils.ComputeBookingPrice(property.RawPrice, checkIn, checkOut, settings)

	s.propertyLocks.Lock(propertyID)
	defer s.propertyLocks.Unlock(propertyID)

	available, err := s.checkAvailabilityLocked(ctx, propertyID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, domain.ErrDatesUnavailable
	}

	booking := &domain.Booking{
		Reference:   newBookingReference(),
		PropertyID:  propertyID,
		GuestID:     guestID,
		HostID:      property.HostID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Nights:      price.Nights,
		BasePrice:   price.BasePrice,
		ServiceFee:  price.ServiceFee,
		TotalAmount: price.TotalAmount,
		HostEarning: price.HostEarning,
		Status:      initialStatus,
		Payout:      domain.PayoutStatusPending,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	// Earnings are posted at confirmation, never at creation. An
	// instant-book reservation is confirmed the moment it exists.
	if booking.Status == domain.BookingStatusConfirmed {
		desc := fmt.Sprintf("Earning for reservation %s", booking.Reference)
		if _, err := s.ledgerSvc.PostEarning(ctx, booking.HostID, booking.ID, booking.HostEarning, desc); err != nil {
			return nil, err
		}
	}

	s.notifyCreated(ctx, booking, property)
	return booking, nil
}

func (s *bookingService) notifyCreated(ctx context.Context, booking *domain.Booking, property *domain.Property) {
	guest, _ := s.userRepo.GetByID(ctx, booking.GuestID)
	host, _ := s.userRepo.GetByID(ctx, booking.HostID)
	if guest == nil || host == nil {
		return
	}

	eventType := domain.EventBookingRequested
	title := "New booking request"
	message := fmt.Sprintf("%s requested to book %s (%s)", guest.Name, property.Title, booking.Reference)
	if booking.Status == domain.BookingStatusConfirmed {
		eventType = domain.EventBookingConfirmed
		title = "New confirmed booking"
		message = fmt.Sprintf("%s booked %s (%s)", guest.Name, property.Title, booking.Reference)
	}

	_ = s.emailSvc.SendBookingRequestNotification(ctx, host.Email, guest.Name, property.Title, booking.Reference)
	s.events.Publish(ctx, domain.Event{
		Type:        eventType,
		RecipientID: host.ID,
		Title:       title,
		Message:     message,
		Attributes: map[string]string{
			"booking_id": fmt.Sprintf("%d", booking.ID),
			"reference":  booking.Reference,
		},
	})
}

func (s *bookingService) TransitionBooking(ctx context.Context, actorID, bookingID int32, next domain.BookingStatus, reason string) (*domain.Booking, error) {
	// Resolve the property first so the transition runs under the same lock
	// as availability checks and creations for that property.
	preliminary, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.propertyLocks.Lock(preliminary.PropertyID)
	defer s.propertyLocks.Unlock(preliminary.PropertyID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransition(next) {
		return nil, fmt.Errorf("%s -> %s: %w", booking.Status, next, domain.ErrInvalidTransition)
	}
	if err := authorizeTransition(booking, actorID, next); err != nil {
		return nil, err
	}

	previous := booking.Status

	switch next {
	case domain.BookingStatusConfirmed:
		desc := fmt.Sprintf("Earning for reservation %s", booking.Reference)
		if _, err := s.ledgerSvc.PostEarning(ctx, booking.HostID, booking.ID, booking.HostEarning, desc); err != nil {
			return nil, err
		}

	case domain.BookingStatusCancelled:
		booking.CancelReason = reason
		if previous == domain.BookingStatusConfirmed {
			// Offset whatever earning is on the books for this booking.
			// Cancelled bookings drop out of the overlap check, so the dates
			// free up without any further bookkeeping.
			net, err := s.ledgerSvc.EarningsForBooking(ctx, booking.ID)
			if err != nil {
				return nil, err
			}
			if net > 0 {
				desc := fmt.Sprintf("Reversal for cancelled reservation %s", booking.Reference)
				if _, err := s.ledgerSvc.PostReversal(ctx, booking.HostID, booking.ID, net, desc); err != nil {
					return nil, err
				}
			}
		}

	case domain.BookingStatusCompleted:
		// Payout stays PENDING here; completing only makes the booking
		// eligible. Actual money movement goes through withdrawals.
	}

	booking.Status = next
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		// If the status write failed after the earning was posted, the ledger
		// must not hold money for a booking still recorded as pending. Offset
		// it so the balance stays in step with the stored status.
		if next == domain.BookingStatusConfirmed && booking.HostEarning > 0 {
			desc := fmt.Sprintf("Reversal for unrecorded confirmation of reservation %s", booking.Reference)
			if _, rerr := s.ledgerSvc.PostReversal(ctx, booking.HostID, booking.ID, booking.HostEarning, desc); rerr != nil {
				logger.Error("Failed to offset earning after status update failure", "booking_id", booking.ID, "error", rerr)
			}
		}
		return nil, err
	}

	s.notifyTransition(ctx, booking, previous, reason)
	return booking, nil
}

// authorizeTransition enforces who may drive which edge. actorID 0 is the
// system (jobs, admin tooling) and may drive any legal edge.
func authorizeTransition(booking *domain.Booking, actorID int32, next domain.BookingStatus) error {
	if actorID == 0 {
		return nil
	}
	switch next {
	case domain.BookingStatusConfirmed:
		if actorID != booking.HostID {
			return fmt.Errorf("only the host confirms a booking: %w", domain.ErrForbidden)
		}
	case domain.BookingStatusCancelled:
		if actorID != booking.HostID && actorID != booking.GuestID {
			return fmt.Errorf("only a party to the booking may cancel: %w", domain.ErrForbidden)
		}
	case domain.BookingStatusCompleted:
		if actorID != booking.HostID {
			return fmt.Errorf("only the host completes a booking: %w", domain.ErrForbidden)
		}
	}
	return nil
}

func (s *bookingService) notifyTransition(ctx context.Context, booking *domain.Booking, previous domain.BookingStatus, reason string) {
	property, _ := s.propertyRepo.GetByID(ctx, booking.PropertyID)
	guest, _ := s.userRepo.GetByID(ctx, booking.GuestID)
	host, _ := s.userRepo.GetByID(ctx, booking.HostID)
	if property == nil || guest == nil || host == nil {
		return
	}

	attrs := map[string]string{
		"booking_id": fmt.Sprintf("%d", booking.ID),
		"reference":  booking.Reference,
	}

	switch booking.Status {
	case domain.BookingStatusConfirmed:
		_ = s.emailSvc.SendBookingConfirmation(ctx, guest.Email, property.Title, booking.Reference)
		s.events.Publish(ctx, domain.Event{
			Type:        domain.EventBookingConfirmed,
			RecipientID: guest.ID,
			Title:       "Booking confirmed",
			Message:     fmt.Sprintf("Your reservation %s for %s was confirmed", booking.Reference, property.Title),
			Attributes:  attrs,
		})

	case domain.BookingStatusCancelled:
		_ = s.emailSvc.SendBookingCancellation(ctx, guest.Email, property.Title, booking.Reference, reason)
		_ = s.emailSvc.SendBookingCancellation(ctx, host.Email, property.Title, booking.Reference, reason)
		for _, recipient := range []int32{guest.ID, host.ID} {
			s.events.Publish(ctx, domain.Event{
				Type:        domain.EventBookingCancelled,
				RecipientID: recipient,
				Title:       "Booking cancelled",
				Message:     fmt.Sprintf("Reservation %s for %s was cancelled", booking.Reference, property.Title),
				Attributes:  attrs,
			})
		}

	case domain.BookingStatusCompleted:
		_ = s.emailSvc.SendBookingCompletion(ctx, host.Email, property.Title, booking.Reference, booking.HostEarning)
		s.events.Publish(ctx, domain.Event{
			Type:        domain.EventBookingCompleted,
			RecipientID: host.ID,
			Title:       "Stay completed",
			Message:     fmt.Sprintf("Reservation %s for %s is complete", booking.Reference, property.Title),
			Attributes:  attrs,
		})
	}
}

func (s *bookingService) ToggleBlockedDate(ctx context.Context, actorID, propertyID int32, date time.Time) error {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if actorID != 0 && actorID != property.HostID {
		return fmt.Errorf("only the host manages blocked dates: %w", domain.ErrForbidden)
	}

	day := utils.Day(date)

	s.propertyLocks.Lock(propertyID)
	defer s.propertyLocks.Unlock(propertyID)

	// Blocking can never retroactively orphan an active booking.
	active, err := s.bookingRepo.ListActiveByProperty(ctx, propertyID)
	if err != nil {
		return err
	}
	for i := range active {
		if active[i].Covers(day) {
			return fmt.Errorf("date %s: %w", day.Format("2006-01-02"), domain.ErrBookingExists)
		}
	}

	blocked, err := s.propertyRepo.ListBlockedDates(ctx, propertyID)
	if err != nil {
		return err
	}
	for _, d := range blocked {
		if utils.Day(d).Equal(day) {
			return s.propertyRepo.RemoveBlockedDate(ctx, propertyID, day)
		}
	}
	return s.propertyRepo.AddBlockedDate(ctx, propertyID, day)
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if userID != 0 && booking.GuestID != userID && booking.HostID != userID {
		return nil, domain.ErrForbidden
	}
	return booking, nil
}

func (s *bookingService) ListGuestBookings(ctx context.Context, guestID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.ListByGuest(ctx, guestID, status, page, pageSize)
}

func (s *bookingService) ListHostBookings(ctx context.Context, hostID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.ListByHost(ctx, hostID, status, page, pageSize)
}
