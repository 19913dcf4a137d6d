package jobs

import (
	"context"
	"time"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/logger"
	"sejour-backend/internal/utils"
)

// MarkFinishedBookings completes confirmed bookings whose stay has ended.
// Going through the booking service keeps the completion side effects (host
// email, notification) identical to a host-driven completion.
func (jr *JobRunner) MarkFinishedBookings() {
	jr.runWithRecovery("MarkFinishedBookings", func() {
		ctx := context.Background()
		cutoff := utils.Day(time.Now())

		bookings, err := jr.store.BookingRepository.ListConfirmedEndedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list finished bookings", "error", err)
			return
		}

		count := 0
		for _, b := range bookings {
			if _, err := jr.services.Booking.TransitionBooking(ctx, 0, b.ID, domain.BookingStatusCompleted, ""); err != nil {
				logger.Error("Failed to complete booking",
					"booking_id", b.ID,
					"reference", b.Reference,
					"error", err)
				continue
			}
			count++
			logger.Debug("Completed booking",
				"booking_id", b.ID,
				"reference", b.Reference,
				"check_out", b.CheckOut.Format("2006-01-02"))
		}
		logger.Info("Marked bookings as completed", "count", count)
	})
}

// SendCheckinReminders emails every guest whose confirmed stay starts
// tomorrow.
func (jr *JobRunner) SendCheckinReminders() {
	jr.runWithRecovery("SendCheckinReminders", func() {
		ctx := context.Background()
		tomorrow := utils.Day(time.Now().AddDate(0, 0, 1))

		bookings, err := jr.store.BookingRepository.ListConfirmedStartingOn(ctx, tomorrow)
		if err != nil {
			logger.Error("Failed to list upcoming check-ins", "error", err)
			return
		}

		count := 0
		for _, b := range bookings {
			guest, err := jr.store.UserRepository.GetByID(ctx, b.GuestID)
			if err != nil {
				logger.Error("Failed to load guest for reminder", "booking_id", b.ID, "error", err)
				continue
			}
			property, err := jr.store.PropertyRepository.GetByID(ctx, b.PropertyID)
			if err != nil {
				logger.Error("Failed to load property for reminder", "booking_id", b.ID, "error", err)
				continue
			}
			if err := jr.services.Email.SendCheckinReminder(ctx, guest.Email, property.Title, b.CheckIn); err != nil {
				logger.Error("Failed to send check-in reminder", "booking_id", b.ID, "error", err)
				continue
			}
			count++
		}
		logger.Info("Sent check-in reminders", "count", count)
	})
}
