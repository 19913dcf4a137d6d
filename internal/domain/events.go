package domain

type EventType string

const (
	EventBookingRequested    EventType = "BOOKING_REQUESTED"
	EventBookingConfirmed    EventType = "BOOKING_CONFIRMED"
	EventBookingCancelled    EventType = "BOOKING_CANCELLED"
	EventBookingCompleted    EventType = "BOOKING_COMPLETED"
	EventWithdrawalRequested EventType = "WITHDRAWAL_REQUESTED"
	EventMessageReceived     EventType = "MESSAGE_RECEIVED"
	EventPropertyModerated   EventType = "PROPERTY_MODERATED"
	EventApplicationDecided  EventType = "APPLICATION_DECIDED"
	EventVerificationChanged EventType = "VERIFICATION_CHANGED"
)

// Event is what the engine hands to the notification sink after a state
// change commits. Delivery failures are the sink's problem; they never roll
// back the transition that emitted the event.
type Event struct {
	Type        EventType
	RecipientID int32
	Title       string
	Message     string
	Attributes  map[string]string
}
