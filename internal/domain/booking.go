package domain

import "time"

// BookingStatus values are the exact strings the marketplace UI displays.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "En attente"
	BookingStatusConfirmed BookingStatus = "Confirmé"
	BookingStatusCancelled BookingStatus = "Annulé"
	BookingStatusCompleted BookingStatus = "Terminé"
)

type PayoutStatus string

const (
	PayoutStatusPending PayoutStatus = "PENDING"
	PayoutStatusPaid    PayoutStatus = "PAID"
)

// Booking holds a half-open date range [CheckIn, CheckOut): the checkout day
// is free for the next guest's check-in. Price fields are snapshots computed
// once at creation and never recomputed afterwards.
type Booking struct {
	ID          int32         `json:"id"`
	Reference   string        `json:"reference"`
	PropertyID  int32         `json:"property_id"`
	GuestID     int32         `json:"guest_id"`
	HostID      int32         `json:"host_id"`
	CheckIn     time.Time     `json:"check_in"`
	CheckOut    time.Time     `json:"check_out"`
	Nights      int32         `json:"nights"`
	BasePrice   int64         `json:"base_price"`
	ServiceFee  int64         `json:"service_fee"`
	TotalAmount int64         `json:"total_amount"`
	HostEarning int64         `json:"host_earning"`
	Status      BookingStatus `json:"status"`
	Payout      PayoutStatus  `json:"payout_status"`
	CancelReason string       `json:"cancel_reason,omitempty"`
	CreatedOn   time.Time     `json:"created_on"`
	UpdatedOn   time.Time     `json:"updated_on"`
}

// Terminal reports whether no further lifecycle transition may leave s.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// Active bookings are the ones that hold dates against a property.
func (s BookingStatus) Active() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
}

// CanTransition reports whether the lifecycle allows moving from s to next.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Overlaps applies the half-open interval test: [start, end) intersects
// [CheckIn, CheckOut) iff start < CheckOut && end > CheckIn.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return start.Before(b.CheckOut) && end.After(b.CheckIn)
}

// Covers reports whether the single day d falls inside [CheckIn, CheckOut).
func (b *Booking) Covers(d time.Time) bool {
	return !d.Before(b.CheckIn) && d.Before(b.CheckOut)
}
