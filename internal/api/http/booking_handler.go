package http

import (
	"net/http"
	"time"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	PropertyID int32  `json:"property_id" validate:"required,gt=0"`
	CheckIn    string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out" validate:"required,datetime=2006-01-02"`
	// Paid marks the booking as paid upfront. Combined with an instant-book
	// property it yields a confirmed booking straight away.
	Paid bool `json:"paid"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var req createBookingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	checkIn, _ := time.Parse("2006-01-02", req.CheckIn)
	checkOut, _ := time.Parse("2006-01-02", req.CheckOut)

	initial := domain.BookingStatusPending
	if req.Paid {
		initial = domain.BookingStatusConfirmed
	}
	booking, err := h.bookingSvc.CreateBooking(r.Context(), claims.UserID, req.PropertyID, checkIn, checkOut, initial)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}
	booking, err := h.bookingSvc.GetBooking(r.Context(), claims.UserID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

type transitionRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

func (h *BookingHandler) Transition(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}
	var req transitionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	booking, err := h.bookingSvc.TransitionBooking(r.Context(), claims.UserID, id, domain.BookingStatus(req.Status), req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ListAsGuest(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	page, pageSize := pagination(r)
	bookings, total, err := h.bookingSvc.ListGuestBookings(r.Context(), claims.UserID, r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: bookings, Total: total})
}

func (h *BookingHandler) ListAsHost(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	page, pageSize := pagination(r)
	bookings, total, err := h.bookingSvc.ListHostBookings(r.Context(), claims.UserID, r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: bookings, Total: total})
}
