package http

import (
	"net/http"
	"time"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/service"
)

type PropertyHandler struct {
	propertySvc service.PropertyService
	bookingSvc  service.BookingService
}

func NewPropertyHandler(propertySvc service.PropertyService, bookingSvc service.BookingService) *PropertyHandler {
	return &PropertyHandler{propertySvc: propertySvc, bookingSvc: bookingSvc}
}

type propertyRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required,max=5000"`
	Location    string `json:"location" validate:"required,max=200"`
	Type        string `json:"type" validate:"required,oneof=stay car attraction experience"`
	RawPrice    int64  `json:"raw_price" validate:"required,gt=0"`
	InstantBook bool   `json:"instant_book"`
}

func (r *propertyRequest) toDomain() *domain.Property {
	return &domain.Property{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Type:        domain.PropertyType(r.Type),
		RawPrice:    r.RawPrice,
		InstantBook: r.InstantBook,
	}
}

func (h *PropertyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var req propertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	property := req.toDomain()
	if err := h.propertySvc.SubmitProperty(r.Context(), claims.UserID, property); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid property id"})
		return
	}
	var req propertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	property := req.toDomain()
	property.ID = id
	if err := h.propertySvc.UpdateProperty(r.Context(), claims.UserID, property); err != nil {
		writeError(w, err)
		return
	}
	updated, err := h.propertySvc.GetProperty(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid property id"})
		return
	}
	property, err := h.propertySvc.GetProperty(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) ListOnline(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	properties, total, err := h.propertySvc.ListOnline(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: properties, Total: total})
}

func (h *PropertyHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	properties, err := h.propertySvc.ListByHost(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) TakeOffline(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid property id"})
		return
	}
	property, err := h.propertySvc.TakeOffline(r.Context(), claims.UserID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

type availabilityResponse struct {
	Available    bool        `json:"available"`
	BlockedDates []time.Time `json:"blocked_dates"`
}

// CheckAvailability answers for ?check_in=2026-07-01&check_out=2026-07-05
// and always returns the blocked-date calendar so the UI can grey days out.
func (h *PropertyHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid property id"})
		return
	}

	blocked, err := h.propertySvc.ListBlockedDates(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := availabilityResponse{Available: true, BlockedDates: blocked}

	rawIn := r.URL.Query().Get("check_in")
	rawOut := r.URL.Query().Get("check_out")
	if rawIn != "" || rawOut != "" {
		checkIn, errIn := time.Parse("2006-01-02", rawIn)
		checkOut, errOut := time.Parse("2006-01-02", rawOut)
		if errIn != nil || errOut != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "check_in and check_out must be dates formatted 2006-01-02"})
			return
		}
		available, err := h.bookingSvc.CheckAvailability(r.Context(), id, checkIn, checkOut)
		if err != nil {
			writeError(w, err)
			return
		}
		resp.Available = available
	}
	writeJSON(w, http.StatusOK, resp)
}

type blockDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (h *PropertyHandler) ToggleBlockedDate(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid property id"})
		return
	}
	var req blockDateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	date, _ := time.Parse("2006-01-02", req.Date)
	if err := h.bookingSvc.ToggleBlockedDate(r.Context(), claims.UserID, id, date); err != nil {
		writeError(w, err)
		return
	}
	blocked, err := h.propertySvc.ListBlockedDates(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"blocked_dates": blocked})
}
