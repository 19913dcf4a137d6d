package http

import (
	"net/http"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/service"
)

// AdminHandler groups the back-office surface: user management, listing
// moderation and platform settings.
type AdminHandler struct {
	userSvc     service.UserService
	propertySvc service.PropertyService
	settingsSvc service.SettingsService
}

func NewAdminHandler(userSvc service.UserService, propertySvc service.PropertyService, settingsSvc service.SettingsService) *AdminHandler {
	return &AdminHandler{userSvc: userSvc, propertySvc: propertySvc, settingsSvc: settingsSvc}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	page, pageSize := pagination(r)
	q := r.URL.Query()
	users, total, err := h.userSvc.ListUsers(r.Context(), claims.UserID, q.Get("role"), q.Get("status"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: users, Total: total})
}

type setUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE SUSPENDED"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

func (h *AdminHandler) SetUserStatus(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}
	var req setUserStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := h.userSvc.SetUserStatus(r.Context(), claims.UserID, id, domain.UserStatus(req.Status), req.Reason); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type setUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=GUEST HOST ADMIN"`
}

func (h *AdminHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}
	var req setUserRoleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := h.userSvc.SetUserRole(r.Context(), claims.UserID, id, domain.UserRole(req.Role)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type setVerificationRequest struct {
	Approve bool `json:"approve"`
}

func (h *AdminHandler) SetVerification(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}
	var req setVerificationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := h.userSvc.SetVerification(r.Context(), claims.UserID, id, req.Approve); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ListPropertiesForModeration(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")
	if status == "" {
		status = string(domain.PropertyStatusPending)
	}
	properties, total, err := h.propertySvc.ListForModeration(r.Context(), claims.UserID, status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: properties, Total: total})
}

type moderateRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason" validate:"omitempty,max=500"`
}

func (h *AdminHandler) ModerateProperty(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid property id"})
		return
	}
	var req moderateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	property, err := h.propertySvc.Moderate(r.Context(), claims.UserID, id, req.Approve, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsSvc.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

type updateSettingsRequest struct {
	CommissionRate  float64 `json:"commission_rate" validate:"gte=0,lte=100"`
	ServiceFeeRate  float64 `json:"service_fee_rate" validate:"gte=0,lte=100"`
	MaintenanceMode bool    `json:"maintenance_mode"`
}

func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var req updateSettingsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	settings := &domain.SystemSettings{
		CommissionRate:  req.CommissionRate,
		ServiceFeeRate:  req.ServiceFeeRate,
		MaintenanceMode: req.MaintenanceMode,
	}
	if err := h.settingsSvc.Update(r.Context(), claims.UserID, settings); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
