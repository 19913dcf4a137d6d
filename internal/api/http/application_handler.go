package http

import (
	"net/http"

	"sejour-backend/internal/service"
)

type ApplicationHandler struct {
	applicationSvc service.HostApplicationService
}

func NewApplicationHandler(applicationSvc service.HostApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationSvc: applicationSvc}
}

type applyRequest struct {
	BusinessDomain string `json:"business_domain" validate:"required,max=100"`
	Description    string `json:"description" validate:"required,max=2000"`
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var req applyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	application, err := h.applicationSvc.Apply(r.Context(), claims.UserID, req.BusinessDomain, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, application)
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	applications, err := h.applicationSvc.List(r.Context(), claims.UserID, r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, applications)
}

type decideRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason" validate:"omitempty,max=500"`
}

func (h *ApplicationHandler) Decide(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid application id"})
		return
	}
	var req decideRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	application, err := h.applicationSvc.Decide(r.Context(), claims.UserID, id, req.Approve, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, application)
}
