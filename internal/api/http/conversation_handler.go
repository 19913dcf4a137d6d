package http

import (
	"net/http"
	"strconv"

	"sejour-backend/internal/service"
)

type ConversationHandler struct {
	conversationSvc service.ConversationService
}

func NewConversationHandler(conversationSvc service.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationSvc: conversationSvc}
}

// List returns the caller's conversations, newest activity first. An
// optional ?with=<userID> injects a placeholder thread for a counterpart
// the caller has not messaged yet.
func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var include []int32
	if v, err := strconv.ParseInt(r.URL.Query().Get("with"), 10, 32); err == nil && v > 0 {
		include = append(include, int32(v))
	}
	conversations, err := h.conversationSvc.ConversationsFor(r.Context(), claims.UserID, include...)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conversations)
}

func (h *ConversationHandler) Thread(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	counterpartID, ok := pathID(r, "counterpartID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid counterpart id"})
		return
	}
	messages, err := h.conversationSvc.Thread(r.Context(), claims.UserID, counterpartID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

type sendMessageRequest struct {
	ReceiverID int32  `json:"receiver_id" validate:"required,gt=0"`
	Text       string `json:"text" validate:"required,max=5000"`
}

func (h *ConversationHandler) Send(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var req sendMessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	message, err := h.conversationSvc.SendMessage(r.Context(), claims.UserID, req.ReceiverID, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

func (h *ConversationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	counterpartID, ok := pathID(r, "counterpartID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid counterpart id"})
		return
	}
	if err := h.conversationSvc.MarkRead(r.Context(), claims.UserID, counterpartID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
