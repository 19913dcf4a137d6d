package http

import (
	"net/http"

	"sejour-backend/internal/service"
)

type WalletHandler struct {
	ledgerSvc service.LedgerService
}

func NewWalletHandler(ledgerSvc service.LedgerService) *WalletHandler {
	return &WalletHandler{ledgerSvc: ledgerSvc}
}

func (h *WalletHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	summary, err := h.ledgerSvc.GetSummary(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	page, pageSize := pagination(r)
	transactions, total, err := h.ledgerSvc.GetTransactions(r.Context(), claims.UserID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: transactions, Total: total})
}

type withdrawalRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

func (h *WalletHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var req withdrawalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	tx, err := h.ledgerSvc.RequestWithdrawal(r.Context(), claims.UserID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}
