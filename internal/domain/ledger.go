package domain

import "time"

type TransactionType string

const (
	TransactionTypeEarning    TransactionType = "earning"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
)

// Transaction is an immutable ledger posting. Entries are appended, never
// edited or removed; a correction is a new offsetting entry. An earning
// reversal is an earning with a negative amount referencing the same booking.
type Transaction struct {
	ID          int32             `json:"id"`
	HostID      int32             `json:"host_id"`
	BookingID   *int32            `json:"booking_id,omitempty"`
	Type        TransactionType   `json:"type"`
	Amount      int64             `json:"amount"`
	Status      TransactionStatus `json:"status"`
	Description string            `json:"description"`
	CreatedOn   time.Time         `json:"created_on"`
}

type WalletSummary struct {
	Balance        int64 `json:"balance"`
	TotalEarned    int64 `json:"total_earned"`
	TotalWithdrawn int64 `json:"total_withdrawn"`
	PendingPayouts int64 `json:"pending_payouts"`
}
