package postgres

import (
	"context"
	"database/sql"
	"time"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/repository"
)

type ledgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	query := `INSERT INTO transactions (host_id, booking_id, type, amount, status, description, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	tx.CreatedOn = now
	return r.db.QueryRowContext(ctx, query, tx.HostID, tx.BookingID, tx.Type, tx.Amount, tx.Status, tx.Description, now).Scan(&tx.ID)
}

func (r *ledgerRepository) GetBalance(ctx context.Context, hostID int32) (int64, error) {
	var balance int64
	// Earnings add, withdrawals subtract. Pending withdrawals count against
	// the balance so funds cannot be requested twice while settlement is in
	// flight; earning reversals carry negative amounts and net out here.
	query := `SELECT COALESCE(SUM(CASE WHEN type = 'earning' THEN amount ELSE -amount END), 0) FROM transactions WHERE host_id = $1`
	err := r.db.QueryRowContext(ctx, query, hostID).Scan(&balance)
	return balance, err
}

func (r *ledgerRepository) SumEarningsByBooking(ctx context.Context, bookingID int32) (int64, error) {
	var sum int64
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE booking_id = $1 AND type = 'earning'`
	err := r.db.QueryRowContext(ctx, query, bookingID).Scan(&sum)
	return sum, err
}

func (r *ledgerRepository) ListTransactions(ctx context.Context, hostID int32, page, pageSize int32) ([]domain.Transaction, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	countQuery := `SELECT count(*) FROM transactions WHERE host_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, hostID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, host_id, booking_id, type, amount, status, COALESCE(description, ''), created_on
	          FROM transactions WHERE host_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, hostID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.HostID, &tx.BookingID, &tx.Type, &tx.Amount, &tx.Status, &tx.Description, &tx.CreatedOn); err != nil {
			return nil, 0, err
		}
		txs = append(txs, tx)
	}
	return txs, count, rows.Err()
}

func (r *ledgerRepository) GetSummary(ctx context.Context, hostID int32) (*domain.WalletSummary, error) {
	summary := &domain.WalletSummary{}

	balance, err := r.GetBalance(ctx, hostID)
	if err != nil {
		return nil, err
	}
	summary.Balance = balance

	query := `SELECT
	            COALESCE(SUM(CASE WHEN type = 'earning' AND amount > 0 THEN amount ELSE 0 END), 0),
	            COALESCE(SUM(CASE WHEN type = 'withdrawal' THEN amount ELSE 0 END), 0),
	            COALESCE(SUM(CASE WHEN type = 'withdrawal' AND status = 'PENDING' THEN amount ELSE 0 END), 0)
	          FROM transactions WHERE host_id = $1`
	err = r.db.QueryRowContext(ctx, query, hostID).Scan(&summary.TotalEarned, &summary.TotalWithdrawn, &summary.PendingPayouts)
	if err != nil {
		return nil, err
	}
	return summary, nil
}
