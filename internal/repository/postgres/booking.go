package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, reference, property_id, guest_id, host_id, check_in, check_out, nights, base_price, service_fee, total_amount, host_earning, status, payout_status, COALESCE(cancel_reason, ''), created_on, updated_on`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (reference, property_id, guest_id, host_id, check_in, check_out, nights, base_price, service_fee, total_amount, host_earning, status, payout_status, cancel_reason, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) RETURNING id`
	now := time.Now()
	b.CreatedOn = now
	b.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, b.Reference, b.PropertyID, b.GuestID, b.HostID, b.CheckIn, b.CheckOut, b.Nights, b.BasePrice, b.ServiceFee, b.TotalAmount, b.HostEarning, b.Status, b.Payout, b.CancelReason, now, now).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *bookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE reference = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, reference))
}

func (r *bookingRepository) scanOne(row *sql.Row) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(&b.ID, &b.Reference, &b.PropertyID, &b.GuestID, &b.HostID, &b.CheckIn, &b.CheckOut, &b.Nights, &b.BasePrice, &b.ServiceFee, &b.TotalAmount, &b.HostEarning, &b.Status, &b.Payout, &b.CancelReason, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET status=$1, payout_status=$2, cancel_reason=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, b.Status, b.Payout, b.CancelReason, time.Now(), b.ID)
	return err
}

func (r *bookingRepository) ListActiveByProperty(ctx context.Context, propertyID int32) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE property_id = $1 AND status IN ($2, $3) ORDER BY check_in`
	rows, err := r.db.QueryContext(ctx, query, propertyID, domain.BookingStatusPending, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) ListByGuest(ctx context.Context, guestID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return r.list(ctx, "guest_id", guestID, status, page, pageSize)
}

func (r *bookingRepository) ListByHost(ctx context.Context, hostID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return r.list(ctx, "host_id", hostID, status, page, pageSize)
}

func (r *bookingRepository) list(ctx context.Context, column string, userID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	offset := (page - 1) * pageSize
	sql := `SELECT ` + bookingColumns + ` FROM bookings WHERE ` + column + ` = $1`

	args := []interface{}{userID}
	argIdx := 2
	if status != "" {
		sql += " AND status = $2"
		args = append(args, status)
		argIdx++
	}

	var count int32
	countSql := "SELECT count(*) FROM (" + sql + ") as sub"
	if err := r.db.QueryRowContext(ctx, countSql, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	sql += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}
	return bookings, count, nil
}

func (r *bookingRepository) ListConfirmedEndedBefore(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 AND check_out <= $2`
	rows, err := r.db.QueryContext(ctx, query, domain.BookingStatusConfirmed, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) ListConfirmedStartingOn(ctx context.Context, day time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 AND check_in = $2`
	rows, err := r.db.QueryContext(ctx, query, domain.BookingStatusConfirmed, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func scanBookings(rows *sql.Rows) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.PropertyID, &b.GuestID, &b.HostID, &b.CheckIn, &b.CheckOut, &b.Nights, &b.BasePrice, &b.ServiceFee, &b.TotalAmount, &b.HostEarning, &b.Status, &b.Payout, &b.CancelReason, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
