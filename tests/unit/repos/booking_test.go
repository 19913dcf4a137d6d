package repos

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/repository/postgres"
)

var bookingCols = []string{
	"id", "reference", "property_id", "guest_id", "host_id", "check_in", "check_out",
	"nights", "base_price", "service_fee", "total_amount", "host_earning",
	"status", "payout_status", "cancel_reason", "created_on", "updated_on",
}

func bookingRow(id int32, status domain.BookingStatus, checkIn, checkOut time.Time) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id, "SJ-AB12CD34", int32(2), int32(3), int32(10), checkIn, checkOut,
		int32(3), int64(75000), int64(11250), int64(86250), int64(67500),
		string(status), "PENDING", "", now, now,
	}
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		b := &domain.Booking{
			Reference:   "SJ-AB12CD34",
			PropertyID:  2,
			GuestID:     3,
			HostID:      10,
			CheckIn:     time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:    time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
			Nights:      3,
			BasePrice:   75000,
			ServiceFee:  11250,
			TotalAmount: 86250,
			HostEarning: 67500,
			Status:      domain.BookingStatusPending,
			Payout:      domain.PayoutStatusPending,
		}

		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(b.Reference, b.PropertyID, b.GuestID, b.HostID, b.CheckIn, b.CheckOut,
				b.Nights, b.BasePrice, b.ServiceFee, b.TotalAmount, b.HostEarning,
				b.Status, b.Payout, b.CancelReason, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.Create(ctx, b)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), b.ID)
	})
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		checkOut := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(bookingRow(7, domain.BookingStatusConfirmed, checkIn, checkOut)...))

		b, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, "SJ-AB12CD34", b.Reference)
		assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
		assert.Equal(t, int64(67500), b.HostEarning)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows(bookingCols))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingRepository_ListActiveByProperty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		checkOut := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(bookingCols).
			AddRow(bookingRow(7, domain.BookingStatusConfirmed, checkIn, checkOut)...).
			AddRow(bookingRow(8, domain.BookingStatusPending, checkOut, checkOut.AddDate(0, 0, 2))...)

		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE property_id = \\$1 AND status IN").
			WithArgs(int32(2), domain.BookingStatusPending, domain.BookingStatusConfirmed).
			WillReturnRows(rows)

		bookings, err := repo.ListActiveByProperty(ctx, 2)
		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
	})
}

func TestBookingRepository_ListByGuest(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Status filter", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM").
			WithArgs(int32(3), "Confirmé").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE guest_id = \\$1 AND status = \\$2 ORDER BY created_on DESC").
			WithArgs(int32(3), "Confirmé", int32(20), int32(0)).
			WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(bookingRow(7, domain.BookingStatusConfirmed, checkIn, checkIn.AddDate(0, 0, 3))...))

		bookings, total, err := repo.ListByGuest(ctx, 3, "Confirmé", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, bookings, 1)
	})
}

func TestBookingRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		b := &domain.Booking{
			ID:           7,
			Status:       domain.BookingStatusCancelled,
			Payout:       domain.PayoutStatusPending,
			CancelReason: "change of plans",
		}

		mock.ExpectExec("UPDATE bookings SET status").
			WithArgs(b.Status, b.Payout, b.CancelReason, sqlmock.AnyArg(), b.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, b)
		assert.NoError(t, err)
	})
}
