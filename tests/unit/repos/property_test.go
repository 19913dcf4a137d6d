package repos

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"sejour-backend/internal/repository/postgres"
)

func TestPropertyRepository_BlockedDates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPropertyRepository(db)
	ctx := context.Background()

	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	t.Run("List", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"blocked_date"}).
			AddRow(day).
			AddRow(day.AddDate(0, 0, 5))

		mock.ExpectQuery("SELECT blocked_date FROM property_blocked_dates WHERE property_id = \\$1 ORDER BY blocked_date").
			WithArgs(int32(2)).
			WillReturnRows(rows)

		dates, err := repo.ListBlockedDates(ctx, 2)
		assert.NoError(t, err)
		assert.Len(t, dates, 2)
		assert.True(t, dates[0].Equal(day))
	})

	t.Run("Add", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO property_blocked_dates \\(property_id, blocked_date\\)").
			WithArgs(int32(2), day).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AddBlockedDate(ctx, 2, day)
		assert.NoError(t, err)
	})

	t.Run("Remove", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM property_blocked_dates WHERE property_id = \\$1 AND blocked_date = \\$2").
			WithArgs(int32(2), day).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.RemoveBlockedDate(ctx, 2, day)
		assert.NoError(t, err)
	})
}
