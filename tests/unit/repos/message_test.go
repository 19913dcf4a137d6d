package repos

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/repository/postgres"
)

func TestMessageRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMessageRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		m := &domain.Message{
			SenderID:   3,
			ReceiverID: 10,
			Text:       "Bonjour, le logement est-il disponible ?",
		}

		mock.ExpectQuery("INSERT INTO messages").
			WithArgs(m.SenderID, m.ReceiverID, m.Text, m.Read, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, m)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), m.ID)
	})
}

func TestMessageRepository_ListThread(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMessageRepository(db)
	ctx := context.Background()

	t.Run("Both directions in one thread", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "text", "read", "created_on"}).
			AddRow(1, 3, 10, "Bonjour", true, now.Add(-2*time.Hour)).
			AddRow(2, 10, 3, "Oui, disponible", false, now.Add(-time.Hour))

		mock.ExpectQuery("SELECT id, sender_id, receiver_id, text, read, created_on").
			WithArgs(int32(3), int32(10)).
			WillReturnRows(rows)

		msgs, err := repo.ListThread(ctx, 3, 10)
		assert.NoError(t, err)
		assert.Len(t, msgs, 2)
		assert.Equal(t, int32(3), msgs[0].SenderID)
		assert.Equal(t, int32(10), msgs[1].SenderID)
		assert.False(t, msgs[1].Read)
	})
}

func TestMessageRepository_MarkThreadRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMessageRepository(db)
	ctx := context.Background()

	t.Run("Flips only inbound unread messages", func(t *testing.T) {
		mock.ExpectExec("UPDATE messages SET read = TRUE WHERE receiver_id = \\$1 AND sender_id = \\$2 AND read = FALSE").
			WithArgs(int32(3), int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := repo.MarkThreadRead(ctx, 3, 10)
		assert.NoError(t, err)
	})

	t.Run("No unread messages is not an error", func(t *testing.T) {
		mock.ExpectExec("UPDATE messages SET read = TRUE").
			WithArgs(int32(3), int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkThreadRead(ctx, 3, 10)
		assert.NoError(t, err)
	})
}
