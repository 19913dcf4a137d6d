package postgres

import (
	"context"
	"database/sql"
	"time"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/repository"
)

type messageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (sender_id, receiver_id, text, read, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	m.CreatedOn = now
	return r.db.QueryRowContext(ctx, query, m.SenderID, m.ReceiverID, m.Text, m.Read, now).Scan(&m.ID)
}

func (r *messageRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Message, error) {
	query := `SELECT id, sender_id, receiver_id, text, read, created_on
	          FROM messages WHERE sender_id = $1 OR receiver_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (r *messageRepository) ListThread(ctx context.Context, userID, counterpartID int32) ([]domain.Message, error) {
	query := `SELECT id, sender_id, receiver_id, text, read, created_on
	          FROM messages
	          WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
	          ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, userID, counterpartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (r *messageRepository) MarkThreadRead(ctx context.Context, userID, counterpartID int32) error {
	// Only messages addressed to userID flip; the opposite direction is
	// untouched. Running this twice is a no-op.
	query := `UPDATE messages SET read = TRUE WHERE receiver_id = $1 AND sender_id = $2 AND read = FALSE`
	_, err := r.db.ExecContext(ctx, query, userID, counterpartID)
	return err
}

func scanMessages(rows *sql.Rows) ([]domain.Message, error) {
	var msgs []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Text, &m.Read, &m.CreatedOn); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
