package postgres

import (
	"database/sql"

	"sejour-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.PropertyRepository
	repository.BookingRepository
	repository.LedgerRepository
	repository.MessageRepository
	repository.NotificationRepository
	repository.HostApplicationRepository
	repository.SettingsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		UserRepository:            NewUserRepository(db),
		PropertyRepository:        NewPropertyRepository(db),
		BookingRepository:         NewBookingRepository(db),
		LedgerRepository:          NewLedgerRepository(db),
		MessageRepository:         NewMessageRepository(db),
		NotificationRepository:    NewNotificationRepository(db),
		HostApplicationRepository: NewHostApplicationRepository(db),
		SettingsRepository:        NewSettingsRepository(db),
	}
}
