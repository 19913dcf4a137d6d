package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/repository"
)

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// system_settings holds exactly one row (id = 1).
func (r *settingsRepository) Get(ctx context.Context) (*domain.SystemSettings, error) {
	s := &domain.SystemSettings{}
	query := `SELECT commission_rate, service_fee_rate, maintenance_mode, updated_on FROM system_settings WHERE id = 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&s.CommissionRate, &s.ServiceFeeRate, &s.MaintenanceMode, &s.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *settingsRepository) Update(ctx context.Context, s *domain.SystemSettings) error {
	query := `UPDATE system_settings SET commission_rate=$1, service_fee_rate=$2, maintenance_mode=$3, updated_on=$4 WHERE id = 1`
	now := time.Now()
	s.UpdatedOn = now
	_, err := r.db.ExecContext(ctx, query, s.CommissionRate, s.ServiceFeeRate, s.MaintenanceMode, now)
	return err
}
