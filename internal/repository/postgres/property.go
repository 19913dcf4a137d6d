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

type propertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

const propertyColumns = `id, host_id, title, description, location, type, raw_price, status, COALESCE(rejection_reason, ''), instant_book, created_on, updated_on`

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	query := `INSERT INTO properties (host_id, title, description, location, type, raw_price, status, rejection_reason, instant_book, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	p.CreatedOn = now
	p.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, p.HostID, p.Title, p.Description, p.Location, p.Type, p.RawPrice, p.Status, p.RejectionReason, p.InstantBook, now, now).Scan(&p.ID)
}

func (r *propertyRepository) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	p := &domain.Property{}
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.HostID, &p.Title, &p.Description, &p.Location, &p.Type, &p.RawPrice, &p.Status, &p.RejectionReason, &p.InstantBook, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) error {
	query := `UPDATE properties SET title=$1, description=$2, location=$3, type=$4, raw_price=$5, status=$6, rejection_reason=$7, instant_book=$8, updated_on=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query, p.Title, p.Description, p.Location, p.Type, p.RawPrice, p.Status, p.RejectionReason, p.InstantBook, time.Now(), p.ID)
	return err
}

func (r *propertyRepository) ListByHost(ctx context.Context, hostID int32) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE host_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, hostID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProperties(rows)
}

func (r *propertyRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Property, int32, error) {
	offset := (page - 1) * pageSize
	sql := `SELECT ` + propertyColumns + ` FROM properties WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if status != "" {
		sql += fmt.Sprintf(" AND status = $%d", argIdx)
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

	props, err := scanProperties(rows)
	if err != nil {
		return nil, 0, err
	}
	return props, count, nil
}

func scanProperties(rows *sql.Rows) ([]domain.Property, error) {
	var props []domain.Property
	for rows.Next() {
		var p domain.Property
		if err := rows.Scan(&p.ID, &p.HostID, &p.Title, &p.Description, &p.Location, &p.Type, &p.RawPrice, &p.Status, &p.RejectionReason, &p.InstantBook, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, rows.Err()
}

func (r *propertyRepository) ListBlockedDates(ctx context.Context, propertyID int32) ([]time.Time, error) {
	query := `SELECT blocked_date FROM property_blocked_dates WHERE property_id = $1 ORDER BY blocked_date`
	rows, err := r.db.QueryContext(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

func (r *propertyRepository) AddBlockedDate(ctx context.Context, propertyID int32, date time.Time) error {
	query := `INSERT INTO property_blocked_dates (property_id, blocked_date) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, propertyID, date)
	return err
}

func (r *propertyRepository) RemoveBlockedDate(ctx context.Context, propertyID int32, date time.Time) error {
	query := `DELETE FROM property_blocked_dates WHERE property_id = $1 AND blocked_date = $2`
	_, err := r.db.ExecContext(ctx, query, propertyID, date)
	return err
}
