package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/repository"
)

type hostApplicationRepository struct {
	db *sql.DB
}

func NewHostApplicationRepository(db *sql.DB) repository.HostApplicationRepository {
	return &hostApplicationRepository{db: db}
}

const applicationColumns = `id, applicant_id, business_domain, description, status, COALESCE(decision_reason, ''), created_on, decided_on`

func (r *hostApplicationRepository) Create(ctx context.Context, app *domain.HostApplication) error {
	query := `INSERT INTO host_applications (applicant_id, business_domain, description, status, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	app.CreatedOn = now
	return r.db.QueryRowContext(ctx, query, app.ApplicantID, app.BusinessDomain, app.Description, app.Status, now).Scan(&app.ID)
}

func (r *hostApplicationRepository) GetByID(ctx context.Context, id int32) (*domain.HostApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM host_applications WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *hostApplicationRepository) GetPendingByApplicant(ctx context.Context, applicantID int32) (*domain.HostApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM host_applications WHERE applicant_id = $1 AND status = $2`
	return r.scanOne(r.db.QueryRowContext(ctx, query, applicantID, domain.ApplicationStatusPending))
}

func (r *hostApplicationRepository) scanOne(row *sql.Row) (*domain.HostApplication, error) {
	app := &domain.HostApplication{}
	err := row.Scan(&app.ID, &app.ApplicantID, &app.BusinessDomain, &app.Description, &app.Status, &app.DecisionReason, &app.CreatedOn, &app.DecidedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *hostApplicationRepository) Update(ctx context.Context, app *domain.HostApplication) error {
	query := `UPDATE host_applications SET status=$1, decision_reason=$2, decided_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, app.Status, app.DecisionReason, app.DecidedOn, app.ID)
	return err
}

func (r *hostApplicationRepository) ListByStatus(ctx context.Context, status string) ([]domain.HostApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM host_applications`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.HostApplication
	for rows.Next() {
		var app domain.HostApplication
		if err := rows.Scan(&app.ID, &app.ApplicantID, &app.BusinessDomain, &app.Description, &app.Status, &app.DecisionReason, &app.CreatedOn, &app.DecidedOn); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}
