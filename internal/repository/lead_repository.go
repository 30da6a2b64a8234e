package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rahat-dev/ramadan-times-api/internal/models"
)

// LeadRepository persists contact-form submissions.
type LeadRepository struct {
	db *sqlx.DB
}

// NewLeadRepository constructs the repository.
func NewLeadRepository(db *sqlx.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create inserts a new lead row.
func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO leads
	(id, name, email, phone, website_type, message, created_at)
	VALUES (:id, :name, :email, :phone, :website_type, :message, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, lead); err != nil {
		return fmt.Errorf("create lead: %w", err)
	}
	return nil
}

// GetByID fetches a lead by identifier.
func (r *LeadRepository) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	const query = `SELECT id, name, email, phone, website_type, message, created_at
	FROM leads WHERE id = $1`
	var lead models.Lead
	if err := r.db.GetContext(ctx, &lead, query, id); err != nil {
		return nil, err
	}
	return &lead, nil
}

// List returns the most recent leads, newest first.
func (r *LeadRepository) List(ctx context.Context, limit int) ([]models.Lead, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const query = `SELECT id, name, email, phone, website_type, message, created_at
	FROM leads ORDER BY created_at DESC LIMIT $1`
	leads := []models.Lead{}
	if err := r.db.SelectContext(ctx, &leads, query, limit); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}
