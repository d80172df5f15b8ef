package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jobtrack/internal/database"
	"jobtrack/internal/domain/offer"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const offerColumns = `id, user_id, company_name, position_title, job_description, job_url,
	location, company_description, status, tech_stack, analysis, cover_letter,
	user_notes, application_date, created_at, updated_at`

type PostgresOfferRepository struct {
	db database.DB
}

func NewPostgresOfferRepository(db database.DB) *PostgresOfferRepository {
	return &PostgresOfferRepository{db: db}
}

func (r *PostgresOfferRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]offer.JobOffer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+offerColumns+` FROM job_offers WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]offer.JobOffer, 0)
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID filters on the owner in the lookup itself; a bare id is never
// trusted. A row owned by someone else is indistinguishable from a missing
// one.
func (r *PostgresOfferRepository) GetByID(ctx context.Context, userID, offerID uuid.UUID) (offer.JobOffer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+offerColumns+` FROM job_offers WHERE id = $1 AND user_id = $2`,
		offerID, userID,
	)
	return scanOffer(row)
}

func (r *PostgresOfferRepository) Create(ctx context.Context, o offer.JobOffer) (offer.JobOffer, error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Status == "" {
		o.Status = offer.StatusNotSent
	}
	if o.ApplicationDate.IsZero() {
		o.ApplicationDate = time.Now().UTC()
	}
	if o.TechStack == nil {
		o.TechStack = []string{}
	}

	analysisRaw, err := encodeAnalysis(o.Analysis)
	if err != nil {
		return offer.JobOffer{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO job_offers (
			id, user_id, company_name, position_title, job_description, job_url,
			location, company_description, status, tech_stack, analysis,
			cover_letter, user_notes, application_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+offerColumns,
		o.ID, o.UserID, o.CompanyName, o.PositionTitle, o.JobDescription, o.JobURL,
		o.Location, o.CompanyDescription, string(o.Status), o.TechStack, analysisRaw,
		o.CoverLetter, o.UserNotes, o.ApplicationDate,
	)
	return scanOffer(row)
}

func (r *PostgresOfferRepository) UpdateStatus(ctx context.Context, userID, offerID uuid.UUID, status offer.Status) (offer.JobOffer, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE job_offers SET status = $1, updated_at = now()
		 WHERE id = $2 AND user_id = $3
		 RETURNING `+offerColumns,
		string(status), offerID, userID,
	)
	return scanOffer(row)
}

// UpdateCoverLetter persists the serialized advice and the user notes in one
// statement so they never land partially.
func (r *PostgresOfferRepository) UpdateCoverLetter(ctx context.Context, userID, offerID uuid.UUID, coverLetter, userNotes string) (offer.JobOffer, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE job_offers SET cover_letter = $1, user_notes = $2, updated_at = now()
		 WHERE id = $3 AND user_id = $4
		 RETURNING `+offerColumns,
		coverLetter, userNotes, offerID, userID,
	)
	return scanOffer(row)
}

func encodeAnalysis(a *offer.Analysis) ([]byte, error) {
	if a == nil {
		return nil, nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal analysis: %w", err)
	}
	return b, nil
}

func scanOffer(row database.Row) (offer.JobOffer, error) {
	var (
		o           offer.JobOffer
		status      string
		analysisRaw []byte
	)
	err := row.Scan(
		&o.ID, &o.UserID, &o.CompanyName, &o.PositionTitle, &o.JobDescription,
		&o.JobURL, &o.Location, &o.CompanyDescription, &status, &o.TechStack,
		&analysisRaw, &o.CoverLetter, &o.UserNotes, &o.ApplicationDate,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return offer.JobOffer{}, offer.ErrNotFound
		}
		return offer.JobOffer{}, err
	}

	o.Status = offer.Status(status)
	if len(analysisRaw) > 0 && string(analysisRaw) != "null" {
		var a offer.Analysis
		if err := json.Unmarshal(analysisRaw, &a); err != nil {
			return offer.JobOffer{}, fmt.Errorf("decode analysis: %w", err)
		}
		o.Analysis = &a
	}
	return o, nil
}
