package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"jobtrack/internal/database"
	"jobtrack/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.UserProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, cv_text, preferences, created_at, updated_at FROM profiles WHERE user_id = $1`,
		userID,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p profile.UserProfile) (profile.UserProfile, error) {
	prefs, err := json.Marshal(p.Preferences)
	if err != nil {
		return profile.UserProfile{}, fmt.Errorf("marshal preferences: %w", err)
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO profiles (user_id, cv_text, preferences)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE
		 SET cv_text = EXCLUDED.cv_text, preferences = EXCLUDED.preferences, updated_at = now()
		 RETURNING user_id, cv_text, preferences, created_at, updated_at`,
		p.UserID, p.CVText, prefs,
	)
	return scanProfile(row)
}

func scanProfile(row database.Row) (profile.UserProfile, error) {
	var (
		p        profile.UserProfile
		prefsRaw []byte
	)
	if err := row.Scan(&p.UserID, &p.CVText, &prefsRaw, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.UserProfile{}, profile.ErrNotFound
		}
		return profile.UserProfile{}, err
	}
	if len(prefsRaw) > 0 {
		if err := json.Unmarshal(prefsRaw, &p.Preferences); err != nil {
			return profile.UserProfile{}, fmt.Errorf("decode preferences: %w", err)
		}
	}
	return p, nil
}
