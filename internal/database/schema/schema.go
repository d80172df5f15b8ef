package schema

import (
	"context"
	"fmt"

	"jobtrack/internal/database"
)

// Statements are idempotent so Ensure can run on every boot.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		cv_text TEXT NOT NULL DEFAULT '',
		preferences JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS job_offers (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		company_name TEXT NOT NULL,
		position_title TEXT NOT NULL,
		job_description TEXT NOT NULL,
		job_url TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		company_description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'not_sent',
		tech_stack TEXT[] NOT NULL DEFAULT '{}',
		analysis JSONB,
		cover_letter TEXT NOT NULL DEFAULT '',
		user_notes TEXT NOT NULL DEFAULT '',
		application_date DATE NOT NULL DEFAULT CURRENT_DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_job_offers_user_created ON job_offers (user_id, created_at DESC)`,
}

func Ensure(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
