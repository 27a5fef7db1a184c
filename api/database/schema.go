package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS billing_account (
		user_external_id TEXT PRIMARY KEY,
		payment_profile  TEXT NOT NULL DEFAULT '',
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS billing_account_payment_profile_idx
		ON billing_account (payment_profile) WHERE payment_profile <> ''`,
}

// EnsureSchema creates the tables the billing service needs when they are missing.
func EnsureSchema(ctx context.Context) error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
