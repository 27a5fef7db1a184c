package db

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
)

// Store keeps the gateway payment profile on the user's billing account row.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) Store { return Store{db: db} }

// hashExternalID keeps raw external ids out of the table. Every byte of the
// id is hashed so distinct users never share a row.
func hashExternalID(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// GetPaymentProfile returns the cached profile, or "" when the user has none.
func (s Store) GetPaymentProfile(ctx context.Context, userExternalID string) (string, error) {
	var profile string
	err := s.db.QueryRowContext(ctx,
		`SELECT payment_profile FROM billing_account WHERE user_external_id = $1`,
		hashExternalID(userExternalID)).Scan(&profile)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error querying billing_account: %w", err)
	}
	return profile, nil
}

// SavePaymentProfile upserts the profile for the user.
func (s Store) SavePaymentProfile(ctx context.Context, userExternalID, profile string) error {
	if profile == "" {
		return fmt.Errorf("payment profile must not be empty")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO billing_account (user_external_id, payment_profile)
		VALUES ($1, $2)
		ON CONFLICT (user_external_id)
		DO UPDATE SET payment_profile = EXCLUDED.payment_profile, updated_at = now()`,
		hashExternalID(userExternalID), profile)
	if err != nil {
		return fmt.Errorf("error upserting billing_account: %w", err)
	}
	return nil
}

// ClearPaymentProfile forgets the cached profile once the gateway no longer knows the customer.
func (s Store) ClearPaymentProfile(ctx context.Context, userExternalID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE billing_account SET payment_profile = '', updated_at = now() WHERE user_external_id = $1`,
		hashExternalID(userExternalID))
	if err != nil {
		return fmt.Errorf("error clearing billing_account: %w", err)
	}
	return nil
}
