package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Simplici0/freight/internal/currency"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run inserts the default exchange rates and the rate settings singleton when missing.
// Existing rows are never touched, so Run is safe on every startup.
func Run(ctx context.Context, db *sql.DB) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureBaseRates(ctx, tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureRateSettings(ctx, tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureBaseRates(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	defaults := currency.DefaultTable()
	for _, code := range defaults.Codes() {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO exchange_rates (code, rate)
			VALUES (?, ?)
			ON CONFLICT(code) DO NOTHING
		`, code, defaults[code])
		if err != nil {
			return fmt.Errorf("insert default rate %s: %w", code, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("count default rate %s: %w", code, err)
		}
		stats.Inserts += int(n)
	}
	return nil
}

func ensureRateSettings(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM rate_settings WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check rate settings existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO rate_settings (id, use_manual) VALUES (1, 0)`); err != nil {
		return fmt.Errorf("insert rate settings singleton: %w", err)
	}
	stats.Inserts++
	return nil
}
