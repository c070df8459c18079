package currency

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Simplici0/freight/internal/apperrors"
)

const (
	tableExchangeRates = "exchange_rates"
	tableManualRates   = "manual_rates"
	tableRateSettings  = "rate_settings"
)

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// Repository persists exchange-rate settings in SQLite.
type Repository struct {
	db *sql.DB
}

// NewRepository returns a Repository over an opened database.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Load reads the fetched table, the manual overrides and the override switch.
// A database without any fetched rate yields DefaultTable.
func (r *Repository) Load(ctx context.Context) (Settings, error) {
	base, err := r.loadTable(ctx, tableExchangeRates)
	if err != nil {
		return Settings{}, err
	}
	if len(base) == 0 {
		base = DefaultTable()
	}

	manual, err := r.loadTable(ctx, tableManualRates)
	if err != nil {
		return Settings{}, err
	}

	settings := Settings{Base: base, Manual: manual}

	query, args, err := builder().Select("use_manual", "last_update").From(tableRateSettings).Where(sq.Eq{"id": 1}).ToSql()
	if err != nil {
		return Settings{}, fmt.Errorf("build rate settings query: %w", err)
	}

	var lastUpdate sql.NullString
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&settings.UseManual, &lastUpdate)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Settings{}, fmt.Errorf("query rate settings: %w", err)
	}
	if lastUpdate.Valid && lastUpdate.String != "" {
		settings.LastUpdate, err = time.Parse(time.RFC3339Nano, lastUpdate.String)
		if err != nil {
			return Settings{}, fmt.Errorf("parse rate settings last_update: %w", err)
		}
	}

	return settings, nil
}

func (r *Repository) loadTable(ctx context.Context, table string) (Table, error) {
	query, args, err := builder().Select("code", "rate").From(table).OrderBy("code").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", table, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	out := Table{}
	for rows.Next() {
		var code string
		var rate float64
		if err := rows.Scan(&code, &rate); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out[code] = rate
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}

	return out, nil
}

// SaveBase replaces the fetched table and records when it was fetched.
func (r *Repository) SaveBase(ctx context.Context, table Table, fetchedAt time.Time) error {
	if err := table.Validate(); err != nil {
		return err
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := replaceTable(ctx, tx, tableExchangeRates, table); err != nil {
			return err
		}
		return upsertSettings(ctx, tx, sq.Eq{"last_update": fetchedAt.UTC().Format(time.RFC3339Nano)})
	})
}

// SaveManual replaces the manual overrides and the override switch.
func (r *Repository) SaveManual(ctx context.Context, table Table, useManual bool) error {
	for code, rate := range table {
		if rate <= 0 {
			return fmt.Errorf("%w: manual rate for %s must be greater than 0", apperrors.ErrInvalidInput, code)
		}
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := replaceTable(ctx, tx, tableManualRates, table); err != nil {
			return err
		}
		return upsertSettings(ctx, tx, sq.Eq{"use_manual": useManual})
	})
}

func (r *Repository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rate transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rate transaction: %w", err)
	}
	return nil
}

func replaceTable(ctx context.Context, tx *sql.Tx, table string, rates Table) error {
	query, args, err := builder().Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("build %s delete: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	if len(rates) == 0 {
		return nil
	}

	insert := builder().Insert(table).Columns("code", "rate")
	for _, code := range rates.Codes() {
		insert = insert.Values(code, rates[code])
	}
	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("build %s insert: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// upsertSettings writes a single column of the settings singleton, creating it when missing.
func upsertSettings(ctx context.Context, tx *sql.Tx, set sq.Eq) error {
	for column, value := range set {
		query, args, err := builder().Insert(tableRateSettings).
			Columns("id", column).
			Values(1, value).
			Suffix(fmt.Sprintf("ON CONFLICT(id) DO UPDATE SET %s = excluded.%s", column, column)).
			ToSql()
		if err != nil {
			return fmt.Errorf("build rate settings upsert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert rate settings: %w", err)
		}
	}
	return nil
}
