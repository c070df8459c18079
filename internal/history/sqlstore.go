package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/bytedance/sonic"
)

const historyTable = "history_records"

var recordColumns = []string{"id", "created_at", "calc_type", "currency", "inputs_json", "results_json"}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// SQLStore keeps records in the history_records table. Insertion order is the seq column.
type SQLStore struct {
	db       *sql.DB
	capacity int
}

// NewSQLStore returns a SQLStore over a migrated database.
func NewSQLStore(db *sql.DB, capacity int) *SQLStore {
	return &SQLStore{db: db, capacity: normalizeCapacity(capacity)}
}

// Insert adds rec and trims the table to capacity in one transaction.
func (s *SQLStore) Insert(ctx context.Context, rec Record) error {
	inputs, err := sonic.Marshal(rec.Inputs)
	if err != nil {
		return fmt.Errorf("encode history inputs: %w", err)
	}
	results, err := sonic.Marshal(rec.Results)
	if err != nil {
		return fmt.Errorf("encode history results: %w", err)
	}

	insert, insertArgs, err := builder().Insert(historyTable).
		Columns(recordColumns...).
		Values(rec.ID, rec.CreatedAt.UTC().Format(time.RFC3339Nano), string(rec.Type), rec.Currency, string(inputs), string(results)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build history insert: %w", err)
	}
	trim, trimArgs, err := builder().Delete(historyTable).
		Where(sq.Expr("seq NOT IN (SELECT seq FROM "+historyTable+" ORDER BY seq DESC LIMIT ?)", s.capacity)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build history trim: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insert, insertArgs...); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert history record: %w", err)
	}
	if _, err := tx.ExecContext(ctx, trim, trimArgs...); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("trim history records: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history transaction: %w", err)
	}
	return nil
}

func (s *SQLStore) List(ctx context.Context) ([]Record, error) {
	query, args, err := builder().Select(recordColumns...).
		From(historyTable).
		OrderBy("seq DESC").
		Limit(uint64(s.capacity)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history records: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history records: %w", err)
	}
	return records, nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (Record, error) {
	query, args, err := builder().Select(recordColumns...).
		From(historyTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return Record{}, fmt.Errorf("build history query: %w", err)
	}

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, notFound(id)
	}
	return rec, err
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	query, args, err := builder().Delete(historyTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build history delete: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete history record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("count deleted history records: %w", err)
	}
	if n == 0 {
		return notFound(id)
	}
	return nil
}

func (s *SQLStore) Clear(ctx context.Context) error {
	query, args, err := builder().Delete(historyTable).ToSql()
	if err != nil {
		return fmt.Errorf("build history clear: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear history records: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		rec                    Record
		createdAt, calcType    string
		inputsJSON, resultJSON string
	)
	if err := row.Scan(&rec.ID, &createdAt, &calcType, &rec.Currency, &inputsJSON, &resultJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("scan history record: %w", err)
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Record{}, fmt.Errorf("parse history created_at: %w", err)
	}
	rec.CreatedAt = ts
	rec.Type = Type(calcType)

	if err := sonic.UnmarshalString(inputsJSON, &rec.Inputs); err != nil {
		return Record{}, fmt.Errorf("decode history inputs: %w", err)
	}
	if err := sonic.UnmarshalString(resultJSON, &rec.Results); err != nil {
		return Record{}, fmt.Errorf("decode history results: %w", err)
	}
	return rec, nil
}
