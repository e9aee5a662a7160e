package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// pgUndefinedTable is the Postgres error code raised when the
// user_records table has not been provisioned yet.
const pgUndefinedTable = "42P01"

// RecordRepo implements repository.AttributeRepository on Postgres.
// Records live in user_records(user_id, data, updated_at) with the
// attribute map as JSONB.
type RecordRepo struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewRecordRepo creates a new attribute record repository
func NewRecordRepo(db *sql.DB, logger *zap.Logger) *RecordRepo {
	return &RecordRepo{db: db, logger: logger}
}

// Get fetches the attribute map for a user. A missing record is
// created empty and returned, and a missing table is recreated, so
// neither surfaces as an error to the caller.
func (r *RecordRepo) Get(userID string) (map[string]any, error) {
	var raw []byte
	query := `SELECT data FROM user_records WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&raw)

	if errors.Is(err, sql.ErrNoRows) {
		if putErr := r.Put(userID, map[string]any{}); putErr != nil {
			r.logger.Warn("failed to seed empty record",
				zap.String("user_id", userID),
				zap.Error(putErr),
			)
		}
		return map[string]any{}, nil
	}
	if isUndefinedTable(err) {
		r.logger.Warn("user_records table missing, creating it")
		if createErr := r.createTable(); createErr != nil {
			r.logger.Error("failed to create user_records table", zap.Error(createErr))
		}
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode attribute record: %w", err)
	}

	restored, _ := Restore(data).(map[string]any)
	if restored == nil {
		restored = map[string]any{}
	}
	return restored, nil
}

// Put writes the full attribute map for a user, replacing any prior
// value and stamping the write time. Values are sanitized for the
// store's type constraints first.
func (r *RecordRepo) Put(userID string, data map[string]any) error {
	payload, err := json.Marshal(Sanitize(data))
	if err != nil {
		return fmt.Errorf("failed to encode attribute record: %w", err)
	}

	query := `
		INSERT INTO user_records (user_id, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET data = $2, updated_at = NOW()
	`
	_, err = r.db.Exec(query, userID, payload)
	if isUndefinedTable(err) {
		r.logger.Warn("user_records table missing on write, creating it")
		if createErr := r.createTable(); createErr != nil {
			return createErr
		}
		_, err = r.db.Exec(query, userID, payload)
	}
	return err
}

func (r *RecordRepo) createTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS user_records (
			user_id TEXT PRIMARY KEY,
			data JSONB NOT NULL DEFAULT '{}',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := r.db.Exec(query)
	return err
}

func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUndefinedTable
}
