package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_query_store.go -package=mocks github.com/Fatih-Yumusak/anayasa-asistani/internal/storage QueryStore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// QueryStore defines the interface for query-history operations.
type QueryStore interface {
	// Insert records an answered question. A missing ID is filled with
	// a fresh UUID.
	Insert(ctx context.Context, record *QueryRecord) error
	// ListRecent returns the most recent records, newest first.
	ListRecent(ctx context.Context, limit int) ([]QueryRecord, error)
}

// QueryRepo provides methods for query-history operations.
// It implements the QueryStore interface.
type QueryRepo struct {
	db *sql.DB
}

// NewQueryRepo creates a new QueryRepo.
func NewQueryRepo(db *sql.DB) *QueryRepo {
	return &QueryRepo{db: db}
}

// Insert records an answered question.
func (r *QueryRepo) Insert(ctx context.Context, record *QueryRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO queries (id, question, answer, backend, confidence) VALUES (?, ?, ?, ?, ?)",
		record.ID, record.Question, record.Answer, record.Backend, record.Confidence,
	)
	if err != nil {
		return fmt.Errorf("failed to insert query record: %w", err)
	}
	return nil
}

// ListRecent returns the most recent records, newest first.
// Returns an empty slice when the log is empty (not an error).
func (r *QueryRepo) ListRecent(ctx context.Context, limit int) ([]QueryRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, question, answer, backend, confidence, created_at FROM queries ORDER BY created_at DESC, id LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []QueryRecord
	for rows.Next() {
		var rec QueryRecord
		if err := rows.Scan(&rec.ID, &rec.Question, &rec.Answer, &rec.Backend, &rec.Confidence, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan query record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate query records: %w", err)
	}

	return records, nil
}
