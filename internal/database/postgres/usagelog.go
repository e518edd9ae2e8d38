package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/repository"
)

type usageLogRepository struct {
	db *pgxpool.Pool
}

// NewUsageLogRepository creates a new PostgreSQL usage log repository
func NewUsageLogRepository(db *pgxpool.Pool) repository.UsageLog {
	return &usageLogRepository{db: db}
}

// InsertLogs appends a batch of usage log entries for a user
func (r *usageLogRepository) InsertLogs(ctx context.Context, userID string, logs []domain.UsageLogEntry) error {
	return insertLogs(ctx, r.db, userID, logs)
}

// GetLogsByUserID retrieves a user's usage log entries since a point in time
func (r *usageLogRepository) GetLogsByUserID(ctx context.Context, userID string, since time.Time) ([]domain.UsageLogEntry, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT app_package_name, start_time, end_time, duration_seconds
		FROM usage_logs
		WHERE user_id = $1 AND start_time >= $2
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, userUUID, since)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLogs, err)
	}
	defer rows.Close()

	var logs []domain.UsageLogEntry
	for rows.Next() {
		var entry domain.UsageLogEntry
		err := rows.Scan(&entry.AppPackageName, &entry.StartTime, &entry.EndTime, &entry.DurationSeconds)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLogs, err)
		}
		logs = append(logs, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLogs, err)
	}

	return logs, nil
}

func insertLogs(ctx context.Context, q querier, userID string, logs []domain.UsageLogEntry) error {
	if len(logs) == 0 {
		return nil
	}

	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO usage_logs (user_id, app_package_name, start_time, end_time, duration_seconds)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, entry := range logs {
		batch.Queue(query, userUUID, entry.AppPackageName, entry.StartTime, entry.EndTime, entry.DurationSeconds)
	}

	if err := sendBatch(ctx, q, batch); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertLogs, err)
	}

	return nil
}

// sendBatch runs a batch against either a pool or a transaction
func sendBatch(ctx context.Context, q querier, batch *pgx.Batch) error {
	type batcher interface {
		SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	}

	b, ok := q.(batcher)
	if !ok {
		return fmt.Errorf("querier does not support batches")
	}

	results := b.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return results.Close()
}
