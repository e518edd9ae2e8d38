package repository

import (
	"context"
	"time"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

// UsageLog defines usage log persistence operations. Logs are append-only
// observations; the engine never reads them back, admin tooling does.
type UsageLog interface {
	InsertLogs(ctx context.Context, userID string, logs []domain.UsageLogEntry) error
	GetLogsByUserID(ctx context.Context, userID string, since time.Time) ([]domain.UsageLogEntry, error)
}
