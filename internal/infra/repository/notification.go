package repository

import (
	"context"
	"time"

	"gymgain/internal/infra"
	"gymgain/internal/infra/db"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// CreateJob writes a transactional outbox row; a relay outside the request
// path delivers it later.
func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
		VALUES ($1, $2, $3, $4, 'pending')`

	_, err := tx.Exec(ctx, query, kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}
