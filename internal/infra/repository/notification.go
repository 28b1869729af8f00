package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"clinicbook/internal/infra"
	"clinicbook/internal/infra/db"
	"clinicbook/internal/pkg/pgconv"
	"clinicbook/internal/usecase/commands"
)

type NotificationRepository struct{}

func NewNotificationRepository() commands.NotificationRepository {
	return &NotificationRepository{}
}

// CreateJob enqueues an outbound notification in the same transaction as the
// state change it announces, so a rolled-back booking never notifies anyone.
func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (id, kind, topic, payload, status, run_at, created_at)
		VALUES ($1, $2, $3, $4, 'queued', $5, $5)
	`

	_, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(uuid.New()),
		kind,
		topic,
		payload,
		runAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
