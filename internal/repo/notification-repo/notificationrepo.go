package notificationrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/nvera/credicuotas/internal/domain"
	"github.com/nvera/credicuotas/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const notificationColumns = `id, recipient_id, event_type, payload, status, attempts, created_at, sent_at`

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(&n.ID, &n.RecipientID, &n.EventType, &n.Payload, &n.Status, &n.Attempts, &n.CreatedAt, &n.SentAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Enqueue writes an outbox row. Called inside the ledger transaction so the
// event exists iff the mutation committed.
func (r *Repository) Enqueue(ctx context.Context, notification *domain.Notification) error {
	query := `
        INSERT INTO notifications (id, recipient_id, event_type, payload, status)
        VALUES ($1, $2, $3, $4, 'new')
    `
	_, err := r.db.Exec(ctx, query, notification.ID, notification.RecipientID, notification.EventType, notification.Payload)
	if err != nil {
		zap.L().Error("can't enqueue notification", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindUnsent(ctx context.Context, limit uint32) ([]domain.Notification, error) {
	query := `
        SELECT ` + notificationColumns + `
        FROM notifications
        WHERE status = 'new'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get unsent notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, *n)
	}
	return notifications, nil
}

func (r *Repository) MarkSent(ctx context.Context, id string) error {
	query := `
        UPDATE notifications
        SET status = 'sent', attempts = attempts + 1, sent_at = now()
        WHERE id = $1
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, id); err != nil {
			zap.L().Error("can't mark notification sent", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) MarkFailed(ctx context.Context, id string) error {
	query := `
        UPDATE notifications
        SET status = 'failed', attempts = attempts + 1
        WHERE id = $1
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, id); err != nil {
			zap.L().Error("can't mark notification failed", zap.Error(err))
			return err
		}
		return nil
	})
}
