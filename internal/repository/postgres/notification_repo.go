package postgres

import (
	"context"

	"github.com/Harshavarthini19/campus-connect/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepo struct{ db *pgxpool.Pool }

func NewNotificationRepo(db *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO notifications (user_id, title, message, kind, link)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, is_read, created_at
	`, n.UserID, n.Title, n.Message, n.Kind, n.Link).Scan(&n.ID, &n.IsRead, &n.CreatedAt)
}

func (r *NotificationRepo) ListFor(ctx context.Context, userID string) ([]models.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, message, kind, is_read, link, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Kind, &n.IsRead, &n.Link, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead deliberately ignores a missing id: delivery is best-effort
// and read receipts must never fail a user action.
func (r *NotificationRepo) MarkRead(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = true WHERE id = $1`, id)
	return err
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = true WHERE user_id = $1`, userID)
	return err
}
