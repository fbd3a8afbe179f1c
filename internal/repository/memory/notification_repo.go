package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Harshavarthini19/campus-connect/internal/models"

	"github.com/google/uuid"
)

type NotificationRepo struct {
	mu    sync.RWMutex
	items map[string]*models.Notification
	seq   map[string]int // insertion order tiebreak for same-instant timestamps
	next  int
}

func NewNotificationRepo() *NotificationRepo {
	return &NotificationRepo{
		items: make(map[string]*models.Notification),
		seq:   make(map[string]int),
	}
}

func (r *NotificationRepo) Create(_ context.Context, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n.ID = uuid.NewString()
	n.IsRead = false
	n.CreatedAt = time.Now()
	cp := *n
	r.items[n.ID] = &cp
	r.next++
	r.seq[n.ID] = r.next
	return nil
}

// ListFor returns the user's notifications newest-first.
func (r *NotificationRepo) ListFor(_ context.Context, userID string) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Notification
	for _, n := range r.items {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return r.seq[out[a].ID] > r.seq[out[b].ID]
		}
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})
	return out, nil
}

func (r *NotificationRepo) MarkRead(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n, ok := r.items[id]; ok {
		n.IsRead = true
	}
	return nil
}

func (r *NotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.items {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}
