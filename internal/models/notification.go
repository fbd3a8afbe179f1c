package models

import "time"

type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

func (k Kind) Valid() bool {
	switch k {
	case KindInfo, KindSuccess, KindWarning, KindError:
		return true
	}
	return false
}

// Notification references issues and users by id only; a link may
// dangle after the issue it points at is deleted.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"type"`
	IsRead    bool      `json:"isRead"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
