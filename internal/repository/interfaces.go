package repository

import (
	"context"

	"github.com/Harshavarthini19/campus-connect/internal/models"
)

// IssueRepository owns issues and their comment threads. It holds no
// policy: permission checks and notification fan-out live in the
// lifecycle service, never here.
type IssueRepository interface {
	Create(ctx context.Context, i *models.Issue) error
	Get(ctx context.Context, id string) (*models.Issue, error)
	List(ctx context.Context, f IssueFilter) ([]models.Issue, error)
	Count(ctx context.Context, f IssueFilter) (int, error)
	ListByReporter(ctx context.Context, reporterID string) ([]models.Issue, error)
	Update(ctx context.Context, id string, p IssuePatch) (*models.Issue, error)
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, issueID string, c *models.Comment) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListFor(ctx context.Context, userID string) ([]models.Notification, error)
	// MarkRead is a no-op (not an error) when the id is absent or the
	// notification is already read.
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type UserRepository interface {
	Create(ctx context.Context, email, name string, role models.Role, department, passwordHash string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, string /*passwordHash*/, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	List(ctx context.Context, q string, role models.Role, active *bool, limit, offset int) ([]models.Account, int, error)
	UpdateRole(ctx context.Context, id string, role models.Role) (*models.Account, error)
	SetActive(ctx context.Context, id string, active bool) (*models.Account, error)
	UpdateBasic(ctx context.Context, id, name, department, phone string) (*models.Account, error)
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
}
