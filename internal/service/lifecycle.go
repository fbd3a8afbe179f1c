package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Harshavarthini19/campus-connect/internal/models"
	"github.com/Harshavarthini19/campus-connect/internal/repository"

	"github.com/rs/zerolog"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrPermissionDenied = errors.New("permission denied")
)

const reporterIssuesLink = "/my-reports"

// Lifecycle is the only component allowed to change an issue's status
// or assignee, and the policy layer around comment visibility flags.
// Repositories stay pure; all notification fan-out happens here.
type Lifecycle struct {
	issues repository.IssueRepository
	notifs repository.NotificationRepository
	log    zerolog.Logger
}

func NewLifecycle(issues repository.IssueRepository, notifs repository.NotificationRepository, log zerolog.Logger) *Lifecycle {
	return &Lifecycle{issues: issues, notifs: notifs, log: log}
}

type IssueDraft struct {
	Title        string
	Description  string
	Category     models.Category
	Priority     models.Priority
	LocationName string
	Lat          *float64
	Lng          *float64
	IsAnonymous  bool
}

func (s *Lifecycle) CreateIssue(ctx context.Context, actor models.Actor, d IssueDraft) (*models.Issue, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.LocationName = strings.TrimSpace(d.LocationName)

	switch {
	case d.Title == "":
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	case d.Description == "":
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	case d.LocationName == "":
		return nil, fmt.Errorf("%w: location is required", ErrValidation)
	case !d.Category.Valid():
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, d.Category)
	}
	if d.Priority == "" {
		d.Priority = models.PriorityMedium
	}
	if !d.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, d.Priority)
	}

	// The reporter's real name is always stored; anonymity is applied
	// at the rendering edge so notifications can still be delivered.
	i := &models.Issue{
		Title:        d.Title,
		Description:  d.Description,
		Category:     d.Category,
		Priority:     d.Priority,
		LocationName: d.LocationName,
		Lat:          d.Lat,
		Lng:          d.Lng,
		ReporterID:   actor.ID,
		ReporterName: actor.Name,
		IsAnonymous:  d.IsAnonymous,
	}
	if err := s.issues.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

// ChangeStatus moves an issue to any member of the status set. The
// transition graph is intentionally permissive so staff can correct
// mistakes, including reopening a resolved issue.
func (s *Lifecycle) ChangeStatus(ctx context.Context, actor models.Actor, issueID string, status models.Status) (*models.Issue, error) {
	if !actor.Role.Staff() {
		return nil, fmt.Errorf("%w: only staff may change issue status", ErrPermissionDenied)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	updated, err := s.issues.Update(ctx, issueID, repository.IssuePatch{Status: &status})
	if err != nil {
		return nil, err
	}

	kind := models.KindInfo
	if status == models.StatusResolved {
		kind = models.KindSuccess
	}
	s.notify(ctx, updated.ReporterID,
		"Issue Status Updated",
		fmt.Sprintf("Your issue %q status has been changed to %s.", updated.Title, status.Human()),
		kind)
	return updated, nil
}

// Assign sets or clears the assignee. No notification: assignment is an
// internal triage step invisible to the reporter.
func (s *Lifecycle) Assign(ctx context.Context, actor models.Actor, issueID, assigneeID string) (*models.Issue, error) {
	if !actor.Role.Staff() {
		return nil, fmt.Errorf("%w: only staff may assign issues", ErrPermissionDenied)
	}
	return s.issues.Update(ctx, issueID, repository.IssuePatch{AssignedTo: &assigneeID})
}

type DetailsPatch struct {
	Title       *string
	Description *string
	Category    *models.Category
	Priority    *models.Priority
}

// UpdateDetails is the staff correction path: re-prioritization,
// re-categorization, title/description fixes. Status and assignee go
// through their own operations.
func (s *Lifecycle) UpdateDetails(ctx context.Context, actor models.Actor, issueID string, p DetailsPatch) (*models.Issue, error) {
	if !actor.Role.Staff() {
		return nil, fmt.Errorf("%w: only staff may edit issue details", ErrPermissionDenied)
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if p.Category != nil && !p.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, *p.Category)
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, *p.Priority)
	}
	return s.issues.Update(ctx, issueID, repository.IssuePatch{
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Priority:    p.Priority,
	})
}

// AddComment appends a comment. A reporter's comment is always public:
// the internal flag is silently dropped rather than rejected. The
// reporter is notified only when somebody else comments publicly on
// their issue.
func (s *Lifecycle) AddComment(ctx context.Context, actor models.Actor, issueID, content string, internal bool) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment content is required", ErrValidation)
	}
	if !actor.Role.Staff() {
		internal = false
	}

	issue, err := s.issues.Get(ctx, issueID)
	if err != nil {
		return nil, err
	}

	c := &models.Comment{
		UserID:     actor.ID,
		UserName:   actor.Name,
		Content:    content,
		IsInternal: internal,
	}
	if err := s.issues.AddComment(ctx, issueID, c); err != nil {
		return nil, err
	}

	if !internal && actor.ID != issue.ReporterID {
		s.notify(ctx, issue.ReporterID,
			"New Comment on Your Issue",
			fmt.Sprintf("An administrator commented on %q.", issue.Title),
			models.KindInfo)
	}
	return c, nil
}

// DeleteIssue is reporter-initiated retraction, not moderation: only
// the original reporter may delete, and nobody is notified.
func (s *Lifecycle) DeleteIssue(ctx context.Context, actor models.Actor, issueID string) error {
	issue, err := s.issues.Get(ctx, issueID)
	if err != nil {
		return err
	}
	if issue.ReporterID != actor.ID {
		return fmt.Errorf("%w: only the reporter may delete their issue", ErrPermissionDenied)
	}
	return s.issues.Delete(ctx, issueID)
}

// notify creates a notification best-effort. A failure is logged and
// swallowed so the triggering mutation is never rolled back or failed
// because of it.
func (s *Lifecycle) notify(ctx context.Context, userID, title, message string, kind models.Kind) {
	n := &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Kind:    kind,
		Link:    reporterIssuesLink,
	}
	if err := s.notifs.Create(ctx, n); err != nil {
		s.log.Error().Err(err).Str("recipient", userID).Str("title", title).Msg("notification create failed")
	}
}
