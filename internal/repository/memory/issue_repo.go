// Package memory is the in-process persistence backend. It mirrors the
// postgres repositories behind the same interfaces and is used for
// local development and tests (STORE=memory).
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Harshavarthini19/campus-connect/internal/models"
	"github.com/Harshavarthini19/campus-connect/internal/repository"

	"github.com/google/uuid"
)

type IssueRepo struct {
	mu     sync.RWMutex
	issues map[string]*models.Issue
}

func NewIssueRepo() *IssueRepo {
	return &IssueRepo{issues: make(map[string]*models.Issue)}
}

func cloneIssue(i *models.Issue) *models.Issue {
	cp := *i
	cp.Comments = append([]models.Comment(nil), i.Comments...)
	return &cp
}

func (r *IssueRepo) Create(_ context.Context, i *models.Issue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	i.ID = uuid.NewString()
	i.Status = models.StatusNew
	i.Comments = nil
	i.CreatedAt = now
	i.UpdatedAt = now
	r.issues[i.ID] = cloneIssue(i)
	return nil
}

func (r *IssueRepo) Get(_ context.Context, id string) (*models.Issue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.issues[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneIssue(i), nil
}

func (r *IssueRepo) List(_ context.Context, f repository.IssueFilter) ([]models.Issue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.filtered(f)
	sortIssues(out, f.Sort, f.Order)
	return page(out, f.Limit, f.Offset), nil
}

func (r *IssueRepo) Count(_ context.Context, f repository.IssueFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.filtered(f)), nil
}

func (r *IssueRepo) ListByReporter(ctx context.Context, reporterID string) ([]models.Issue, error) {
	return r.List(ctx, repository.IssueFilter{Reporter: reporterID, Limit: 200})
}

func (r *IssueRepo) Update(_ context.Context, id string, p repository.IssuePatch) (*models.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.issues[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if p.Title != nil {
		i.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		i.Description = strings.TrimSpace(*p.Description)
	}
	if p.Category != nil {
		i.Category = *p.Category
	}
	if p.Priority != nil {
		i.Priority = *p.Priority
	}
	if p.Status != nil {
		i.Status = *p.Status
	}
	if p.AssignedTo != nil {
		i.AssignedTo = strings.TrimSpace(*p.AssignedTo)
	}
	i.UpdatedAt = time.Now()
	return cloneIssue(i), nil
}

func (r *IssueRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.issues[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.issues, id)
	return nil
}

func (r *IssueRepo) AddComment(_ context.Context, issueID string, c *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.issues[issueID]
	if !ok {
		return repository.ErrNotFound
	}
	now := time.Now()
	c.ID = uuid.NewString()
	c.IssueID = issueID
	c.CreatedAt = now
	i.Comments = append(i.Comments, *c)
	i.UpdatedAt = now
	return nil
}

func (r *IssueRepo) filtered(f repository.IssueFilter) []models.Issue {
	q := strings.ToLower(strings.TrimSpace(f.Q))

	var out []models.Issue
	for _, i := range r.issues {
		if q != "" &&
			!strings.Contains(strings.ToLower(i.Title), q) &&
			!strings.Contains(strings.ToLower(i.Description), q) {
			continue
		}
		if f.Status != "" && string(i.Status) != f.Status {
			continue
		}
		if f.Priority != "" && string(i.Priority) != f.Priority {
			continue
		}
		if f.Category != "" && string(i.Category) != f.Category {
			continue
		}
		if f.Assignee != "" && i.AssignedTo != f.Assignee {
			continue
		}
		if f.Reporter != "" && i.ReporterID != f.Reporter {
			continue
		}
		out = append(out, *cloneIssue(i))
	}
	return out
}

var priorityRank = map[models.Priority]int{
	models.PriorityLow:    0,
	models.PriorityMedium: 1,
	models.PriorityHigh:   2,
	models.PriorityUrgent: 3,
}

func sortIssues(items []models.Issue, by, order string) {
	less := func(a, b models.Issue) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	switch strings.ToLower(strings.TrimSpace(by)) {
	case "created_at":
		less = func(a, b models.Issue) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "priority":
		less = func(a, b models.Issue) bool { return priorityRank[a.Priority] < priorityRank[b.Priority] }
	}
	asc := strings.EqualFold(strings.TrimSpace(order), "asc")
	sort.SliceStable(items, func(a, b int) bool {
		if asc {
			return less(items[a], items[b])
		}
		return less(items[b], items[a])
	})
}

func page(items []models.Issue, limit, offset int) []models.Issue {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
