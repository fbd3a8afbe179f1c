package memory

import (
	"context"
	"testing"

	"github.com/Harshavarthini19/campus-connect/internal/models"
	"github.com/Harshavarthini19/campus-connect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIssue() *models.Issue {
	return &models.Issue{
		Title:        "Elevator Out of Service",
		Description:  "Main elevator down for 3 days.",
		Category:     models.CategoryInfrastructure,
		Priority:     models.PriorityUrgent,
		LocationName: "Engineering Building",
		ReporterID:   "reporter-1",
		ReporterName: "John Anderson",
	}
}

func TestIssueRepoCreate(t *testing.T) {
	r := NewIssueRepo()
	ctx := context.Background()

	i := newIssue()
	i.Status = models.StatusResolved // callers cannot smuggle a status in
	require.NoError(t, r.Create(ctx, i))

	assert.NotEmpty(t, i.ID)
	assert.Equal(t, models.StatusNew, i.Status)
	assert.Empty(t, i.Comments)
	assert.Equal(t, i.CreatedAt, i.UpdatedAt)

	got, err := r.Get(ctx, i.ID)
	require.NoError(t, err)
	assert.Equal(t, i.Title, got.Title)
}

func TestIssueRepoGetNotFound(t *testing.T) {
	r := NewIssueRepo()
	_, err := r.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestIssueRepoUpdate(t *testing.T) {
	r := NewIssueRepo()
	ctx := context.Background()

	i := newIssue()
	require.NoError(t, r.Create(ctx, i))

	status := models.StatusInProgress
	assignee := "admin-1"
	updated, err := r.Update(ctx, i.ID, repository.IssuePatch{Status: &status, AssignedTo: &assignee})
	require.NoError(t, err)

	assert.Equal(t, models.StatusInProgress, updated.Status)
	assert.Equal(t, "admin-1", updated.AssignedTo)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
	// untouched fields survive a partial patch
	assert.Equal(t, i.Title, updated.Title)
	assert.Equal(t, i.ReporterID, updated.ReporterID)

	_, err = r.Update(ctx, "missing", repository.IssuePatch{Status: &status})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestIssueRepoDelete(t *testing.T) {
	r := NewIssueRepo()
	ctx := context.Background()

	i := newIssue()
	require.NoError(t, r.Create(ctx, i))
	require.NoError(t, r.AddComment(ctx, i.ID, &models.Comment{UserID: "u1", UserName: "U", Content: "c"}))

	require.NoError(t, r.Delete(ctx, i.ID))

	_, err := r.Get(ctx, i.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, i.ID), repository.ErrNotFound)
}

func TestIssueRepoAddComment(t *testing.T) {
	r := NewIssueRepo()
	ctx := context.Background()

	i := newIssue()
	require.NoError(t, r.Create(ctx, i))

	c := &models.Comment{UserID: "staff-1", UserName: "Dr. Williams", Content: "On it.", IsInternal: true}
	require.NoError(t, r.AddComment(ctx, i.ID, c))
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, i.ID, c.IssueID)

	got, err := r.Get(ctx, i.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.True(t, got.Comments[0].IsInternal)
	// appending a comment touches the issue itself
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
	assert.Equal(t, got.UpdatedAt, c.CreatedAt)

	err = r.AddComment(ctx, "missing", &models.Comment{Content: "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestIssueRepoListFilters(t *testing.T) {
	r := NewIssueRepo()
	ctx := context.Background()

	a := newIssue()
	require.NoError(t, r.Create(ctx, a))

	b := newIssue()
	b.Title = "WiFi keeps dropping"
	b.Category = models.CategoryTechnical
	b.ReporterID = "reporter-2"
	require.NoError(t, r.Create(ctx, b))

	all, err := r.List(ctx, repository.IssueFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	tech, err := r.List(ctx, repository.IssueFilter{Category: string(models.CategoryTechnical)})
	require.NoError(t, err)
	require.Len(t, tech, 1)
	assert.Equal(t, b.ID, tech[0].ID)

	byQ, err := r.List(ctx, repository.IssueFilter{Q: "wifi"})
	require.NoError(t, err)
	require.Len(t, byQ, 1)
	assert.Equal(t, b.ID, byQ[0].ID)

	mine, err := r.ListByReporter(ctx, "reporter-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, a.ID, mine[0].ID)

	n, err := r.Count(ctx, repository.IssueFilter{Reporter: "reporter-2"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestIssueRepoSnapshotsAreCopies(t *testing.T) {
	r := NewIssueRepo()
	ctx := context.Background()

	i := newIssue()
	require.NoError(t, r.Create(ctx, i))

	got, err := r.Get(ctx, i.ID)
	require.NoError(t, err)
	got.Title = "tampered"

	again, err := r.Get(ctx, i.ID)
	require.NoError(t, err)
	assert.Equal(t, "Elevator Out of Service", again.Title)
}
