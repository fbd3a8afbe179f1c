package service_test

import (
	"testing"

	"github.com/Harshavarthini19/campus-connect/internal/models"
	"github.com/Harshavarthini19/campus-connect/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueWithComments() models.Issue {
	return models.Issue{
		ID:           "issue-1",
		Title:        "Harassment Incident Report",
		ReporterID:   reporter.ID,
		ReporterName: reporter.Name,
		IsAnonymous:  true,
		Comments: []models.Comment{
			{ID: "c1", Content: "We are looking into it.", IsInternal: false},
			{ID: "c2", Content: "Security footage requested.", IsInternal: true},
		},
	}
}

func TestIssueViewStripsInternalCommentsForReporter(t *testing.T) {
	v := service.IssueView(issueWithComments(), reporter)

	require.Len(t, v.Comments, 1)
	assert.Equal(t, "c1", v.Comments[0].ID)
}

func TestIssueViewKeepsInternalCommentsForStaff(t *testing.T) {
	v := service.IssueView(issueWithComments(), staff)
	assert.Len(t, v.Comments, 2)

	v = service.IssueView(issueWithComments(), admin)
	assert.Len(t, v.Comments, 2)
}

func TestIssueViewAnonymizesReporterName(t *testing.T) {
	// hidden from staff and other reporters alike
	assert.Equal(t, service.AnonymousName, service.IssueView(issueWithComments(), staff).ReporterName)

	other := models.Actor{ID: "reporter-2", Name: "Jane Doe", Role: models.RoleReporter}
	assert.Equal(t, service.AnonymousName, service.IssueView(issueWithComments(), other).ReporterName)

	// the reporter still sees their own name; the id stays intact for
	// the system's own bookkeeping
	own := service.IssueView(issueWithComments(), reporter)
	assert.Equal(t, reporter.Name, own.ReporterName)
	assert.Equal(t, reporter.ID, own.ReporterID)
}

func TestIssueViewDoesNotMutateInput(t *testing.T) {
	in := issueWithComments()
	_ = service.IssueView(in, reporter)

	assert.Len(t, in.Comments, 2)
	assert.Equal(t, reporter.Name, in.ReporterName)
}

func TestIssuesView(t *testing.T) {
	out := service.IssuesView([]models.Issue{issueWithComments(), issueWithComments()}, reporter)
	require.Len(t, out, 2)
	for _, v := range out {
		assert.Len(t, v.Comments, 1)
	}
}
