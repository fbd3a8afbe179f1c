package service

import "github.com/Harshavarthini19/campus-connect/internal/models"

// AnonymousName replaces the reporter's display name on anonymous
// issues in every human-facing view. The reporter id underneath is
// untouched so notifications still reach them.
const AnonymousName = "Anonymous"

// IssueView returns a copy of the issue shaped for the given viewer:
// internal comments are stripped for non-staff, and anonymous issues
// hide the reporter's name from everyone but the reporter themself.
// Storage always holds the full record; this runs at the read boundary.
func IssueView(issue models.Issue, viewer models.Actor) models.Issue {
	v := issue
	v.Comments = append([]models.Comment(nil), issue.Comments...)

	if !viewer.Role.Staff() {
		visible := v.Comments[:0]
		for _, c := range v.Comments {
			if !c.IsInternal {
				visible = append(visible, c)
			}
		}
		v.Comments = visible
	}
	if v.IsAnonymous && viewer.ID != v.ReporterID {
		v.ReporterName = AnonymousName
	}
	return v
}

func IssuesView(issues []models.Issue, viewer models.Actor) []models.Issue {
	out := make([]models.Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, IssueView(i, viewer))
	}
	return out
}
