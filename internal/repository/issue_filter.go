package repository

import "github.com/Harshavarthini19/campus-connect/internal/models"

type IssueFilter struct {
	Q        string
	Status   string
	Priority string
	Category string
	Assignee string
	Reporter string
	Limit    int
	Offset   int
	Sort     string // created_at, updated_at, priority
	Order    string // asc|desc
}

// IssuePatch is a partial update; nil fields are left untouched.
// Repositories stamp UpdatedAt on every applied patch.
type IssuePatch struct {
	Title       *string
	Description *string
	Category    *models.Category
	Priority    *models.Priority
	Status      *models.Status
	AssignedTo  *string
}
