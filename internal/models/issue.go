package models

import (
	"strings"
	"time"
)

// Status is the closed set of issue lifecycle states. The transition
// graph is permissive: staff may move an issue from any status to any
// other, including reopening a resolved one.
type Status string

const (
	StatusNew         Status = "new"
	StatusInProgress  Status = "in-progress"
	StatusUnderReview Status = "under-review"
	StatusResolved    Status = "resolved"
	StatusClosed      Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusUnderReview, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Human returns the status as shown in user-facing messages ("in progress").
func (s Status) Human() string { return strings.ReplaceAll(string(s), "-", " ") }

type Category string

const (
	CategoryInfrastructure Category = "infrastructure"
	CategoryHarassment     Category = "harassment"
	CategoryTechnical      Category = "technical"
	CategorySuggestion     Category = "suggestion"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryInfrastructure, CategoryHarassment, CategoryTechnical, CategorySuggestion:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Issue struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     Category  `json:"category"`
	Priority     Priority  `json:"priority"`
	Status       Status    `json:"status"`
	LocationName string    `json:"locationName"`
	Lat          *float64  `json:"lat,omitempty"`
	Lng          *float64  `json:"lng,omitempty"`
	ReporterID   string    `json:"reporterId"`
	ReporterName string    `json:"reporterName"`
	IsAnonymous  bool      `json:"isAnonymous"`
	AssignedTo   string    `json:"assignedTo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Comments     []Comment `json:"comments,omitempty"`
}

// Comment is append-only: never mutated after creation, removed only
// when the owning issue is deleted.
type Comment struct {
	ID         string    `json:"id"`
	IssueID    string    `json:"issueId"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	Content    string    `json:"content"`
	IsInternal bool      `json:"isInternal"`
	CreatedAt  time.Time `json:"createdAt"`
}
