package service

import "github.com/Harshavarthini19/campus-connect/internal/models"

type Stats struct {
	Total      int                     `json:"total"`
	ByStatus   map[models.Status]int   `json:"byStatus"`
	ByCategory map[models.Category]int `json:"byCategory"`
	ByPriority map[models.Priority]int `json:"byPriority"`
}

// ComputeStats is a pure rollup over an issue snapshot: same input,
// same output, no stored state. Every enum member appears as a key
// even when its count is zero.
func ComputeStats(issues []models.Issue) Stats {
	s := Stats{
		Total: len(issues),
		ByStatus: map[models.Status]int{
			models.StatusNew: 0, models.StatusInProgress: 0, models.StatusUnderReview: 0,
			models.StatusResolved: 0, models.StatusClosed: 0,
		},
		ByCategory: map[models.Category]int{
			models.CategoryInfrastructure: 0, models.CategoryHarassment: 0,
			models.CategoryTechnical: 0, models.CategorySuggestion: 0,
		},
		ByPriority: map[models.Priority]int{
			models.PriorityLow: 0, models.PriorityMedium: 0,
			models.PriorityHigh: 0, models.PriorityUrgent: 0,
		},
	}
	for _, i := range issues {
		s.ByStatus[i.Status]++
		s.ByCategory[i.Category]++
		s.ByPriority[i.Priority]++
	}
	return s
}
