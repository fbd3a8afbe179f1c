package service_test

import (
	"testing"

	"github.com/Harshavarthini19/campus-connect/internal/models"
	"github.com/Harshavarthini19/campus-connect/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatsEmptySnapshot(t *testing.T) {
	s := service.ComputeStats(nil)

	assert.Zero(t, s.Total)
	// every enum member is present even at zero
	assert.Len(t, s.ByStatus, 5)
	assert.Len(t, s.ByCategory, 4)
	assert.Len(t, s.ByPriority, 4)
	assert.Zero(t, s.ByStatus[models.StatusResolved])
}

func TestComputeStats(t *testing.T) {
	issues := []models.Issue{
		{Status: models.StatusNew, Category: models.CategoryInfrastructure, Priority: models.PriorityHigh},
		{Status: models.StatusNew, Category: models.CategoryTechnical, Priority: models.PriorityUrgent},
		{Status: models.StatusResolved, Category: models.CategoryInfrastructure, Priority: models.PriorityLow},
		{Status: models.StatusUnderReview, Category: models.CategorySuggestion, Priority: models.PriorityLow},
	}

	s := service.ComputeStats(issues)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.ByStatus[models.StatusNew])
	assert.Equal(t, 1, s.ByStatus[models.StatusResolved])
	assert.Equal(t, 0, s.ByStatus[models.StatusClosed])
	assert.Equal(t, 2, s.ByCategory[models.CategoryInfrastructure])
	assert.Equal(t, 0, s.ByCategory[models.CategoryHarassment])
	assert.Equal(t, 2, s.ByPriority[models.PriorityLow])
	assert.Equal(t, 1, s.ByPriority[models.PriorityUrgent])
}

func TestComputeStatsDeterministic(t *testing.T) {
	issues := []models.Issue{
		{Status: models.StatusClosed, Category: models.CategoryHarassment, Priority: models.PriorityMedium},
	}
	assert.Equal(t, service.ComputeStats(issues), service.ComputeStats(issues))
}
