package handlers

import (
	"net/http"

	"github.com/Harshavarthini19/campus-connect/internal/models"
	"github.com/Harshavarthini19/campus-connect/internal/repository"
	"github.com/Harshavarthini19/campus-connect/internal/service"
	"github.com/Harshavarthini19/campus-connect/internal/utils"
)

type StatsHTTP struct {
	issues repository.IssueRepository
}

func NewStatsHTTP(issues repository.IssueRepository) *StatsHTTP {
	return &StatsHTTP{issues: issues}
}

// GET /api/stats
// Reporters get a rollup of their own issues, staff of everything.
// Recomputed from the current snapshot on every call.
func (h *StatsHTTP) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentActor(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		f := repository.IssueFilter{Limit: 200}
		if !actor.Role.Staff() {
			f.Reporter = actor.ID
		}

		// Page through so the rollup covers the whole snapshot, not
		// just the first page.
		var snapshot []models.Issue
		for {
			page, err := h.issues.List(r.Context(), f)
			if err != nil {
				writeErr(w, err)
				return
			}
			snapshot = append(snapshot, page...)
			if len(page) < f.Limit {
				break
			}
			f.Offset += f.Limit
		}

		utils.JSON(w, http.StatusOK, service.ComputeStats(snapshot))
	}
}
