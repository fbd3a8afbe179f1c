package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Harshavarthini19/campus-connect/internal/models"
	"github.com/Harshavarthini19/campus-connect/internal/repository"
	"github.com/Harshavarthini19/campus-connect/internal/service"
	"github.com/Harshavarthini19/campus-connect/internal/utils"
)

// IssueHTTP wires the issue endpoints to the repository (reads) and the
// lifecycle service (all mutations). Visibility policy is applied here,
// at the read boundary, before anything is rendered.
type IssueHTTP struct {
	issues    repository.IssueRepository
	lifecycle *service.Lifecycle
}

func NewIssueHTTP(issues repository.IssueRepository, lifecycle *service.Lifecycle) *IssueHTTP {
	return &IssueHTTP{issues: issues, lifecycle: lifecycle}
}

// GET /api/issues
// Reporters are scoped to their own issues; staff see everything.
func (h *IssueHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentActor(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		qv := r.URL.Query()
		f := repository.IssueFilter{
			Q:        qv.Get("q"),
			Status:   qv.Get("status"),
			Priority: qv.Get("priority"),
			Category: qv.Get("category"),
			Assignee: qv.Get("assignee"),
			Limit:    utils.QueryInt(qv, "limit", 20),
			Offset:   utils.QueryInt(qv, "offset", 0),
			Sort:     qv.Get("sort"),
			Order:    qv.Get("order"),
		}
		if !actor.Role.Staff() {
			f.Reporter = actor.ID
		}

		items, err := h.issues.List(r.Context(), f)
		if err != nil {
			writeErr(w, err)
			return
		}
		total, err := h.issues.Count(r.Context(), f)
		if err != nil {
			writeErr(w, err)
			return
		}

		items = service.IssuesView(items, actor)
		w.Header().Set("X-Total-Count", strconv.Itoa(total))
		utils.JSON(w, http.StatusOK, map[string]any{"items": items, "total": total})
	}
}

// GET /api/issues/{id}
func (h *IssueHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentActor(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		id := chi.URLParam(r, "id")

		issue, err := h.issues.Get(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		if !actor.Role.Staff() && issue.ReporterID != actor.ID {
			utils.Error(w, http.StatusForbidden, "forbidden")
			return
		}
		utils.JSON(w, http.StatusOK, service.IssueView(*issue, actor))
	}
}

// POST /api/issues
func (h *IssueHTTP) Create() http.HandlerFunc {
	type inDTO struct {
		Title        string          `json:"title"`
		Description  string          `json:"description"`
		Category     models.Category `json:"category"`
		Priority     models.Priority `json:"priority"`
		LocationName string          `json:"locationName"`
		Lat          *float64        `json:"lat"`
		Lng          *float64        `json:"lng"`
		IsAnonymous  bool            `json:"isAnonymous"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentActor(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		issue, err := h.lifecycle.CreateIssue(r.Context(), actor, service.IssueDraft{
			Title:        in.Title,
			Description:  in.Description,
			Category:     in.Category,
			Priority:     in.Priority,
			LocationName: in.LocationName,
			Lat:          in.Lat,
			Lng:          in.Lng,
			IsAnonymous:  in.IsAnonymous,
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusCreated, service.IssueView(*issue, actor))
	}
}

// PATCH /api/issues/{id}
func (h *IssueHTTP) Update() http.HandlerFunc {
	type inDTO struct {
		Title       *string          `json:"title"`
		Description *string          `json:"description"`
		Category    *models.Category `json:"category"`
		Priority    *models.Priority `json:"priority"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentActor(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		issue, err := h.lifecycle.UpdateDetails(r.Context(), actor, chi.URLParam(r, "id"), service.DetailsPatch{
			Title:       in.Title,
			Description: in.Description,
			Category:    in.Category,
			Priority:    in.Priority,
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, service.IssueView(*issue, actor))
	}
}

// PATCH /api/issues/{id}/status
func (h *IssueHTTP) ChangeStatus() http.HandlerFunc {
	type inDTO struct {
		Status models.Status `json:"status"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentActor(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		issue, err := h.lifecycle.ChangeStatus(r.Context(), actor, chi.URLParam(r, "id"), in.Status)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, service.IssueView(*issue, actor))
	}
}

// PATCH /api/issues/{id}/assignee
func (h *IssueHTTP) Assign() http.HandlerFunc {
	type inDTO struct {
		AssignedTo string `json:"assignedTo"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentActor(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		issue, err := h.lifecycle.Assign(r.Context(), actor, chi.URLParam(r, "id"), in.AssignedTo)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, service.IssueView(*issue, actor))
	}
}

// DELETE /api/issues/{id}
func (h *IssueHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentActor(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		if err := h.lifecycle.DeleteIssue(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// POST /api/issues/{id}/comments
func (h *IssueHTTP) AddComment() http.HandlerFunc {
	type inDTO struct {
		Content    string `json:"content"`
		IsInternal bool   `json:"isInternal"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentActor(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		c, err := h.lifecycle.AddComment(r.Context(), actor, chi.URLParam(r, "id"), in.Content, in.IsInternal)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusCreated, c)
	}
}
