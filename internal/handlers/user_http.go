package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Harshavarthini19/campus-connect/internal/models"
	"github.com/Harshavarthini19/campus-connect/internal/repository"
	"github.com/Harshavarthini19/campus-connect/internal/service"
	"github.com/Harshavarthini19/campus-connect/internal/utils"
)

type UserHTTP struct {
	repo repository.UserRepository
	auth *service.AuthService
}

func NewUserHTTP(r repository.UserRepository, auth *service.AuthService) *UserHTTP {
	return &UserHTTP{repo: r, auth: auth}
}

// GET /api/users?q=&role=&active=&limit=&offset=
func (h *UserHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qv := r.URL.Query()
		var active *bool
		if s := qv.Get("active"); s != "" {
			v, _ := strconv.ParseBool(s)
			active = &v
		}
		users, total, err := h.repo.List(r.Context(),
			qv.Get("q"), models.Role(qv.Get("role")), active,
			utils.QueryInt(qv, "limit", 20), utils.QueryInt(qv, "offset", 0))
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": users, "total": total})
	}
}

// PATCH /api/users/{id}/role
func (h *UserHTTP) UpdateRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Role models.Role `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Role.Valid() {
			utils.Error(w, http.StatusBadRequest, "invalid role")
			return
		}
		u, err := h.repo.UpdateRole(r.Context(), chi.URLParam(r, "id"), req.Role)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, u)
	}
}

// PATCH /api/users/{id}/active
func (h *UserHTTP) SetActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Active bool `json:"active"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid request")
			return
		}
		u, err := h.repo.SetActive(r.Context(), chi.URLParam(r, "id"), req.Active)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, u)
	}
}

// PATCH /api/users/{id}/basic
func (h *UserHTTP) UpdateBasic() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name       string `json:"name"`
			Department string `json:"department"`
			Phone      string `json:"phone"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			utils.Error(w, http.StatusBadRequest, "invalid request")
			return
		}
		u, err := h.repo.UpdateBasic(r.Context(), chi.URLParam(r, "id"), req.Name, req.Department, req.Phone)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, u)
	}
}

// PATCH /api/users/{id}/password
func (h *UserHTTP) UpdatePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			OldPassword string `json:"oldPassword"`
			NewPassword string `json:"newPassword"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid request")
			return
		}
		if err := h.auth.ChangePassword(r.Context(), chi.URLParam(r, "id"), req.OldPassword, req.NewPassword); err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				utils.Error(w, http.StatusForbidden, "wrong password")
				return
			}
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
