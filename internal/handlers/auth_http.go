package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Harshavarthini19/campus-connect/internal/middleware"
	"github.com/Harshavarthini19/campus-connect/internal/repository"
	"github.com/Harshavarthini19/campus-connect/internal/service"
	"github.com/Harshavarthini19/campus-connect/internal/utils"
)

type AuthHTTP struct {
	svc   *service.AuthService
	users repository.UserRepository
}

func NewAuthHTTP(s *service.AuthService, users repository.UserRepository) *AuthHTTP {
	return &AuthHTTP{svc: s, users: users}
}

func (h *AuthHTTP) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email      string `json:"email"`
			Name       string `json:"name"`
			Password   string `json:"password"`
			Department string `json:"department"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		u, err := h.svc.Register(r.Context(), in.Email, in.Name, in.Password, in.Department)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSON(w, http.StatusCreated, u)
	}
}

func (h *AuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		token, u, err := h.svc.Login(r.Context(), in.Email, in.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				utils.Error(w, http.StatusUnauthorized, "invalid credentials")
				return
			}
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		// httpOnly session cookie
		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			// Lax works for same-origin (frontend via proxy);
			// set Secure behind HTTPS in prod.
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(24 * time.Hour),
		})
		utils.JSON(w, http.StatusOK, u)
	}
}

func (h *AuthHTTP) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,              // expire immediately
			Expires:  time.Unix(0, 0), // for older browsers
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AuthHTTP) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetString(r.Context(), middleware.CtxUserID)
		if !ok || uid == "" {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		u, err := h.users.GetByID(r.Context(), uid)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(w, http.StatusNotFound, "user not found")
				return
			}
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, u)
	}
}
