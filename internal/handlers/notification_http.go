package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Harshavarthini19/campus-connect/internal/repository"
	"github.com/Harshavarthini19/campus-connect/internal/utils"
)

type NotificationHTTP struct {
	notifs repository.NotificationRepository
}

func NewNotificationHTTP(n repository.NotificationRepository) *NotificationHTTP {
	return &NotificationHTTP{notifs: n}
}

// GET /api/notifications — the caller's own, newest first.
func (h *NotificationHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentActor(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		items, err := h.notifs.ListFor(r.Context(), actor.ID)
		if err != nil {
			writeErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
	}
}

// POST /api/notifications/{id}/read — best-effort, succeeds even if the
// id is unknown or already read.
func (h *NotificationHTTP) MarkRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentActor(r); !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		if err := h.notifs.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// POST /api/notifications/read-all
func (h *NotificationHTTP) MarkAllRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentActor(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		if err := h.notifs.MarkAllRead(r.Context(), actor.ID); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
