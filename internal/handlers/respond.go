package handlers

import (
	"errors"
	"net/http"

	"github.com/Harshavarthini19/campus-connect/internal/middleware"
	"github.com/Harshavarthini19/campus-connect/internal/models"
	"github.com/Harshavarthini19/campus-connect/internal/repository"
	"github.com/Harshavarthini19/campus-connect/internal/service"
	"github.com/Harshavarthini19/campus-connect/internal/utils"
)

// currentActor builds the explicit actor every service operation takes
// from the auth middleware's context values.
func currentActor(r *http.Request) (models.Actor, bool) {
	uid, _ := utils.GetString(r.Context(), middleware.CtxUserID)
	if uid == "" {
		return models.Actor{}, false
	}
	name, _ := utils.GetString(r.Context(), middleware.CtxName)
	role, _ := utils.GetString(r.Context(), middleware.CtxRole)
	return models.Actor{ID: uid, Name: name, Role: models.Role(role)}, true
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrValidation):
		utils.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		utils.Error(w, http.StatusForbidden, "forbidden")
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}
