package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/quanticedge/profile-portal/internal/api/middleware"
	"github.com/quanticedge/profile-portal/internal/domain"
	"github.com/quanticedge/profile-portal/internal/service"
)

type UserDataHandler struct {
	userService *service.UserService
}

func NewUserDataHandler(userService *service.UserService) *UserDataHandler {
	return &UserDataHandler{userService: userService}
}

type dataResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

// GetAllData returns the caller's visible records: all of them for an
// admin, otherwise just the caller's own.
func (h *UserDataHandler) GetAllData(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Access denied! No token provided.")
		return
	}

	users, err := h.userService.VisibleUsers(r.Context(), callerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("ERROR [UserDataHandler.GetAllData] %v", err)
		writeMessage(w, http.StatusInternalServerError, "Error fetching data from the database")
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{Status: "ok", Data: users})
}

// DeleteData removes a record by id. Admin-only: the historical endpoint
// accepted unauthenticated deletes, this one does not.
func (h *UserDataHandler) DeleteData(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Access denied! No token provided.")
		return
	}

	caller, err := h.userService.GetByID(r.Context(), callerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("ERROR [UserDataHandler.DeleteData] %v", err)
		writeMessage(w, http.StatusInternalServerError, "Error deleting user")
		return
	}
	if !caller.IsAdmin {
		writeMessage(w, http.StatusForbidden, "Admin access required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		log.Printf("ERROR [UserDataHandler.DeleteData] %v", err)
		writeMessage(w, http.StatusInternalServerError, "Error deleting user")
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{Status: "Ok", Data: "Deleted"})
}
