package user

import (
	"encoding/json"
	"net/http"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
	"github.com/norbert15/CostTracker2Backend/internal/rest"
)

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{userService: userService}
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondErrorMessage(w, http.StatusBadRequest, apperrors.CodeInvalidRequest, "Invalid request body")
		return
	}

	created, err := h.userService.Register(&req)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusCreated, "New user created", created)
}

func (h *Handler) HandleGetActiveUser(w http.ResponseWriter, r *http.Request) {
	active, err := h.userService.ActiveUser(r.Context())
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, "Active user returned", active)
}

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondErrorMessage(w, http.StatusBadRequest, apperrors.CodeInvalidRequest, "Invalid request body")
		return
	}

	updated, err := h.userService.UpdateProfile(r.Context(), &req)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, "User profile updated", updated)
}

func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req PasswordChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondErrorMessage(w, http.StatusBadRequest, apperrors.CodeInvalidRequest, "Invalid request body")
		return
	}

	if err := h.userService.ChangePassword(r.Context(), &req); err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, "Password changed", nil)
}
