package auth

import (
	"encoding/json"
	"net/http"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
	"github.com/norbert15/CostTracker2Backend/internal/rest"
)

type Handler struct {
	authService Service
}

func NewHandler(authService Service) *Handler {
	return &Handler{authService: authService}
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondErrorMessage(w, http.StatusBadRequest, apperrors.CodeInvalidRequest, "Invalid request body")
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, "Login successful", map[string]string{
		"token": token,
	})
}
