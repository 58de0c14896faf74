package category

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
	"github.com/norbert15/CostTracker2Backend/internal/rest"
)

type Handler struct {
	categoryService Service
}

func NewHandler(categoryService Service) *Handler {
	return &Handler{categoryService: categoryService}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListForActiveUser(r.Context())
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, "Categories returned", categories)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondErrorMessage(w, http.StatusBadRequest, apperrors.CodeInvalidRequest, "Invalid request body")
		return
	}

	created, err := h.categoryService.Create(r.Context(), &req)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusCreated, "New category created", created)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		rest.RespondErrorMessage(w, http.StatusBadRequest, apperrors.CodeInvalidRequest, "Invalid category id")
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondErrorMessage(w, http.StatusBadRequest, apperrors.CodeInvalidRequest, "Invalid request body")
		return
	}

	updated, err := h.categoryService.Update(r.Context(), id, &req)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, "Category updated", updated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		rest.RespondErrorMessage(w, http.StatusBadRequest, apperrors.CodeInvalidRequest, "Invalid category id")
		return
	}

	if err := h.categoryService.Delete(r.Context(), id); err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, fmt.Sprintf("Category %d deleted", id), nil)
}
