package record

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
	"github.com/norbert15/CostTracker2Backend/internal/rest"
)

type Handler struct {
	recordService Service
}

func NewHandler(recordService Service) *Handler {
	return &Handler{recordService: recordService}
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondErrorMessage(w, http.StatusBadRequest, apperrors.CodeInvalidRequest, "Invalid request body")
		return
	}

	created, err := h.recordService.Create(r.Context(), &req)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusCreated, "New record created", created)
}

func (h *Handler) HandleListByMonth(w http.ResponseWriter, r *http.Request) {
	month := r.PathValue("month")
	categoryType, err := strconv.ParseInt(r.URL.Query().Get("type"), 10, 64)
	if err != nil {
		rest.RespondErrorMessage(w, http.StatusBadRequest, apperrors.CodeInvalidRequest, "Invalid category type")
		return
	}

	groups, err := h.recordService.ListByMonthAndType(r.Context(), month, categoryType)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, "Records grouped by category returned", groups)
}

func (h *Handler) HandleListByYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.ParseInt(r.PathValue("year"), 10, 64)
	if err != nil {
		rest.RespondErrorMessage(w, http.StatusBadRequest, apperrors.CodeInvalidRequest, "Invalid year")
		return
	}
	categoryType, err := strconv.ParseInt(r.URL.Query().Get("type"), 10, 64)
	if err != nil {
		rest.RespondErrorMessage(w, http.StatusBadRequest, apperrors.CodeInvalidRequest, "Invalid category type")
		return
	}

	totals, err := h.recordService.ListByYearAndType(r.Context(), year, categoryType)
	if err != nil {
		rest.RespondError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, "Monthly totals returned", totals)
}
