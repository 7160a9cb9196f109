package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadscore/internal/entity"
	"github.com/xavierca1/leadscore/internal/infra/http/middleware"
	"github.com/xavierca1/leadscore/internal/usecase"
)

type LeadHandler struct {
	Leads    entity.LeadRepositoryInterface
	History  entity.ScoreHistoryRepositoryInterface
	CreateUC *usecase.CreateLeadUseCase
	DeleteUC *usecase.DeleteLeadUseCase
}

func NewLeadHandler(
	leads entity.LeadRepositoryInterface,
	history entity.ScoreHistoryRepositoryInterface,
	createUC *usecase.CreateLeadUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
) *LeadHandler {
	return &LeadHandler{
		Leads:    leads,
		History:  history,
		CreateUC: createUC,
		DeleteUC: deleteUC,
	}
}

// LeadDetailResponse is the lead merged with its full score history,
// newest entry first.
type LeadDetailResponse struct {
	entity.Lead
	History []entity.ScoreHistory `json:"history"`
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}

	lead, err := h.Leads.FindByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if lead == nil {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}

	history, err := h.History.ListByLead(r.Context(), lead.ID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LeadDetailResponse{Lead: *lead, History: history})
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.RecordLeadCreated()
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}

	if err := h.DeleteUC.Execute(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
