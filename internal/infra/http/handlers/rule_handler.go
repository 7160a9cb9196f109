package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadscore/internal/entity"
	"github.com/xavierca1/leadscore/internal/usecase"
)

type RuleHandler struct {
	Rules entity.RuleRepositoryInterface
}

func NewRuleHandler(rules entity.RuleRepositoryInterface) *RuleHandler {
	return &RuleHandler{Rules: rules}
}

func (h *RuleHandler) List(w http.ResponseWriter, r *http.Request) {
	rules, err := h.Rules.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rules)
}

func (h *RuleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Rule not found")
		return
	}

	var input usecase.UpdateRuleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	rule, err := h.Rules.Update(r.Context(), id, input.Points, input.IsActive)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rule)
}

// Reset re-seeds any missing default rule and returns the full set. Existing
// rules keep their customized values.
func (h *RuleHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.Rules.SeedDefaults(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}

	rules, err := h.Rules.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rules)
}
