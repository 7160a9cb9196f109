package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/leadscore/internal/entity"
	"github.com/xavierca1/leadscore/internal/infra/http/middleware"
	"github.com/xavierca1/leadscore/internal/usecase"
)

// recentEventsLimit caps GET /api/events to the newest entries.
const recentEventsLimit = 100

type EventHandler struct {
	Events   entity.EventRepositoryInterface
	IngestUC *usecase.IngestEventUseCase
}

func NewEventHandler(events entity.EventRepositoryInterface, ingestUC *usecase.IngestEventUseCase) *EventHandler {
	return &EventHandler{
		Events:   events,
		IngestUC: ingestUC,
	}
}

func (h *EventHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var input usecase.IngestEventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.IngestUC.Execute(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.RecordEventIngested(output.ScoreUpdated)
	writeJSON(w, http.StatusCreated, output)
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.Events.ListRecent(r.Context(), recentEventsLimit)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, events)
}
