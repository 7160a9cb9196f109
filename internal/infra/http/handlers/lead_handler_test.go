package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/leadscore/internal/entity"
	"github.com/xavierca1/leadscore/internal/infra/http/handlers"
	"github.com/xavierca1/leadscore/internal/usecase"
)

func newLeadRouter(leads *MockLeadRepository, history *MockScoreHistoryRepository, broadcaster *MockBroadcaster) *chi.Mux {
	createUC := usecase.NewCreateLeadUseCase(leads, broadcaster)
	deleteUC := usecase.NewDeleteLeadUseCase(leads, broadcaster)
	h := handlers.NewLeadHandler(leads, history, createUC, deleteUC)

	r := chi.NewRouter()
	r.Get("/api/leads", h.List)
	r.Get("/api/leads/{id}", h.Get)
	r.Post("/api/leads", h.Create)
	r.Delete("/api/leads/{id}", h.Delete)
	return r
}

func TestListLeadsOrderedByScore(t *testing.T) {
	leads := new(MockLeadRepository)
	leads.On("List", mock.Anything).Return([]entity.Lead{
		{ID: 2, Name: "Bob Smith", Email: "bob@startup.io", Score: 120},
		{ID: 1, Name: "Alice Johnson", Email: "alice@example.com", Score: 50},
	}, nil)

	r := newLeadRouter(leads, new(MockScoreHistoryRepository), new(MockBroadcaster))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/leads", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var got []entity.Lead
	json.NewDecoder(w.Body).Decode(&got)
	assert.Len(t, got, 2)
	assert.Equal(t, 120, got[0].Score)
}

func TestGetLeadMergesHistory(t *testing.T) {
	leads := new(MockLeadRepository)
	history := new(MockScoreHistoryRepository)

	leads.On("FindByID", mock.Anything, 1).Return(&entity.Lead{
		ID: 1, Name: "Alice Johnson", Email: "alice@example.com", Score: 50, Status: entity.StatusNew,
	}, nil)
	history.On("ListByLead", mock.Anything, 1).Return([]entity.ScoreHistory{
		{ID: 10, LeadID: 1, ScoreChange: 50, NewScore: 50, Reason: "demo_request", CreatedAt: time.Now()},
	}, nil)

	r := newLeadRouter(leads, history, new(MockBroadcaster))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/leads/1", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	json.NewDecoder(w.Body).Decode(&got)
	assert.Equal(t, float64(1), got["id"])
	entries := got["history"].([]any)
	assert.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.Equal(t, "demo_request", entry["reason"])
	assert.Equal(t, float64(50), entry["scoreChange"])
}

func TestGetLeadNotFound(t *testing.T) {
	leads := new(MockLeadRepository)
	leads.On("FindByID", mock.Anything, 42).Return(nil, nil)

	r := newLeadRouter(leads, new(MockScoreHistoryRepository), new(MockBroadcaster))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/leads/42", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handlers.ErrorResponse
	json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, "Lead not found", resp.Message)
}

func TestCreateLeadReturns201AndBroadcasts(t *testing.T) {
	leads := new(MockLeadRepository)
	broadcaster := new(MockBroadcaster)

	leads.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Lead).ID = 1
	}).Return(nil)
	broadcaster.On("Broadcast", usecase.BroadcastLeadCreated, mock.Anything).Return()

	r := newLeadRouter(leads, new(MockScoreHistoryRepository), broadcaster)

	body, _ := json.Marshal(map[string]string{
		"name":  "Alice Johnson",
		"email": "alice@example.com",
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/leads", bytes.NewReader(body)))

	assert.Equal(t, http.StatusCreated, w.Code)

	var lead entity.Lead
	json.NewDecoder(w.Body).Decode(&lead)
	assert.Equal(t, 1, lead.ID)
	assert.Equal(t, 0, lead.Score)
	broadcaster.AssertCalled(t, "Broadcast", usecase.BroadcastLeadCreated, mock.Anything)
}

func TestCreateLeadValidationFailureReturns400(t *testing.T) {
	leads := new(MockLeadRepository)
	r := newLeadRouter(leads, new(MockScoreHistoryRepository), new(MockBroadcaster))

	body, _ := json.Marshal(map[string]string{"email": "alice@example.com"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/leads", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handlers.ErrorResponse
	json.NewDecoder(w.Body).Decode(&resp)
	assert.Contains(t, resp.Message, "name")
	leads.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLeadDuplicateEmailReturns400(t *testing.T) {
	leads := new(MockLeadRepository)
	leads.On("Create", mock.Anything, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	r := newLeadRouter(leads, new(MockScoreHistoryRepository), new(MockBroadcaster))

	body, _ := json.Marshal(map[string]string{
		"name":  "Alice Johnson",
		"email": "alice@example.com",
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/leads", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateLeadInvalidJSONReturns400(t *testing.T) {
	r := newLeadRouter(new(MockLeadRepository), new(MockScoreHistoryRepository), new(MockBroadcaster))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/leads", bytes.NewReader([]byte("{not json"))))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteLeadReturns204(t *testing.T) {
	leads := new(MockLeadRepository)
	broadcaster := new(MockBroadcaster)

	leads.On("Delete", mock.Anything, 1).Return(nil)
	broadcaster.On("Broadcast", usecase.BroadcastLeadDeleted, mock.Anything).Return()

	r := newLeadRouter(leads, new(MockScoreHistoryRepository), broadcaster)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/leads/1", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteLeadNotFoundReturns404(t *testing.T) {
	leads := new(MockLeadRepository)
	leads.On("Delete", mock.Anything, 42).Return(entity.ErrLeadNotFound)

	r := newLeadRouter(leads, new(MockScoreHistoryRepository), new(MockBroadcaster))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/leads/42", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
