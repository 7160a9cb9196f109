package entity

import (
	"context"
	"encoding/json"
	"time"
)

// Event is a behavioral occurrence attributed to a lead. Events are written
// once on ingestion and only ever removed by a cascading lead delete.
type Event struct {
	ID        int             `json:"id"`
	LeadID    int             `json:"leadId"`
	EventType string          `json:"eventType"`
	Payload   json.RawMessage `json:"payload"`
	Processed bool            `json:"processed"`
	CreatedAt time.Time       `json:"createdAt"`
}

type EventRepositoryInterface interface {
	// Create persists the event and fills ID, Processed and CreatedAt.
	Create(ctx context.Context, event *Event) error

	// ListRecent returns the newest events first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]Event, error)

	ListByLead(ctx context.Context, leadID int) ([]Event, error)
}
