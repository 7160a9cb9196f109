package entity

import (
	"context"
	"time"
)

// ScoreHistory is one entry of the append-only audit log: the delta a rule
// applied, the absolute score after it, and the event type that triggered it.
type ScoreHistory struct {
	ID          int       `json:"id"`
	LeadID      int       `json:"leadId"`
	ScoreChange int       `json:"scoreChange"`
	NewScore    int       `json:"newScore"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ScoreHistoryRepositoryInterface interface {
	// Add appends an entry and fills ID and CreatedAt.
	Add(ctx context.Context, entry *ScoreHistory) error

	// ListByLead returns the lead's entries, newest first.
	ListByLead(ctx context.Context, leadID int) ([]ScoreHistory, error)
}
