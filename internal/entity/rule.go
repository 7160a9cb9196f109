package entity

import "context"

// ScoringRule maps an event type to a point delta. At most one rule exists
// per event type (unique in the database).
type ScoringRule struct {
	ID        int    `json:"id"`
	EventType string `json:"eventType"`
	Points    int    `json:"points"`
	IsActive  bool   `json:"isActive"`
}

// DefaultRules is the seed set restored by POST /api/rules/reset.
var DefaultRules = []ScoringRule{
	{EventType: "page_view", Points: 5, IsActive: true},
	{EventType: "email_open", Points: 10, IsActive: true},
	{EventType: "form_submission", Points: 20, IsActive: true},
	{EventType: "demo_request", Points: 50, IsActive: true},
	{EventType: "purchase", Points: 100, IsActive: true},
}

type RuleRepositoryInterface interface {
	// List returns all rules ordered by ascending id.
	List(ctx context.Context) ([]ScoringRule, error)
	FindByEventType(ctx context.Context, eventType string) (*ScoringRule, error)

	// Update applies a partial update. Nil fields keep their current value.
	Update(ctx context.Context, id int, points *int, isActive *bool) (*ScoringRule, error)

	// SeedDefaults inserts any default rule whose event type is missing.
	// Existing rows are never overwritten.
	SeedDefaults(ctx context.Context) error
}
