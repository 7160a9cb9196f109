package entity

import (
	"context"
	"time"
)

// Lead statuses follow the funnel stages used by the dashboard.
const (
	StatusNew       = "new"
	StatusEngaged   = "engaged"
	StatusQualified = "qualified"
	StatusLost      = "lost"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusEngaged, StatusQualified, StatusLost:
		return true
	}
	return false
}

type Lead struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Company      string    `json:"company,omitempty"`
	Score        int       `json:"score"`
	Status       string    `json:"status"`
	LastActiveAt time.Time `json:"lastActiveAt"`
	CreatedAt    time.Time `json:"createdAt"`
}

type LeadRepositoryInterface interface {
	// List returns every lead ordered by descending score.
	List(ctx context.Context) ([]Lead, error)
	FindByID(ctx context.Context, id int) (*Lead, error)
	FindByEmail(ctx context.Context, email string) (*Lead, error)

	// Create persists the lead and fills ID, Score, Status and timestamps
	// from the row the database returns.
	Create(ctx context.Context, lead *Lead) error

	// IncrementScore atomically adds delta to the lead's score, refreshes
	// last_active_at and returns the resulting score. Concurrent events on
	// the same lead serialize inside the database, so no update is lost.
	IncrementScore(ctx context.Context, id, delta int) (int, error)

	// Delete removes the lead together with its events and score history,
	// dependents first.
	Delete(ctx context.Context, id int) error
}
