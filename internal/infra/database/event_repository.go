package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/leadscore/internal/entity"
)

type EventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (lead_id, event_type, payload)
		VALUES ($1, $2, $3)
		RETURNING id, processed, created_at
	`

	return r.DB.QueryRowContext(ctx, query,
		event.LeadID,
		event.EventType,
		[]byte(event.Payload),
	).Scan(&event.ID, &event.Processed, &event.CreatedAt)
}

func (r *EventRepository) ListRecent(ctx context.Context, limit int) ([]entity.Event, error) {
	query := `
		SELECT id, lead_id, event_type, payload, processed, created_at
		FROM events
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepository) ListByLead(ctx context.Context, leadID int) ([]entity.Event, error) {
	query := `
		SELECT id, lead_id, event_type, payload, processed, created_at
		FROM events
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]entity.Event, error) {
	events := []entity.Event{}
	for rows.Next() {
		var e entity.Event
		var payload []byte
		if err := rows.Scan(&e.ID, &e.LeadID, &e.EventType, &payload, &e.Processed, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Payload = payload
		events = append(events, e)
	}
	return events, rows.Err()
}
