package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/leadscore/internal/entity"
)

type ScoreHistoryRepository struct {
	DB *sql.DB
}

func NewScoreHistoryRepository(db *sql.DB) *ScoreHistoryRepository {
	return &ScoreHistoryRepository{DB: db}
}

func (r *ScoreHistoryRepository) Add(ctx context.Context, entry *entity.ScoreHistory) error {
	query := `
		INSERT INTO score_history (lead_id, score_change, new_score, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(ctx, query,
		entry.LeadID,
		entry.ScoreChange,
		entry.NewScore,
		entry.Reason,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *ScoreHistoryRepository) ListByLead(ctx context.Context, leadID int) ([]entity.ScoreHistory, error) {
	query := `
		SELECT id, lead_id, score_change, new_score, reason, created_at
		FROM score_history
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []entity.ScoreHistory{}
	for rows.Next() {
		var h entity.ScoreHistory
		if err := rows.Scan(&h.ID, &h.LeadID, &h.ScoreChange, &h.NewScore, &h.Reason, &h.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, h)
	}

	return entries, rows.Err()
}
