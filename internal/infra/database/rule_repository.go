package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/leadscore/internal/entity"
)

type RuleRepository struct {
	DB *sql.DB
}

func NewRuleRepository(db *sql.DB) *RuleRepository {
	return &RuleRepository{DB: db}
}

func (r *RuleRepository) List(ctx context.Context) ([]entity.ScoringRule, error) {
	query := `
		SELECT id, event_type, points, is_active
		FROM scoring_rules
		ORDER BY id ASC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := []entity.ScoringRule{}
	for rows.Next() {
		var rule entity.ScoringRule
		if err := rows.Scan(&rule.ID, &rule.EventType, &rule.Points, &rule.IsActive); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

func (r *RuleRepository) FindByEventType(ctx context.Context, eventType string) (*entity.ScoringRule, error) {
	query := `
		SELECT id, event_type, points, is_active
		FROM scoring_rules
		WHERE event_type = $1
	`

	var rule entity.ScoringRule
	err := r.DB.QueryRowContext(ctx, query, eventType).
		Scan(&rule.ID, &rule.EventType, &rule.Points, &rule.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rule, nil
}

// Update patches points and/or the active flag. Nil fields keep the stored
// value via COALESCE.
func (r *RuleRepository) Update(ctx context.Context, id int, points *int, isActive *bool) (*entity.ScoringRule, error) {
	query := `
		UPDATE scoring_rules
		SET points = COALESCE($1, points), is_active = COALESCE($2, is_active)
		WHERE id = $3
		RETURNING id, event_type, points, is_active
	`

	var pts sql.NullInt64
	if points != nil {
		pts = sql.NullInt64{Int64: int64(*points), Valid: true}
	}
	var active sql.NullBool
	if isActive != nil {
		active = sql.NullBool{Bool: *isActive, Valid: true}
	}

	var rule entity.ScoringRule
	err := r.DB.QueryRowContext(ctx, query, pts, active, id).
		Scan(&rule.ID, &rule.EventType, &rule.Points, &rule.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrRuleNotFound
	}
	if err != nil {
		return nil, err
	}

	return &rule, nil
}

// SeedDefaults inserts any missing default rule. Existing rows, customized or
// not, are left alone.
func (r *RuleRepository) SeedDefaults(ctx context.Context) error {
	query := `
		INSERT INTO scoring_rules (event_type, points, is_active)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_type) DO NOTHING
	`

	for _, rule := range entity.DefaultRules {
		if _, err := r.DB.ExecContext(ctx, query, rule.EventType, rule.Points, rule.IsActive); err != nil {
			return err
		}
	}

	return nil
}
