package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"
	"github.com/xavierca1/leadscore/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	query := `
		SELECT id, email, name, COALESCE(company, ''), score, status, last_active_at, created_at
		FROM leads
		ORDER BY score DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.Email, &l.Name, &l.Company, &l.Score, &l.Status, &l.LastActiveAt, &l.CreatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) FindByID(ctx context.Context, id int) (*entity.Lead, error) {
	query := `
		SELECT id, email, name, COALESCE(company, ''), score, status, last_active_at, created_at
		FROM leads
		WHERE id = $1
	`
	return r.findOne(ctx, query, id)
}

func (r *LeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	query := `
		SELECT id, email, name, COALESCE(company, ''), score, status, last_active_at, created_at
		FROM leads
		WHERE email = $1
	`
	return r.findOne(ctx, query, email)
}

func (r *LeadRepository) findOne(ctx context.Context, query string, arg any) (*entity.Lead, error) {
	var l entity.Lead
	err := r.DB.QueryRowContext(ctx, query, arg).
		Scan(&l.ID, &l.Email, &l.Name, &l.Company, &l.Score, &l.Status, &l.LastActiveAt, &l.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (email, name, company, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, score, status, last_active_at, created_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		lead.Email,
		lead.Name,
		nullString(lead.Company),
		lead.Status,
	).Scan(
		&lead.ID,
		&lead.Score,
		&lead.Status,
		&lead.LastActiveAt,
		&lead.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		log.Printf("lead insert failed: %v", err)
		return err
	}

	return nil
}

// IncrementScore applies the delta inside the database so concurrent events
// on the same lead cannot lose an update.
func (r *LeadRepository) IncrementScore(ctx context.Context, id, delta int) (int, error) {
	query := `
		UPDATE leads
		SET score = score + $1, last_active_at = NOW()
		WHERE id = $2
		RETURNING score
	`

	var newScore int
	err := r.DB.QueryRowContext(ctx, query, delta, id).Scan(&newScore)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, entity.ErrLeadNotFound
	}
	if err != nil {
		return 0, err
	}

	return newScore, nil
}

// Delete removes the lead and its dependents in one transaction. Events and
// score history go first to satisfy the foreign keys.
func (r *LeadRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM events WHERE lead_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM score_history WHERE lead_id = $1`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrLeadNotFound
	}

	return tx.Commit()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
