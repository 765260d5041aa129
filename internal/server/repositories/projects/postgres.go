// Package projects provides the PostgreSQL-backed project store.
package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/dbx"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	query :=
		`INSERT INTO projects (user_email, title, description, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		p.OwnerEmail, p.Title, p.Description, p.StartDate, p.EndDate).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, owner string) ([]*models.Project, error) {
	query :=
		`SELECT id, user_email, title, description, start_date, end_date FROM projects
		 WHERE user_email = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.OwnerEmail, &p.Title, &p.Description, &p.StartDate, &p.EndDate); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, owner string, id int64) (*models.Project, error) {
	query :=
		`SELECT id, user_email, title, description, start_date, end_date FROM projects
		 WHERE id = $1 AND user_email = $2
		 `

	p := &models.Project{}
	err := r.db.QueryRowContext(ctx, query, id, owner).
		Scan(&p.ID, &p.OwnerEmail, &p.Title, &p.Description, &p.StartDate, &p.EndDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// Update writes title, description and end date; start date is immutable.
func (r *PostgresRepository) Update(ctx context.Context, p *models.Project) error {
	query :=
		`UPDATE projects SET title = $1, description = $2, end_date = $3
		 WHERE id = $4 AND user_email = $5
		 `

	res, err := r.db.ExecContext(ctx, query, p.Title, p.Description, p.EndDate, p.ID, p.OwnerEmail)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}

// Delete removes the project; its comments go with it (ON DELETE CASCADE).
func (r *PostgresRepository) Delete(ctx context.Context, owner string, id int64) error {
	query := `DELETE FROM projects WHERE id = $1 AND user_email = $2`

	res, err := r.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}
