// Package tasks provides the PostgreSQL-backed task store.
package tasks

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

// Create inserts the task and fills its ID.
func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query :=
		`INSERT INTO tasks (email, title, description, date_task)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.OwnerEmail, task.Title, task.Description, task.CreatedAt).Scan(&task.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// ListByOwner returns the owner's tasks in insertion order.
func (r *PostgresRepository) ListByOwner(ctx context.Context, owner string) ([]*models.Task, error) {
	query :=
		`SELECT id, email, title, description, date_task FROM tasks
		 WHERE email = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.OwnerEmail, &t.Title, &t.Description, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, owner string, id int64) (*models.Task, error) {
	query :=
		`SELECT id, email, title, description, date_task FROM tasks
		 WHERE id = $1 AND email = $2
		 `

	t := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id, owner).
		Scan(&t.ID, &t.OwnerEmail, &t.Title, &t.Description, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

// Update changes title and description. CreatedAt is never written.
func (r *PostgresRepository) Update(ctx context.Context, task *models.Task) error {
	query :=
		`UPDATE tasks SET title = $1, description = $2
		 WHERE id = $3 AND email = $4
		 `

	res, err := r.db.ExecContext(ctx, query, task.Title, task.Description, task.ID, task.OwnerEmail)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, owner string, id int64) error {
	query := `DELETE FROM tasks WHERE id = $1 AND email = $2`

	res, err := r.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}
