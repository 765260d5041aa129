package tasks

import (
	"context"

	"github.com/dmitrijs2005/tasktracker/internal/server/models"
)

// Repository stores tasks. Every lookup and mutation by id is scoped to the
// owner's email; a row owned by someone else is reported as not found.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	ListByOwner(ctx context.Context, owner string) ([]*models.Task, error)
	GetByID(ctx context.Context, owner string, id int64) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, owner string, id int64) error
}
