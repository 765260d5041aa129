package projects

import (
	"context"

	"github.com/dmitrijs2005/tasktracker/internal/server/models"
)

// Repository stores projects, scoped by owner email like tasks.Repository.
type Repository interface {
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	ListByOwner(ctx context.Context, owner string) ([]*models.Project, error)
	GetByID(ctx context.Context, owner string, id int64) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, owner string, id int64) error
}
