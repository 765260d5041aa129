package comments

import (
	"context"

	"github.com/dmitrijs2005/tasktracker/internal/server/models"
)

// Repository stores project comments. Comments are write-only for now.
type Repository interface {
	Create(ctx context.Context, c *models.ProjectComment) (*models.ProjectComment, error)
}
