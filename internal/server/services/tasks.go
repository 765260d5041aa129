package services

import (
	"context"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/dbx"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/repomanager"
)

type TaskInput struct {
	Title       string
	Description string
}

func (in TaskInput) checkLength() error {
	if tooLong(maxTitleLen, in.Title) || tooLong(maxTextLen, in.Description) {
		return common.ErrTooLong
	}
	return nil
}

type TaskService struct {
	runner      dbx.TxRunner
	repomanager repomanager.RepositoryManager
}

func NewTaskService(runner dbx.TxRunner, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{runner: runner, repomanager: m}
}

func (s *TaskService) List(ctx context.Context, owner string) ([]*models.Task, error) {
	var out []*models.Task
	err := s.runner.RunInTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		out, err = s.repomanager.Tasks(tx).ListByOwner(ctx, owner)
		return err
	})
	return out, err
}

// Create stamps the task with the current UTC time. Blank fields yield
// ErrValidation and oversized ones ErrTooLong; nothing is written.
func (s *TaskService) Create(ctx context.Context, owner string, in TaskInput) (*models.Task, error) {
	if blank(owner, in.Title, in.Description) {
		return nil, common.ErrValidation
	}
	if err := in.checkLength(); err != nil {
		return nil, err
	}

	var created *models.Task
	err := s.runner.RunInTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		created, err = s.repomanager.Tasks(tx).Create(ctx, &models.Task{
			OwnerEmail:  owner,
			Title:       in.Title,
			Description: in.Description,
			CreatedAt:   utcNow(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *TaskService) Get(ctx context.Context, owner string, id int64) (*models.Task, error) {
	var task *models.Task
	err := s.runner.RunInTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		task, err = s.repomanager.Tasks(tx).GetByID(ctx, owner, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, owner string, id int64, in TaskInput) error {
	if blank(in.Title, in.Description) {
		return common.ErrValidation
	}
	if err := in.checkLength(); err != nil {
		return err
	}

	return s.runner.RunInTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Tasks(tx).Update(ctx, &models.Task{
			ID:          id,
			OwnerEmail:  owner,
			Title:       in.Title,
			Description: in.Description,
		})
	})
}

func (s *TaskService) Delete(ctx context.Context, owner string, id int64) error {
	return s.runner.RunInTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Tasks(tx).Delete(ctx, owner, id)
	})
}
