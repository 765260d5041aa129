package services

import (
	"context"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/dbx"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/repomanager"
)

// ProjectInput carries user supplied fields. EndDate is free text and may be
// empty.
type ProjectInput struct {
	Title       string
	Description string
	EndDate     string
}

func (in ProjectInput) checkLength() error {
	if tooLong(maxTitleLen, in.Title) || tooLong(maxTextLen, in.Description) || tooLong(maxEndDateLen, in.EndDate) {
		return common.ErrTooLong
	}
	return nil
}

type ProjectService struct {
	runner      dbx.TxRunner
	repomanager repomanager.RepositoryManager
}

func NewProjectService(runner dbx.TxRunner, m repomanager.RepositoryManager) *ProjectService {
	return &ProjectService{runner: runner, repomanager: m}
}

func (s *ProjectService) List(ctx context.Context, owner string) ([]*models.Project, error) {
	var out []*models.Project
	err := s.runner.RunInTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		out, err = s.repomanager.Projects(tx).ListByOwner(ctx, owner)
		return err
	})
	return out, err
}

func (s *ProjectService) Create(ctx context.Context, owner string, in ProjectInput) (*models.Project, error) {
	if blank(owner, in.Title, in.Description) {
		return nil, common.ErrValidation
	}
	if err := in.checkLength(); err != nil {
		return nil, err
	}

	var created *models.Project
	err := s.runner.RunInTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		created, err = s.repomanager.Projects(tx).Create(ctx, &models.Project{
			OwnerEmail:  owner,
			Title:       in.Title,
			Description: in.Description,
			StartDate:   utcNow(),
			EndDate:     in.EndDate,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ProjectService) Get(ctx context.Context, owner string, id int64) (*models.Project, error) {
	var p *models.Project
	err := s.runner.RunInTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		p, err = s.repomanager.Projects(tx).GetByID(ctx, owner, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Update(ctx context.Context, owner string, id int64, in ProjectInput) error {
	if blank(in.Title, in.Description) {
		return common.ErrValidation
	}
	if err := in.checkLength(); err != nil {
		return err
	}

	return s.runner.RunInTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Projects(tx).Update(ctx, &models.Project{
			ID:          id,
			OwnerEmail:  owner,
			Title:       in.Title,
			Description: in.Description,
			EndDate:     in.EndDate,
		})
	})
}

func (s *ProjectService) Delete(ctx context.Context, owner string, id int64) error {
	return s.runner.RunInTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Projects(tx).Delete(ctx, owner, id)
	})
}

// AddComment attaches text to a project the caller owns. A foreign or
// missing project yields ErrNotFound.
func (s *ProjectService) AddComment(ctx context.Context, owner string, projectID int64, text string) (*models.ProjectComment, error) {
	if blank(owner, text) {
		return nil, common.ErrValidation
	}
	if tooLong(maxTextLen, text) {
		return nil, common.ErrTooLong
	}

	var created *models.ProjectComment
	err := s.runner.RunInTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Projects(tx).GetByID(ctx, owner, projectID); err != nil {
			return err
		}
		var err error
		created, err = s.repomanager.Comments(tx).Create(ctx, &models.ProjectComment{
			ProjectID:   projectID,
			AuthorEmail: owner,
			Comment:     text,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
