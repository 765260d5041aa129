// Package memory keeps every repository in process memory. It mirrors the
// PostgreSQL repositories closely enough for handler tests and for running
// the server without a database (-memory).
package memory

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/dbx"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/comments"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/projects"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/users"
)

type store struct {
	mu       sync.Mutex
	nextID   int64
	users    []*models.User
	tasks    []*models.Task
	projects []*models.Project
	comments []*models.ProjectComment
	now      func() time.Time
}

func (s *store) id() int64 {
	s.nextID++
	return s.nextID
}

// Manager vends repositories that share one in-memory store. The DBTX
// argument is ignored.
type Manager struct {
	s *store
}

func NewManager() *Manager {
	return &Manager{s: &store{now: time.Now}}
}

func (m *Manager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *Manager) Users(dbx.DBTX) users.Repository       { return userRepo{m.s} }
func (m *Manager) Tasks(dbx.DBTX) tasks.Repository       { return taskRepo{m.s} }
func (m *Manager) Projects(dbx.DBTX) projects.Repository { return projectRepo{m.s} }
func (m *Manager) Comments(dbx.DBTX) comments.Repository { return commentRepo{m.s} }

type userRepo struct{ s *store }

func (r userRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return nil, common.ErrAlreadyExists
		}
	}
	cp := *u
	cp.ID = r.s.id()
	cp.CreatedAt = r.s.now()
	r.s.users = append(r.s.users, &cp)

	u.ID, u.CreatedAt = cp.ID, cp.CreatedAt
	return u, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *store) hasUser(email string) bool {
	for _, u := range s.users {
		if u.Email == email {
			return true
		}
	}
	return false
}

type taskRepo struct{ s *store }

func (r taskRepo) Create(_ context.Context, t *models.Task) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.hasUser(t.OwnerEmail) {
		return nil, errForeignKey
	}
	cp := *t
	cp.ID = r.s.id()
	r.s.tasks = append(r.s.tasks, &cp)
	t.ID = cp.ID
	return t, nil
}

func (r taskRepo) ListByOwner(_ context.Context, owner string) ([]*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*models.Task
	for _, t := range r.s.tasks {
		if t.OwnerEmail == owner {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r taskRepo) GetByID(_ context.Context, owner string, id int64) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if i := r.find(owner, id); i >= 0 {
		cp := *r.s.tasks[i]
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

func (r taskRepo) Update(_ context.Context, t *models.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.find(t.OwnerEmail, t.ID)
	if i < 0 {
		return common.ErrNotFound
	}
	r.s.tasks[i].Title = t.Title
	r.s.tasks[i].Description = t.Description
	return nil
}

func (r taskRepo) Delete(_ context.Context, owner string, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.find(owner, id)
	if i < 0 {
		return common.ErrNotFound
	}
	r.s.tasks = append(r.s.tasks[:i], r.s.tasks[i+1:]...)
	return nil
}

func (r taskRepo) find(owner string, id int64) int {
	for i, t := range r.s.tasks {
		if t.ID == id && t.OwnerEmail == owner {
			return i
		}
	}
	return -1
}

type projectRepo struct{ s *store }

func (r projectRepo) Create(_ context.Context, p *models.Project) (*models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.hasUser(p.OwnerEmail) {
		return nil, errForeignKey
	}
	cp := *p
	cp.ID = r.s.id()
	r.s.projects = append(r.s.projects, &cp)
	p.ID = cp.ID
	return p, nil
}

func (r projectRepo) ListByOwner(_ context.Context, owner string) ([]*models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*models.Project
	for _, p := range r.s.projects {
		if p.OwnerEmail == owner {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r projectRepo) GetByID(_ context.Context, owner string, id int64) (*models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if i := r.find(owner, id); i >= 0 {
		cp := *r.s.projects[i]
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

func (r projectRepo) Update(_ context.Context, p *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.find(p.OwnerEmail, p.ID)
	if i < 0 {
		return common.ErrNotFound
	}
	r.s.projects[i].Title = p.Title
	r.s.projects[i].Description = p.Description
	r.s.projects[i].EndDate = p.EndDate
	return nil
}

func (r projectRepo) Delete(_ context.Context, owner string, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.find(owner, id)
	if i < 0 {
		return common.ErrNotFound
	}
	r.s.projects = append(r.s.projects[:i], r.s.projects[i+1:]...)

	kept := r.s.comments[:0]
	for _, c := range r.s.comments {
		if c.ProjectID != id {
			kept = append(kept, c)
		}
	}
	r.s.comments = kept
	return nil
}

func (r projectRepo) find(owner string, id int64) int {
	for i, p := range r.s.projects {
		if p.ID == id && p.OwnerEmail == owner {
			return i
		}
	}
	return -1
}

type commentRepo struct{ s *store }

func (r commentRepo) Create(_ context.Context, c *models.ProjectComment) (*models.ProjectComment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	found := false
	for _, p := range r.s.projects {
		if p.ID == c.ProjectID {
			found = true
			break
		}
	}
	if !found || !r.s.hasUser(c.AuthorEmail) {
		return nil, errForeignKey
	}
	cp := *c
	cp.ID = r.s.id()
	r.s.comments = append(r.s.comments, &cp)
	c.ID = cp.ID
	return c, nil
}

// CommentCount reports how many comments are stored. Used by tests.
func (m *Manager) CommentCount() int {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return len(m.s.comments)
}

// UserCount reports how many users are stored. Used by tests.
func (m *Manager) UserCount() int {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return len(m.s.users)
}
