package services

import (
	"testing"

	"github.com/dmitrijs2005/tasktracker/internal/dbx"
	"github.com/dmitrijs2005/tasktracker/internal/server/auth"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/memory"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	repos    *memory.Manager
	issuer   *auth.Issuer
	users    *UserService
	tasks    *TaskService
	projects *ProjectService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	iss, err := auth.NewIssuer([]byte("test-secret"), 0)
	require.NoError(t, err)

	repos := memory.NewManager()
	runner := dbx.NopRunner{}
	return &fixture{
		repos:    repos,
		issuer:   iss,
		users:    NewUserService(runner, repos, iss).WithHashCost(bcrypt.MinCost),
		tasks:    NewTaskService(runner, repos),
		projects: NewProjectService(runner, repos),
	}
}
