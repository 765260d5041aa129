package web

import (
	"github.com/dmitrijs2005/tasktracker/internal/server/auth"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
)

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

type registerForm struct {
	Name     string `form:"name"`
	Surnames string `form:"surnames"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

type idForm struct {
	ID string `form:"id"`
}

type taskForm struct {
	ID          string `form:"id"`
	Title       string `form:"title"`
	Description string `form:"description"`
}

type projectForm struct {
	ID          string `form:"id"`
	Title       string `form:"title"`
	Description string `form:"description"`
	EndDate     string `form:"end_date"`
}

type commentForm struct {
	ProjectID string `form:"project_id"`
	Comment   string `form:"comment"`
}

// page is the data handed to every template.
type page struct {
	Identity *auth.Identity
	Message  string

	Email string
	Form  registerForm

	Tasks []*models.Task
	Task  *models.Task

	Projects []*models.Project
	Project  *models.Project
}

const (
	msgInvalidCredentials = "Invalid credentials."
	msgFieldRequired      = "This field is required."
	msgInvalidEmail       = "Invalid email format."
	msgFillAllFields      = "Please fill in all fields."
	msgEmailTaken         = "Email is already registered."
	msgFieldTooLong       = "One of the fields is too long."
	msgPasswordTooLong    = "Password must be at most 72 bytes."
)
