// Package web serves the tracker's HTML form interface over gin.
package web

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/tasktracker/internal/logging"
	"github.com/dmitrijs2005/tasktracker/internal/server/auth"
	"github.com/dmitrijs2005/tasktracker/internal/server/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Deps is everything the router needs from the application.
type Deps struct {
	Users    *services.UserService
	Tasks    *services.TaskService
	Projects *services.ProjectService
	Gate     *auth.Gate
	Logger   logging.Logger

	// Ping backs /health. Nil means always healthy.
	Ping func(context.Context) error

	SessionSecret []byte
	SecureCookies bool

	// LoginAttemptsPerMinute throttles POST /login and POST /register per
	// client IP. Zero disables throttling.
	LoginAttemptsPerMinute int
}

// NewRouter builds the gin engine with sessions, request logging, recovery
// and every route installed.
func NewRouter(d Deps) (*gin.Engine, error) {
	pages, err := loadPages()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.HTMLRender = pages

	store := cookie.NewStore(d.SessionSecret)
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   d.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	r.Use(
		logging.GinMiddleware(d.Logger),
		gin.Recovery(),
		sessions.Sessions(auth.SessionCookieName, store),
	)

	h := &Handlers{
		users:    d.Users,
		tasks:    d.Tasks,
		projects: d.Projects,
		ping:     d.Ping,
		log:      d.Logger,
	}

	loginGuard, registerGuard := gin.HandlerFunc(nop), gin.HandlerFunc(nop)
	if d.LoginAttemptsPerMinute > 0 {
		l := newClientLimiter(d.LoginAttemptsPerMinute)
		loginGuard, registerGuard = l.middleware("index.html"), l.middleware("register.html")
	}

	r.GET("/", h.Home)
	r.POST("/login", loginGuard, h.Login)
	r.GET("/register", h.RegisterForm)
	r.POST("/register", registerGuard, h.Register)
	r.GET("/logout", h.Logout)
	r.POST("/logout", h.Logout)
	r.GET("/health", h.Health)

	private := r.Group("/", d.Gate.RequireSession())
	private.GET("/tasks", h.Tasks)
	private.POST("/new-task", h.NewTask)
	private.POST("/delete-task", h.DeleteTask)
	private.GET("/edit-task/:id", h.EditTask)
	private.POST("/update-task", h.UpdateTask)
	private.GET("/projects", h.Projects)
	private.POST("/new-project", h.NewProject)
	private.POST("/delete-project", h.DeleteProject)
	private.GET("/edit-project/:id", h.EditProject)
	private.POST("/update-project", h.UpdateProject)
	private.POST("/new-project-comment", h.NewProjectComment)

	return r, nil
}

func nop(c *gin.Context) { c.Next() }
