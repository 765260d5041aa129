package web

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/tasktracker/internal/logging"
	"github.com/dmitrijs2005/tasktracker/internal/server/auth"
	"github.com/dmitrijs2005/tasktracker/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type Handlers struct {
	users    *services.UserService
	tasks    *services.TaskService
	projects *services.ProjectService
	ping     func(context.Context) error
	log      logging.Logger
}

// bind fills a form struct from the request body. Missing keys stay empty.
func (h *Handlers) bind(c *gin.Context, dst any) {
	if err := c.ShouldBindWith(dst, binding.Form); err != nil {
		h.logger(c).Debug(c.Request.Context(), "form binding", "error", err)
	}
}

func (h *Handlers) logger(c *gin.Context) logging.Logger {
	return logging.FromGin(c, h.log)
}

// fail answers an unexpected error with a bare 500.
func (h *Handlers) fail(c *gin.Context, op string, err error) {
	h.logger(c).Error(c.Request.Context(), op, "error", err)
	c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	c.Abort()
}

func identity(c *gin.Context) *auth.Identity {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		return nil
	}
	return &id
}

func (h *Handlers) Health(c *gin.Context) {
	if h.ping != nil {
		if err := h.ping(c.Request.Context()); err != nil {
			h.logger(c).Warn(c.Request.Context(), "health check", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
