package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/server/services"
	"github.com/gin-gonic/gin"
)

const tasksPath = "/tasks"

func (h *Handlers) Tasks(c *gin.Context) {
	id := identity(c)

	list, err := h.tasks.List(c.Request.Context(), id.Email)
	if err != nil {
		h.fail(c, "list tasks", err)
		return
	}
	c.HTML(http.StatusOK, "tasks.html", page{Identity: id, Tasks: list})
}

func (h *Handlers) NewTask(c *gin.Context) {
	var f taskForm
	h.bind(c, &f)

	_, err := h.tasks.Create(c.Request.Context(), identity(c).Email, services.TaskInput{
		Title:       f.Title,
		Description: f.Description,
	})
	if err != nil && !errors.Is(err, common.ErrValidation) {
		h.fail(c, "create task", err)
		return
	}
	c.Redirect(http.StatusFound, tasksPath)
}

func (h *Handlers) DeleteTask(c *gin.Context) {
	var f idForm
	h.bind(c, &f)

	if id, ok := services.ParseID(f.ID); ok {
		err := h.tasks.Delete(c.Request.Context(), identity(c).Email, id)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			h.fail(c, "delete task", err)
			return
		}
	}
	c.Redirect(http.StatusFound, tasksPath)
}

func (h *Handlers) EditTask(c *gin.Context) {
	id, ok := services.ParseID(c.Param("id"))
	if !ok {
		c.Redirect(http.StatusFound, tasksPath)
		return
	}

	ident := identity(c)
	task, err := h.tasks.Get(c.Request.Context(), ident.Email, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.Redirect(http.StatusFound, tasksPath)
			return
		}
		h.fail(c, "get task", err)
		return
	}
	c.HTML(http.StatusOK, "edit_task.html", page{Identity: ident, Task: task})
}

func (h *Handlers) UpdateTask(c *gin.Context) {
	var f taskForm
	h.bind(c, &f)

	if id, ok := services.ParseID(f.ID); ok {
		err := h.tasks.Update(c.Request.Context(), identity(c).Email, id, services.TaskInput{
			Title:       f.Title,
			Description: f.Description,
		})
		if err != nil && !errors.Is(err, common.ErrValidation) && !errors.Is(err, common.ErrNotFound) {
			h.fail(c, "update task", err)
			return
		}
	}
	c.Redirect(http.StatusFound, tasksPath)
}
