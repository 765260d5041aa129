package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/server/services"
	"github.com/gin-gonic/gin"
)

const projectsPath = "/projects"

func (h *Handlers) Projects(c *gin.Context) {
	id := identity(c)

	list, err := h.projects.List(c.Request.Context(), id.Email)
	if err != nil {
		h.fail(c, "list projects", err)
		return
	}
	c.HTML(http.StatusOK, "projects.html", page{Identity: id, Projects: list})
}

func (h *Handlers) NewProject(c *gin.Context) {
	var f projectForm
	h.bind(c, &f)

	_, err := h.projects.Create(c.Request.Context(), identity(c).Email, services.ProjectInput{
		Title:       f.Title,
		Description: f.Description,
		EndDate:     f.EndDate,
	})
	if err != nil && !errors.Is(err, common.ErrValidation) {
		h.fail(c, "create project", err)
		return
	}
	c.Redirect(http.StatusFound, projectsPath)
}

func (h *Handlers) DeleteProject(c *gin.Context) {
	var f idForm
	h.bind(c, &f)

	if id, ok := services.ParseID(f.ID); ok {
		err := h.projects.Delete(c.Request.Context(), identity(c).Email, id)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			h.fail(c, "delete project", err)
			return
		}
	}
	c.Redirect(http.StatusFound, projectsPath)
}

func (h *Handlers) EditProject(c *gin.Context) {
	id, ok := services.ParseID(c.Param("id"))
	if !ok {
		c.Redirect(http.StatusFound, projectsPath)
		return
	}

	ident := identity(c)
	p, err := h.projects.Get(c.Request.Context(), ident.Email, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.Redirect(http.StatusFound, projectsPath)
			return
		}
		h.fail(c, "get project", err)
		return
	}
	c.HTML(http.StatusOK, "edit_project.html", page{Identity: ident, Project: p})
}

func (h *Handlers) UpdateProject(c *gin.Context) {
	var f projectForm
	h.bind(c, &f)

	if id, ok := services.ParseID(f.ID); ok {
		err := h.projects.Update(c.Request.Context(), identity(c).Email, id, services.ProjectInput{
			Title:       f.Title,
			Description: f.Description,
			EndDate:     f.EndDate,
		})
		if err != nil && !errors.Is(err, common.ErrValidation) && !errors.Is(err, common.ErrNotFound) {
			h.fail(c, "update project", err)
			return
		}
	}
	c.Redirect(http.StatusFound, projectsPath)
}

func (h *Handlers) NewProjectComment(c *gin.Context) {
	var f commentForm
	h.bind(c, &f)

	if id, ok := services.ParseID(f.ProjectID); ok {
		_, err := h.projects.AddComment(c.Request.Context(), identity(c).Email, id, f.Comment)
		if err != nil && !errors.Is(err, common.ErrValidation) && !errors.Is(err, common.ErrNotFound) {
			h.fail(c, "add comment", err)
			return
		}
	}
	c.Redirect(http.StatusFound, projectsPath)
}
