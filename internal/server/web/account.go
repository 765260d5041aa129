package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/server/auth"
	"github.com/dmitrijs2005/tasktracker/internal/server/services"
	"github.com/gin-gonic/gin"
)

func (h *Handlers) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", page{})
}

func (h *Handlers) Login(c *gin.Context) {
	var f loginForm
	h.bind(c, &f)

	sess, err := h.users.Login(c.Request.Context(), f.Email, f.Password)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, common.ErrValidation):
			msg = msgFieldRequired
		case errors.Is(err, common.ErrInvalidEmail):
			msg = msgInvalidEmail
		case errors.Is(err, common.ErrUnauthorized):
			msg = msgInvalidCredentials
		default:
			h.fail(c, "login", err)
			return
		}
		c.HTML(http.StatusOK, "index.html", page{Message: msg, Email: f.Email})
		return
	}

	if err := auth.SaveSession(c, sess.Token, sess.User); err != nil {
		h.fail(c, "save session", err)
		return
	}
	h.logger(c).Info(c.Request.Context(), "user logged in", "email", sess.User.Email)
	c.Redirect(http.StatusFound, "/tasks")
}

func (h *Handlers) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", page{})
}

func (h *Handlers) Register(c *gin.Context) {
	var f registerForm
	h.bind(c, &f)

	_, err := h.users.Register(c.Request.Context(), services.RegisterInput{
		Name:     f.Name,
		Surnames: f.Surnames,
		Email:    f.Email,
		Password: f.Password,
	})
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, common.ErrPasswordTooLong):
			msg = msgPasswordTooLong
		case errors.Is(err, common.ErrTooLong):
			msg = msgFieldTooLong
		case errors.Is(err, common.ErrValidation):
			msg = msgFillAllFields
		case errors.Is(err, common.ErrInvalidEmail):
			msg = msgInvalidEmail
		case errors.Is(err, common.ErrAlreadyExists):
			msg = msgEmailTaken
		default:
			h.fail(c, "register", err)
			return
		}
		f.Password = ""
		c.HTML(http.StatusOK, "register.html", page{Message: msg, Form: f})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) Logout(c *gin.Context) {
	if err := auth.ClearSession(c); err != nil {
		h.fail(c, "clear session", err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
