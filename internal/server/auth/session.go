package auth

import (
	"net/http"

	"github.com/dmitrijs2005/tasktracker/internal/logging"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName = "tt_session"

	sessionKeyToken    = "token"
	sessionKeyEmail    = "email"
	sessionKeyName     = "name"
	sessionKeySurnames = "surnames"

	contextIdentityKey = "auth.identity"
)

// Identity is the authenticated caller as seen by handlers.
type Identity struct {
	Email    string
	Name     string
	Surnames string
}

// IdentityFrom returns the identity bound by RequireSession.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(contextIdentityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// SaveSession stores the token and profile of a freshly logged in user.
func SaveSession(c *gin.Context, token string, u *models.User) error {
	s := sessions.Default(c)
	s.Set(sessionKeyToken, token)
	s.Set(sessionKeyEmail, u.Email)
	s.Set(sessionKeyName, u.Name)
	s.Set(sessionKeySurnames, u.Surnames)
	return s.Save()
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}

// Gate guards routes that need a logged in user.
type Gate struct {
	issuer *Issuer
	log    logging.Logger
}

func NewGate(issuer *Issuer, log logging.Logger) *Gate {
	return &Gate{issuer: issuer, log: log}
}

// RequireSession redirects to "/" unless the session holds a token that
// verifies and names the same email as the session.
func (g *Gate) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)
		token, _ := s.Get(sessionKeyToken).(string)
		email, _ := s.Get(sessionKeyEmail).(string)

		if token == "" || email == "" {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		claimed, err := g.issuer.Parse(token)
		if err != nil || claimed != email {
			logging.FromGin(c, g.log).Warn(c.Request.Context(), "rejected session token", "email", email, "error", err)
			s.Clear()
			_ = s.Save()
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		name, _ := s.Get(sessionKeyName).(string)
		surnames, _ := s.Get(sessionKeySurnames).(string)
		c.Set(contextIdentityKey, Identity{Email: email, Name: name, Surnames: surnames})
		c.Next()
	}
}
