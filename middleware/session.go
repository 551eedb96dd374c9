package middleware

import (
	"github.com/gin-gonic/gin"

	"blissful-abodes/models"
	"blissful-abodes/services"
)

// SessionCookie is the cookie holding the opaque session token.
const SessionCookie = "session_token"

const sessionContextKey = "session"

// LoadSession resolves the session cookie into the request context. Missing
// or stale tokens are not an error here; role gates decide what to do.
func LoadSession(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			if session, fErr := sessions.Fetch(c.Request.Context(), token); fErr == nil {
				c.Set(sessionContextKey, session)
			}
		}
		c.Next()
	}
}

// CurrentSession returns the session loaded for this request, or nil.
func CurrentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	session, ok := v.(*models.Session)
	if !ok {
		return nil
	}
	return session
}
