package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blissful-abodes/services"
)

// Authorize is the access-control predicate: a session must exist and its
// role must equal the required role exactly. There is no hierarchy; admin
// does not satisfy a staff-only gate.
func Authorize(c *gin.Context, requiredRole string) bool {
	session := CurrentSession(c)
	return session != nil && session.Role == requiredRole
}

// RequireAuth redirects anonymous requests to /login.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole gates an endpoint on an exact role. Anonymous requests go to
// /login without disclosing whether the resource exists; authenticated
// requests with the wrong role bounce to /dashboard with a flash message.
func RequireRole(sessions *services.SessionService, role string, denied string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if session == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if session.Role != role {
			_ = sessions.Flash(c.Request.Context(), session.Token, "error", denied)
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
