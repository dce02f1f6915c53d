package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timebank/internal/pkg/session"
)

const sessionKey = "session"

// RequireSession guards the logged-in routes: it parses the session cookie
// and puts the session on the context. A missing or expired session clears
// the cookie and answers 401 so the client returns to /auth.
func RequireSession(sessions *session.Manager, cookieSecure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil || cookie == "" {
			abortUnauthenticated(c, cookieSecure)
			return
		}

		sess, err := sessions.Parse(cookie)
		if err != nil {
			abortUnauthenticated(c, cookieSecure)
			return
		}

		c.Set(sessionKey, sess)
		c.Set("user_id", sess.UserID)
		session.MarkSecure(c, cookieSecure)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, cookieSecure bool) {
	session.ClearCookie(c, cookieSecure)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "SESSION_EXPIRED",
			"message": "Session expired. Please log in again.",
		},
	})
}

// SessionFrom returns the session installed by RequireSession.
func SessionFrom(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
