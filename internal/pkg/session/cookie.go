package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SetCookie installs the signed session value on the response.
func SetCookie(c *gin.Context, value string, ttl time.Duration, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

const secureKey = "session_cookie_secure"

// MarkSecure records on the request context whether session cookies are
// issued with the Secure attribute, so later replies can clear them the
// same way they were set.
func MarkSecure(c *gin.Context, secure bool) {
	c.Set(secureKey, secure)
}

// IsSecure reports the flag recorded by MarkSecure, defaulting to false.
func IsSecure(c *gin.Context) bool {
	return c.GetBool(secureKey)
}

// ClearCookie removes the session, used on logout and on detected auth
// failures before redirecting to the auth page.
func ClearCookie(c *gin.Context, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
