package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timebank/internal/pkg/session"
)

func protectedRouter(t *testing.T, sessions *session.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequireSession(sessions, false))
	router.GET("/protected", func(c *gin.Context) {
		sess := SessionFrom(c)
		require.NotNil(t, sess)
		c.JSON(http.StatusOK, gin.H{
			"user_id": sess.UserID,
			"email":   sess.Email,
		})
	})
	return router
}

func TestRequireSession_ValidCookie(t *testing.T) {
	sessions := session.NewManager("test-secret", time.Hour)
	value, err := sessions.Issue(session.Session{UserID: 42, Email: "amina@example.com", APIToken: "t"})
	require.NoError(t, err)

	router := protectedRouter(t, sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: value})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "amina@example.com")
}

func TestRequireSession_MissingCookie(t *testing.T) {
	sessions := session.NewManager("test-secret", time.Hour)
	router := protectedRouter(t, sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_EXPIRED")
}

func TestRequireSession_ExpiredCookieIsCleared(t *testing.T) {
	expired := session.NewManager("test-secret", -time.Minute)
	value, err := expired.Issue(session.Session{UserID: 42, APIToken: "t"})
	require.NoError(t, err)

	router := protectedRouter(t, session.NewManager("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: value})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// the stale cookie is dropped so the client returns to /auth cleanly
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
