package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"timebank/internal/middleware"
	"timebank/internal/pkg/session"
	"timebank/internal/timebank"
)

// A session can outlive the backend token it wraps. When the backend
// rejects the token mid-session the reply must clear the cookie, or the
// client keeps replaying a dead session.
func TestDiscover_UpstreamAuthErrorClearsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	api := new(MockAPI)
	api.On("ListServices", mock.Anything, mock.Anything).
		Return(nil, &timebank.Error{Kind: timebank.KindAuth, Status: http.StatusUnauthorized, Message: "Invalid token."})

	sessions := session.NewManager("test-secret", time.Hour)
	cookie, err := sessions.Issue(session.Session{UserID: 5, Email: "lena@example.com", APIToken: "revoked"})
	require.NoError(t, err)

	r := gin.New()
	group := r.Group("/")
	group.Use(middleware.RequireSession(sessions, false))
	NewHandler(NewService(func(token string) API { return api })).RegisterRoutes(group)

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_EXPIRED")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}
