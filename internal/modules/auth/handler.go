package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"timebank/internal/middleware"
	"timebank/internal/pkg/response"
	"timebank/internal/pkg/session"
)

type Handler struct {
	service      *Service
	cookieSecure bool
}

func NewHandler(service *Service, cookieSecure bool) *Handler {
	return &Handler{service: service, cookieSecure: cookieSecure}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.POST("/auth/logout", h.Logout)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	session.SetCookie(c, res.Cookie, h.service.sessions.TTL(), h.cookieSecure)
	response.Success(c, http.StatusCreated, gin.H{"user": res.User})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	session.SetCookie(c, res.Cookie, h.service.sessions.TTL(), h.cookieSecure)
	response.Success(c, http.StatusOK, gin.H{"user": res.User})
}

// Logout always ends the local session, even when the backend call fails.
func (h *Handler) Logout(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess != nil {
		_ = h.service.Logout(c.Request.Context(), sess)
	}
	session.ClearCookie(c, h.cookieSecure)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}

func (h *Handler) fail(c *gin.Context, err error) {
	var formErr *FormError
	if errors.As(err, &formErr) {
		response.ValidationFailed(c, formErr.Errors)
		return
	}
	response.FromError(c, err)
}
