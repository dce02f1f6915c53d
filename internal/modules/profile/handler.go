package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"timebank/internal/middleware"
	"timebank/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/profile", h.Get)
	r.PATCH("/profile", h.Update)
}

func (h *Handler) Get(c *gin.Context) {
	user, err := h.service.Get(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.Update(c.Request.Context(), middleware.SessionFrom(c), req)
	if err != nil {
		var formErr *FormError
		if errors.As(err, &formErr) {
			response.ValidationFailed(c, formErr.Errors)
			return
		}
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}
