package dashboard

import (
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
	r.GET("/dashboard", h.Show)
}

func (h *Handler) Show(c *gin.Context) {
	tab := ParseTab(c.Query("tab"))

	view, err := h.service.Load(c.Request.Context(), middleware.SessionFrom(c), tab)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}
