// Package home serves the public landing view: no session required, no
// backend calls, just the static vocabulary the signup and discovery forms
// are built from.
package home

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timebank/internal/domain"
	"timebank/internal/pkg/response"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Landing)
}

func (h *Handler) Landing(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"name":       "TimeBank",
		"tagline":    "Trade time, not money: one credit is one hour of service.",
		"categories": domain.Categories,
		"service_types": []string{
			string(domain.ServiceInPerson),
			string(domain.ServiceVirtual),
		},
	})
}
