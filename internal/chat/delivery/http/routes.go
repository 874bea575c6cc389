package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the chat and risk routes under the public API group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chat", h.Chat)

	rk := r.Group("/risk")
	{
		rk.POST("/assess", h.Assess)
	}
}
