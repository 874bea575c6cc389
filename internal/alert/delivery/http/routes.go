package http

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	wh := r.Group("/webhook")
	{
		wh.POST("/alert-status", h.StatusCallback)
	}
}
