package http

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) processChatRequest(c *gin.Context) (ChatReq, error) {
	var req ChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnf(c.Request.Context(), "internal.chat.delivery.http.processChatRequest: %v", err)
		return ChatReq{}, errInvalidBody
	}
	if err := req.validate(); err != nil {
		return ChatReq{}, err
	}
	return req, nil
}
