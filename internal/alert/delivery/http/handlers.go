package http

import (
	"crisis-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// StatusCallback receives progress reports from the alert workflow engine.
// @Summary Alert workflow callback
// @Tags Internal
// @Accept json
// @Produce json
// @Param X-Internal-Key header string true "Internal key"
// @Param body body StatusCallbackReq true "Callback"
// @Success 200 {object} response.Resp{data=StatusCallbackResp}
// @Failure 400 {object} response.Resp
// @Router /internal/api/v1/webhook/alert-status [POST]
func (h *Handler) StatusCallback(c *gin.Context) {
	var req StatusCallbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidBody)
		return
	}

	if err := h.uc.AcknowledgeStatus(c.Request.Context(), req.toInput()); err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}
	response.OK(c, StatusCallbackResp{Success: true})
}
