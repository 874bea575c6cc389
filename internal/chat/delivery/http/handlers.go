package http

import (
	"crisis-alert-srv/pkg/locale"
	"crisis-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Chat handles one user message.
// @Summary Send a chat message
// @Description Scores the message for risk, alerts responders when needed and returns the reply.
// @Tags Chat
// @Accept json
// @Produce json
// @Param lang header string false "Response language (es, en)"
// @Param body body ChatReq true "Chat message"
// @Success 200 {object} response.Resp{data=ChatResp}
// @Failure 400 {object} response.Resp
// @Router /api/v1/chat [POST]
func (h *Handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Chat(ctx, req.toInput(locale.GetLang(ctx)))
	if err != nil {
		h.logger.Errorf(ctx, "internal.chat.delivery.http.Chat: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newChatResp(out))
}

// Assess scores a message without alerting anyone.
// @Summary Assess message risk
// @Tags Risk
// @Accept json
// @Produce json
// @Param body body AssessReq true "Message"
// @Success 200 {object} response.Resp{data=model.RiskAssessment}
// @Failure 400 {object} response.Resp
// @Router /api/v1/risk/assess [POST]
func (h *Handler) Assess(c *gin.Context) {
	var req AssessReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidBody)
		return
	}
	response.OK(c, h.uc.Assess(c.Request.Context(), req.Message))
}
