package http

import (
	"crisis-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// List returns recorded risk events, newest first.
// @Summary List risk events
// @Tags Internal
// @Produce json
// @Param X-Internal-Key header string true "Internal key"
// @Param user_id query string false "Filter by user"
// @Param level query string false "Filter by level (LOW, MEDIUM, HIGH, CRITICAL)"
// @Param limit query int false "Page size, default 50, max 200"
// @Success 200 {object} response.Resp{data=ListResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /internal/api/v1/risk-events [GET]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req ListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, errInvalidQuery)
		return
	}

	events, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.logger.Warnf(ctx, "internal.riskevent.delivery.http.List: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, ListResp{Events: events, Count: len(events)})
}
