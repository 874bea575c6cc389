package http

import (
	"crisis-alert-srv/internal/model"
	"crisis-alert-srv/internal/riskevent"
)

type ListReq struct {
	UserID string `form:"user_id"`
	Level  string `form:"level"`
	Limit  int    `form:"limit"`
}

func (r ListReq) toInput() riskevent.ListInput {
	return riskevent.ListInput{UserID: r.UserID, Level: r.Level, Limit: r.Limit}
}

type ListResp struct {
	Events []model.RiskEvent `json:"events"`
	Count  int               `json:"count"`
}
