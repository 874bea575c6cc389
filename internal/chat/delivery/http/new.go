package http

import (
	"crisis-alert-srv/internal/chat"
	"crisis-alert-srv/pkg/log"
)

type Handler struct {
	uc     chat.UseCase
	logger log.Logger
}

func New(uc chat.UseCase, logger log.Logger) *Handler {
	return &Handler{
		uc:     uc,
		logger: logger,
	}
}
