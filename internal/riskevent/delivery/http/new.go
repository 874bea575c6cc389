package http

import (
	"crisis-alert-srv/internal/riskevent"
	"crisis-alert-srv/pkg/log"
)

type Handler struct {
	uc     riskevent.UseCase
	logger log.Logger
}

func New(uc riskevent.UseCase, logger log.Logger) *Handler {
	return &Handler{uc: uc, logger: logger}
}
