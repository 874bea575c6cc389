package http

import (
	"crisis-alert-srv/internal/alert"
	"crisis-alert-srv/pkg/log"
)

type Handler struct {
	uc     alert.UseCase
	logger log.Logger
}

func New(uc alert.UseCase, logger log.Logger) *Handler {
	return &Handler{uc: uc, logger: logger}
}
