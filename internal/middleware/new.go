package middleware

import (
	"crisis-alert-srv/pkg/log"
)

type Middleware struct {
	l           log.Logger
	internalKey string
}

// New builds the shared middleware set. An empty internalKey makes every
// internal route reject its callers.
func New(l log.Logger, internalKey string) Middleware {
	return Middleware{
		l:           l,
		internalKey: internalKey,
	}
}
