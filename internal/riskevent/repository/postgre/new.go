package postgre

import (
	"database/sql"

	"crisis-alert-srv/internal/riskevent/repository"
	"crisis-alert-srv/pkg/log"
)

type implRepository struct {
	l  log.Logger
	db *sql.DB
}

func New(l log.Logger, db *sql.DB) repository.Repository {
	return &implRepository{l: l, db: db}
}
