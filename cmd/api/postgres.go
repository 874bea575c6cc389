package main

import (
	"context"
	"database/sql"

	"crisis-alert-srv/config"
	"crisis-alert-srv/config/postgre"
	"crisis-alert-srv/pkg/log"
)

// connectPostgres returns a nil db without error when the store is disabled.
func connectPostgres(ctx context.Context, l log.Logger, cfg config.PostgresConfig) (*sql.DB, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	return postgre.Connect(ctx, l, cfg)
}
