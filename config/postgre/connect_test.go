package postgre

import (
	"context"
	"testing"

	"crisis-alert-srv/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := config.PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "crisis"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=crisis sslmode=disable", DSN(cfg))

	cfg.SSLMode = "require"
	assert.Contains(t, DSN(cfg), "sslmode=require")
}

func TestHealthCheck(t *testing.T) {
	assert.Error(t, HealthCheck(context.Background(), nil))

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	assert.NoError(t, HealthCheck(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
