package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"crisis-alert-srv/config"
	"crisis-alert-srv/pkg/log"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const (
	// defaultConnectTimeout is the maximum time to wait for initial connection
	defaultConnectTimeout = 5 * time.Second
	// defaultMaxIdleConns is the maximum number of idle connections in the pool
	defaultMaxIdleConns = 10
	// defaultMaxOpenConns is the maximum number of open connections to the database
	defaultMaxOpenConns = 50
	// defaultConnMaxLifetime is the maximum amount of time a connection may be reused
	defaultConnMaxLifetime = 30 * time.Minute
	// defaultConnMaxIdleTime is the maximum amount of time a connection may be idle
	defaultConnMaxIdleTime = 5 * time.Minute
)

// DSN builds a lib/pq key/value connection string.
// Supported SSL modes: disable, require, verify-ca, verify-full.
func DSN(cfg config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, sslMode)
}

// Connect opens the risk event store and verifies it with a ping.
func Connect(ctx context.Context, l log.Logger, cfg config.PostgresConfig) (*sql.DB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	l.Infof(ctx, "config.postgre.Connect: connecting to %s:%d/%s", cfg.Host, cfg.Port, cfg.DBName)

	// Open database connection (does not actually connect yet)
	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetMaxOpenConns(defaultMaxOpenConns)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)
	db.SetConnMaxIdleTime(defaultConnMaxIdleTime)

	if err := db.PingContext(connectCtx); err != nil {
		// Close connection to prevent resource leak
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	l.Infof(ctx, "config.postgre.Connect: connected to %s:%d/%s", cfg.Host, cfg.Port, cfg.DBName)
	return db, nil
}

// Disconnect closes db. A nil db is a no-op.
func Disconnect(ctx context.Context, l log.Logger, db *sql.DB) error {
	if db == nil {
		return nil
	}
	if err := db.Close(); err != nil {
		l.Errorf(ctx, "config.postgre.Disconnect: %v", err)
		return fmt.Errorf("failed to close PostgreSQL connection: %w", err)
	}
	l.Info(ctx, "config.postgre.Disconnect: disconnected")
	return nil
}

// HealthCheck pings db.
func HealthCheck(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("PostgreSQL client not initialized")
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL health check failed: %w", err)
	}
	return nil
}
