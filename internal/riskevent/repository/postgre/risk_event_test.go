package postgre

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"crisis-alert-srv/internal/model"
	"crisis-alert-srv/internal/riskevent/repository"
	"crisis-alert-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, repository.Repository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock, New(log.NewNop(), db)
}

func TestInsert_Success(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	id := uuid.New().String()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	e := model.RiskEvent{
		ID:             id,
		UserID:         "user-1",
		Level:          model.RiskLevelCritical,
		Score:          30,
		Triggers:       []string{"morir", "quiero morirme"},
		Delivered:      true,
		PrimaryOK:      false,
		SecondaryOK:    true,
		LexiconVersion: "1.0.0",
		SessionID:      "sess-1",
		CreatedAt:      now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO risk_events")).
		WithArgs(id, "user-1", "CRITICAL", 30, []byte(`["morir","quiero morirme"]`),
			true, false, true, "1.0.0", nil, "sess-1", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Insert(context.Background(), e))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_NilTriggersStoredAsEmptyArray(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO risk_events")).
		WithArgs(sqlmock.AnyArg(), "user-1", "MEDIUM", 8, []byte(`[]`),
			false, false, false, "1.0.0", nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), model.RiskEvent{
		ID: uuid.New().String(), UserID: "user-1", Level: model.RiskLevelMedium, Score: 8,
		LexiconVersion: "1.0.0", CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_Error(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO risk_events")).
		WillReturnError(errors.New("connection refused"))

	err := repo.Insert(context.Background(), model.RiskEvent{ID: uuid.New().String(), UserID: "u", Level: model.RiskLevelHigh})
	assert.EqualError(t, err, "connection refused")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_WithFilters(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "risk_level", "score", "triggers", "delivered", "primary_ok", "secondary_ok",
		"lexicon_version", "user_email", "session_id", "created_at",
	}).AddRow(
		"e1", "user-1", "HIGH", 15, []byte(`["suicidio","no puedo más"]`), true, true, false,
		"1.0.0", nil, "sess-1", created,
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM risk_events WHERE user_id = $1 AND risk_level = $2 ORDER BY created_at DESC LIMIT $3")).
		WithArgs("user-1", "HIGH", 50).
		WillReturnRows(rows)

	events, err := repo.List(context.Background(), repository.ListOptions{UserID: "user-1", Level: "HIGH", Limit: 50})
	require.NoError(t, err)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "e1", e.ID)
	assert.Equal(t, model.RiskLevelHigh, e.Level)
	assert.Equal(t, []string{"suicidio", "no puedo más"}, e.Triggers)
	assert.True(t, e.PrimaryOK)
	assert.False(t, e.SecondaryOK)
	assert.Empty(t, e.UserEmail)
	assert.Equal(t, "sess-1", e.SessionID)
	assert.Equal(t, created, e.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_NoFilters(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM risk_events ORDER BY created_at DESC LIMIT $1")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	events, err := repo.List(context.Background(), repository.ListOptions{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, events)
	require.NoError(t, mock.ExpectationsWereMet())
}
