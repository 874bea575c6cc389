package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"crisis-alert-srv/pkg/log"
	"crisis-alert-srv/pkg/log/logtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{name: "empty", url: "", wantErr: ErrURLRequired},
		{name: "blank", url: "   ", wantErr: ErrURLRequired},
		{name: "relative", url: "/webhook/crisis-alert", wantErr: ErrInvalidURL},
		{name: "unsupported scheme", url: "ftp://example.com/x", wantErr: ErrInvalidURL},
		{name: "valid", url: "https://hooks.example.com/webhook/crisis-alert"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New(log.NewNop(), Config{URL: tt.url})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, w)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.url, w.URL())
		})
	}
}

func TestPost_Success(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	w, err := New(log.NewNop(), Config{URL: srv.URL})
	require.NoError(t, err)
	defer w.Close()

	err = w.Post(context.Background(), map[string]any{"riskLevel": "HIGH", "score": 15})
	require.NoError(t, err)
	assert.Equal(t, "HIGH", got["riskLevel"])
	assert.EqualValues(t, 15, got["score"])
}

func TestPost_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow inactive", http.StatusNotFound)
	}))
	defer srv.Close()

	w, err := New(log.NewNop(), Config{URL: srv.URL})
	require.NoError(t, err)

	err = w.Post(context.Background(), map[string]string{"a": "b"})
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "workflow inactive")
}

func TestPost_RetriesThenSucceeds(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w, err := New(log.NewNop(), Config{URL: srv.URL, RetryCount: 2, RetryDelay: time.Millisecond})
	require.NoError(t, err)

	require.NoError(t, w.Post(context.Background(), struct{}{}))
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestPost_RetriesExhausted(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	rec := logtest.New()
	w, err := New(rec, Config{URL: srv.URL, RetryCount: 2, RetryDelay: time.Millisecond})
	require.NoError(t, err)

	err = w.Post(context.Background(), struct{}{})
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
	assert.True(t, rec.Contains("warn", "attempt 1 answered 503"))
}

func TestPost_ErrorBodyTruncated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(strings.Repeat("x", 2*maxErrorBodyLen)))
	}))
	defer srv.Close()

	w, err := New(log.NewNop(), Config{URL: srv.URL})
	require.NoError(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(w.Post(context.Background(), struct{}{}), &statusErr))
	assert.Len(t, statusErr.Body, maxErrorBodyLen)
}

func TestPost_SingleAttemptByDefault(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w, err := New(log.NewNop(), Config{URL: srv.URL})
	require.NoError(t, err)

	assert.Error(t, w.Post(context.Background(), struct{}{}))
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestPost_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	w, err := New(log.NewNop(), Config{URL: srv.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	start := time.Now()
	assert.Error(t, w.Post(context.Background(), struct{}{}))
	assert.Less(t, time.Since(start), time.Second)
}
