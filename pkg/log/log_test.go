package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Init(ZapConfig{Level: LevelInfo, Mode: ModeProduction, Encoding: EncodingJSON, Output: &buf})

	l.Debugf(context.Background(), "hidden %d", 1)
	l.Infof(context.Background(), "visible %d", 2)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "visible 2", entry["MESSAGE"])
	assert.Equal(t, "info", entry["LEVEL"])
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := Init(ZapConfig{Level: LevelDebug, Mode: ModeProduction, Encoding: EncodingJSON, Output: &buf})

	ctx := l.WithFields(context.Background(), "user_id", "u-1")
	l.Warnf(ctx, "risk detected")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "u-1", entry["user_id"])
	assert.Equal(t, "risk detected", entry["MESSAGE"])
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	ctx := l.WithFields(context.Background(), "k", "v")
	assert.NotPanics(t, func() {
		l.Errorf(ctx, "ignored %s", "x")
	})
}
