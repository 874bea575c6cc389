// Package logtest provides a log.Logger that records entries for assertions.
package logtest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"crisis-alert-srv/pkg/log"
)

// Entry is one recorded log call.
type Entry struct {
	Level   string
	Message string
}

// Recorder is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

var _ log.Logger = (*Recorder)(nil)

func New() *Recorder { return &Recorder{} }

func (r *Recorder) add(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg})
}

// Entries returns a copy of everything recorded at level, or at any level when level is "".
func (r *Recorder) Entries(level string) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if level == "" || e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Contains reports whether any entry at level contains substr.
func (r *Recorder) Contains(level, substr string) bool {
	for _, e := range r.Entries(level) {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func (r *Recorder) Debug(_ context.Context, arg ...any) { r.add("debug", fmt.Sprint(arg...)) }
func (r *Recorder) Debugf(_ context.Context, t string, arg ...any) {
	r.add("debug", fmt.Sprintf(t, arg...))
}
func (r *Recorder) Info(_ context.Context, arg ...any) { r.add("info", fmt.Sprint(arg...)) }
func (r *Recorder) Infof(_ context.Context, t string, arg ...any) {
	r.add("info", fmt.Sprintf(t, arg...))
}
func (r *Recorder) Warn(_ context.Context, arg ...any) { r.add("warn", fmt.Sprint(arg...)) }
func (r *Recorder) Warnf(_ context.Context, t string, arg ...any) {
	r.add("warn", fmt.Sprintf(t, arg...))
}
func (r *Recorder) Error(_ context.Context, arg ...any) { r.add("error", fmt.Sprint(arg...)) }
func (r *Recorder) Errorf(_ context.Context, t string, arg ...any) {
	r.add("error", fmt.Sprintf(t, arg...))
}
func (r *Recorder) Fatal(_ context.Context, arg ...any) { r.add("fatal", fmt.Sprint(arg...)) }
func (r *Recorder) Fatalf(_ context.Context, t string, arg ...any) {
	r.add("fatal", fmt.Sprintf(t, arg...))
}

func (r *Recorder) WithFields(ctx context.Context, _ ...any) context.Context { return ctx }
