// Package errlog collects non-fatal errors for the session. Isolated failures
// (a cue that fails to decode, a counter call that times out, a settings write
// hitting a full disk) are recorded here with an origin tag and surfaced only
// through the explicit copy-debug-info action — they never interrupt the user.
package errlog

import (
	"encoding/json"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Entry is one captured error.
type Entry struct {
	Origin  string    `json:"origin"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

const maxEntries = 200

type Log struct {
	mu      sync.Mutex
	entries []Entry
	sugar   *zap.SugaredLogger
}

// New creates a log. When GRIMOIRE_DEBUG_LOG names a file, entries are also
// appended there via zap for post-mortem debugging.
func New() *Log {
	l := &Log{}
	if path := strings.TrimSpace(os.Getenv("GRIMOIRE_DEBUG_LOG")); path != "" {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if zl, err := cfg.Build(); err == nil {
			l.sugar = zl.Sugar()
		}
	}
	return l
}

// Record captures err under an origin tag. Nil errors are ignored.
func (l *Log) Record(origin string, err error) {
	if l == nil || err == nil {
		return
	}
	l.mu.Lock()
	l.entries = append(l.entries, Entry{Origin: origin, Message: err.Error(), At: time.Now().UTC()})
	if len(l.entries) > maxEntries {
		l.entries = l.entries[len(l.entries)-maxEntries:]
	}
	sugar := l.sugar
	l.mu.Unlock()
	if sugar != nil {
		sugar.Errorw("captured", "origin", origin, "err", err.Error())
	}
}

// Entries returns a copy of the captured errors, oldest first.
func (l *Log) Entries() []Entry {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// DebugInfo renders a pretty JSON report for the copy-debug-info action.
// settings is included verbatim so support requests carry the user's state.
func (l *Log) DebugInfo(settings any) string {
	report := struct {
		Timestamp time.Time `json:"timestamp"`
		Settings  any       `json:"settings"`
		Errors    []Entry   `json:"errors"`
	}{
		Timestamp: time.Now().UTC(),
		Settings:  settings,
		Errors:    l.Entries(),
	}
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
