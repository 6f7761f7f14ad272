// Package heartbeat maintains an append-only heartbeat log. Every touch
// appends one "<stamp> <message>" line, so the newest line tells when the
// repository was last touched.
package heartbeat

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aatumaykin/touchstamp/internal/logger"
	"github.com/aatumaykin/touchstamp/internal/repo"
	"github.com/aatumaykin/touchstamp/internal/timestamp"
)

const (
	// DefaultPath is the heartbeat log location relative to the repository root.
	DefaultPath = "meta/logs/heartbeat.log"
	// DefaultMessage follows the stamp on every line.
	DefaultMessage = "touched"
)

// Result describes a completed touch.
type Result struct {
	Path    string    // Absolute path of the log
	RelPath string    // Path relative to the repository root
	Line    string    // Line written, without the trailing newline
	At      time.Time // Time that was stamped
}

// Writer appends heartbeat lines.
type Writer struct {
	root    string
	path    string
	message string
	stamper *timestamp.Stamper
	logger  *logger.Logger
}

// NewWriter creates a heartbeat writer for the log at path (relative to root
// unless absolute).
func NewWriter(root, path, message string, stamper *timestamp.Stamper, log *logger.Logger) *Writer {
	if path == "" {
		path = DefaultPath
	}
	if message == "" {
		message = DefaultMessage
	}
	return &Writer{
		root:    root,
		path:    path,
		message: message,
		stamper: stamper,
		logger:  log,
	}
}

// Path returns the absolute path of the heartbeat log.
func (w *Writer) Path() string {
	return repo.Resolve(w.root, w.path)
}

// Touch appends a single heartbeat line, creating the log and its parent
// directories when missing.
func (w *Writer) Touch(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	path := w.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return Result{}, fmt.Errorf("failed to create log directory: %w", err)
	}

	at := w.stamper.Now()
	line := FormatLine(w.stamper.Format(at), w.message)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open heartbeat log: %w", err)
	}
	if _, err := file.WriteString(line + "\n"); err != nil {
		file.Close()
		return Result{}, fmt.Errorf("failed to write heartbeat: %w", err)
	}
	if err := file.Close(); err != nil {
		return Result{}, fmt.Errorf("failed to close heartbeat log: %w", err)
	}

	result := Result{
		Path:    path,
		RelPath: repo.Rel(w.root, path),
		Line:    line,
		At:      at,
	}

	w.logger.Debug("heartbeat written",
		logger.Field{Key: "path", Value: result.RelPath},
		logger.Field{Key: "line", Value: line})

	return result, nil
}

// FormatLine joins a stamp and a message into a heartbeat line.
func FormatLine(stamp, message string) string {
	return stamp + " " + message
}
