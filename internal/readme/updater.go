// Package readme rewrites the timestamp line of a document in place.
package readme

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wasilibs/go-re2"

	"github.com/aatumaykin/touchstamp/internal/logger"
	"github.com/aatumaykin/touchstamp/internal/repo"
	"github.com/aatumaykin/touchstamp/internal/timestamp"
)

const (
	// DefaultPath is the document location relative to the repository root.
	DefaultPath = "README.md"
	// DefaultPattern matches the line that carries the stamp.
	DefaultPattern = `(?m)^Last updated:[^\r\n]*`
	// DefaultTemplate is written in place of the matched line.
	DefaultTemplate = "Last updated: " + Placeholder
	// Placeholder is replaced with the stamp inside a template.
	Placeholder = "{stamp}"
)

// ErrNoMatch is returned when the document has no line matching the pattern.
var ErrNoMatch = errors.New("no line matches the stamp pattern")

// Result describes a completed update.
type Result struct {
	Path    string
	RelPath string
	Line    string // Replacement text that is now in the document
	Changed bool   // False when the document already held Line
	At      time.Time
}

// Updater replaces the first pattern match in a document with a stamped
// template.
type Updater struct {
	root     string
	path     string
	pattern  *re2.Regexp
	template string
	stamper  *timestamp.Stamper
	logger   *logger.Logger
}

// NewUpdater compiles pattern and returns an Updater for the document at
// path (relative to root unless absolute).
func NewUpdater(root, path, pattern, template string, stamper *timestamp.Stamper, log *logger.Logger) (*Updater, error) {
	if path == "" {
		path = DefaultPath
	}
	if pattern == "" {
		pattern = DefaultPattern
	}
	if template == "" {
		template = DefaultTemplate
	}

	re, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}

	return &Updater{
		root:     root,
		path:     path,
		pattern:  re,
		template: template,
		stamper:  stamper,
		logger:   log,
	}, nil
}

// CompilePattern compiles a stamp pattern with RE2 syntax.
func CompilePattern(pattern string) (*re2.Regexp, error) {
	re, err := re2.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid stamp pattern %q: %w", pattern, err)
	}
	return re, nil
}

// Path returns the absolute path of the document.
func (u *Updater) Path() string {
	return repo.Resolve(u.root, u.path)
}

// Update stamps the document. Only the first match is replaced.
func (u *Updater) Update(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	path := u.Path()
	// A symlinked document is rewritten at its target so the link survives.
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve document: %w", err)
	}
	info, err := os.Stat(target)
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat document: %w", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read document: %w", err)
	}

	at := u.stamper.Now()
	line := Render(u.template, u.stamper.Format(at))

	updated, err := ReplaceFirst(string(data), u.pattern, line)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Path:    path,
		RelPath: repo.Rel(u.root, path),
		Line:    line,
		At:      at,
	}

	if updated == string(data) {
		u.logger.Debug("document already current", logger.Field{Key: "path", Value: result.RelPath})
		return result, nil
	}

	if err := writeFileAtomic(target, []byte(updated), info.Mode().Perm()); err != nil {
		return Result{}, err
	}
	result.Changed = true

	u.logger.Debug("document stamped",
		logger.Field{Key: "path", Value: result.RelPath},
		logger.Field{Key: "line", Value: line})

	return result, nil
}

// Render expands the stamp placeholder in template.
func Render(template, stamp string) string {
	return strings.ReplaceAll(template, Placeholder, stamp)
}

// ReplaceFirst substitutes replacement for the first match of re in content.
// The replacement is literal; '$' carries no special meaning.
func ReplaceFirst(content string, re *re2.Regexp, replacement string) (string, error) {
	loc := re.FindStringIndex(content)
	if loc == nil {
		return "", ErrNoMatch
	}
	return content[:loc[0]] + replacement + content[loc[1]:], nil
}
