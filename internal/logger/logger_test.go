package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithValidConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "json stdout",
			config: Config{Level: "debug", Format: "json", Output: "stdout"},
		},
		{
			name:   "text stderr",
			config: Config{Level: "info", Format: "text", Output: "stderr"},
		},
		{
			name:   "empty output means stderr",
			config: Config{Level: "info", Format: "text"},
		},
		{
			name:   "json file",
			config: Config{Level: "warn", Format: "json", Output: filepath.Join(t.TempDir(), "logs", "touchstamp.log")},
		},
		{
			name:    "invalid level",
			config:  Config{Level: "invalid", Format: "json", Output: "stdout"},
			wantErr: true,
		},
		{
			name:    "invalid format",
			config:  Config{Level: "debug", Format: "xml", Output: "stdout"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level string
		want  []string
		skip  []string
	}{
		{level: "debug", want: []string{"debug message", "info message", "warn message", "error message"}},
		{level: "info", want: []string{"info message", "warn message", "error message"}, skip: []string{"debug message"}},
		{level: "warn", want: []string{"warn message", "error message"}, skip: []string{"debug message", "info message"}},
		{level: "error", want: []string{"error message"}, skip: []string{"debug message", "info message", "warn message"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log, err := NewWithWriter(buf, Config{Level: tt.level, Format: "json"})
			require.NoError(t, err)

			log.Debug("debug message")
			log.Info("info message")
			log.Warn("warn message")
			log.Error("error message", nil)

			output := buf.String()
			for _, s := range tt.want {
				assert.Contains(t, output, s)
			}
			for _, s := range tt.skip {
				assert.NotContains(t, output, s)
			}
		})
	}
}

func TestLogger_ErrorField(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := NewWithWriter(buf, Config{Level: "debug", Format: "json"})
	require.NoError(t, err)

	log.Error("touch failed", errors.New("permission denied"), Field{Key: "target", Value: "heartbeat"})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "touch failed", record["msg"])
	assert.Equal(t, "permission denied", record["error"])
	assert.Equal(t, "heartbeat", record["target"])
}

func TestLogger_TextFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := NewWithWriter(buf, Config{Level: "info", Format: "text"})
	require.NoError(t, err)

	log.Info("test message", Field{Key: "path", Value: "README.md"})

	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), "path=README.md")
}

func TestLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := NewWithWriter(buf, Config{Level: "info", Format: "json"})
	require.NoError(t, err)

	log.With(Field{Key: "component", Value: "scheduler"}).Info("started")

	assert.Contains(t, buf.String(), `"component":"scheduler"`)
}

func TestLogger_WithRunID(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := NewWithWriter(buf, Config{Level: "info", Format: "json"})
	require.NoError(t, err)

	tagged, id := log.WithRunID()
	_, parseErr := uuid.Parse(id)
	require.NoError(t, parseErr)

	tagged.Info("first")
	tagged.Info("second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, id)
	}

	_, other := log.WithRunID()
	assert.NotEqual(t, id, other)
}

func TestValidLevelAndFormat(t *testing.T) {
	assert.True(t, ValidLevel("DEBUG"))
	assert.False(t, ValidLevel("trace"))
	assert.True(t, ValidFormat("json"))
	assert.False(t, ValidFormat("xml"))
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("ignored", errors.New("boom"))
	assert.NotNil(t, log.StdLogger())
}

func BenchmarkLogger_Info(b *testing.B) {
	log, _ := NewWithWriter(io.Discard, Config{Level: "info", Format: "json"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Info("benchmark info message", Field{Key: "iteration", Value: i})
	}
}
