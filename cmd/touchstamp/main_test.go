package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	configPath, rootPath, debug, statusMaxAge = "", "", false, 0

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// quietConfig writes a config that keeps logs out of test output.
func quietConfig(t *testing.T, extra string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "touchstamp.toml")
	content := "[logging]\nlevel = \"error\"\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCommandStructure(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"version", "config", "heartbeat", "readme", "watch"} {
		assert.True(t, names[want], "missing command %s", want)
	}

	for _, flag := range []string{"config", "root", "debug"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}
	assert.NotNil(t, heartbeatStatusCmd.Flags().Lookup("max-age"))
}

func TestHeartbeatCommand(t *testing.T) {
	root := t.TempDir()
	cfg := quietConfig(t, "")

	out, err := execute(t, "heartbeat", "--root", root, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "[OK] wrote heartbeat: "+filepath.Join("meta", "logs", "heartbeat.log")+"\n", out)

	_, err = execute(t, "heartbeat", "-r", root, "-c", cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "meta", "logs", "heartbeat.log"))
	require.NoError(t, err)
	line := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \+0900 touched$`)
	lines := bytes.Split(bytes.TrimSuffix(data, []byte("\n")), []byte("\n"))
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Regexp(t, line, string(l))
	}
}

func TestHeartbeatStatusCommand(t *testing.T) {
	root := t.TempDir()
	cfg := quietConfig(t, "")

	out, err := execute(t, "heartbeat", "status", "--root", root, "--config", cfg)
	assert.ErrorIs(t, err, errHeartbeatMissing)
	assert.Contains(t, out, "[MISSING]")

	_, err = execute(t, "heartbeat", "--root", root, "--config", cfg)
	require.NoError(t, err)

	out, err = execute(t, "heartbeat", "status", "--root", root, "--config", cfg, "--max-age", "1h")
	require.NoError(t, err)
	assert.Contains(t, out, "Last heartbeat: ")
	assert.Contains(t, out, "Message: touched")

	stale := "2000-01-01 00:00:00 +0900 touched\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "meta", "logs", "heartbeat.log"), []byte(stale), 0644))
	out, err = execute(t, "heartbeat", "status", "--root", root, "--config", cfg, "--max-age", "1h")
	assert.ErrorIs(t, err, errHeartbeatStale)
	assert.Contains(t, out, "[STALE] heartbeat is older than 1h0m0s")
}

func TestReadmeCommand(t *testing.T) {
	root := t.TempDir()
	cfg := quietConfig(t, "")
	readmePath := filepath.Join(root, "README.md")
	require.NoError(t, os.WriteFile(readmePath, []byte("# Notes\nLast updated: never\n"), 0644))

	out, err := execute(t, "readme", "--root", root, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "[OK] updated timestamp: README.md\n", out)

	data, err := os.ReadFile(readmePath)
	require.NoError(t, err)
	assert.Regexp(t, `^# Notes\nLast updated: \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \+0900\n$`, string(data))
}

func TestReadmeCommand_Failures(t *testing.T) {
	root := t.TempDir()
	cfg := quietConfig(t, "")

	_, err := execute(t, "readme", "--root", root, "--config", cfg)
	assert.Error(t, err, "missing README must fail")

	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# Notes\n"), 0644))
	_, err = execute(t, "readme", "--root", root, "--config", cfg)
	assert.Error(t, err, "README without a stamp line must fail")
}

func TestConfigValidateCommand(t *testing.T) {
	valid := quietConfig(t, "[stamp]\nzone = \"UTC\"\n")
	out, err := execute(t, "config", "validate", valid)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	invalid := quietConfig(t, "[stamp]\nzone = \"X\"\noffset_hours = 15\n[readme]\ntemplate = \"static\"\n")
	out, err = execute(t, "config", "validate", invalid)
	assert.Error(t, err)
	assert.Contains(t, out, "2 error(s)")

	_, err = execute(t, "config", "validate", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestInvalidConfigRejectedByTouchCommands(t *testing.T) {
	cfg := quietConfig(t, "[schedule]\nheartbeat = \"sometimes\"\n")
	_, err := execute(t, "heartbeat", "--root", t.TempDir(), "--config", cfg)
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version: "+Version)
	assert.Contains(t, out, "Git Commit: "+GitCommit)
}

func TestReadmeCommand_NoMatchNamesPathOnce(t *testing.T) {
	root := t.TempDir()
	cfg := quietConfig(t, "")
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# Notes\n"), 0644))

	_, err := execute(t, "readme", "--root", root, "--config", cfg)
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), "README.md"), err.Error())
}
