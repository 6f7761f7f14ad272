package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetInfo(t *testing.T) {
	originalVersion, originalBuildTime, originalGitCommit, originalGoVersion := Version, BuildTime, GitCommit, GoVersion
	defer func() {
		Version, BuildTime, GitCommit, GoVersion = originalVersion, originalBuildTime, originalGitCommit, originalGoVersion
	}()

	SetInfo("1.0.0", "2024-01-01T00:00:00Z", "abc123", "go1.26")

	assert.Equal(t, "1.0.0", Version)
	assert.Equal(t, "2024-01-01T00:00:00Z", BuildTime)
	assert.Equal(t, "abc123", GitCommit)
	assert.Equal(t, "go1.26", GoVersion)
}

func TestSetInfoEmptyValues(t *testing.T) {
	originalVersion := Version
	defer func() { Version = originalVersion }()

	Version = "test-version"
	SetInfo("", "", "", "")

	assert.Equal(t, "test-version", Version)
}

func TestFormatWatchBanner(t *testing.T) {
	originalVersion, originalGitCommit := Version, GitCommit
	defer func() { Version, GitCommit = originalVersion, originalGitCommit }()

	Version = "1.2.3"
	GitCommit = "deadbee"

	assert.Equal(t, "touchstamp 1.2.3 (commit deadbee, built "+BuildTime+")", FormatWatchBanner())
}
