package constants

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTouchMessagesFormat(t *testing.T) {
	assert.Equal(t, "[OK] wrote heartbeat: meta/logs/heartbeat.log\n", fmt.Sprintf(MsgHeartbeatWritten, "meta/logs/heartbeat.log"))
	assert.Equal(t, "[OK] updated timestamp: README.md\n", fmt.Sprintf(MsgReadmeUpdated, "README.md"))
}

func TestMessagesEndWithNewline(t *testing.T) {
	for _, msg := range []string{
		MsgHeartbeatWritten, MsgReadmeUpdated, MsgReadmeCurrent,
		MsgStatusLast, MsgStatusMessage, MsgStatusStale, MsgStatusMissing,
	} {
		assert.True(t, strings.HasSuffix(msg, "\n"), "message %q should end with a newline", msg)
	}
}
