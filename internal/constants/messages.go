package constants

// Messages printed by the touchstamp CLI.

// Touch results
const (
	// MsgHeartbeatWritten reports the heartbeat log that received a line.
	MsgHeartbeatWritten = "[OK] wrote heartbeat: %s\n"

	// MsgReadmeUpdated reports the document whose stamp line was rewritten.
	MsgReadmeUpdated = "[OK] updated timestamp: %s\n"

	// MsgReadmeCurrent reports a document that already held the current stamp.
	MsgReadmeCurrent = "[OK] already current: %s\n"
)

// Heartbeat status
const (
	MsgStatusLast    = "Last heartbeat: %s (%s ago)\n"
	MsgStatusMessage = "Message: %s\n"
	MsgStatusStale   = "[STALE] heartbeat is older than %s\n"
	MsgStatusMissing = "[MISSING] no heartbeat recorded in %s\n"
)
