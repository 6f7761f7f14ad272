package constants

// Target names used for scheduled jobs and metric labels.
const (
	TargetHeartbeat = "heartbeat"
	TargetReadme    = "readme"
)
