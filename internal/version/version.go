package version

import "fmt"

var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
	GoVersion = "unknown"
)

func SetInfo(v, bt, gc, gv string) {
	if v != "" {
		Version = v
	}
	if bt != "" {
		BuildTime = bt
	}
	if gc != "" {
		GitCommit = gc
	}
	if gv != "" {
		GoVersion = gv
	}
}

// FormatWatchBanner is logged once when watch mode starts.
func FormatWatchBanner() string {
	return fmt.Sprintf("touchstamp %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
