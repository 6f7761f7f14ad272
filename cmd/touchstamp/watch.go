package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run heartbeat and README touches on their cron schedules",
	Long: `Run the touches configured under [schedule] until interrupted.
Schedules are evaluated in the stamp time zone. When metrics.listen is set,
Prometheus metrics are served on metrics.path.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, _, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.Watch(ctx)
}
