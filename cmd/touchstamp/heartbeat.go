package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/touchstamp/internal/constants"
)

var statusMaxAge time.Duration

var heartbeatCmd = &cobra.Command{
	Use:   "heartbeat",
	Short: "Append a heartbeat line to the heartbeat log",
	Args:  cobra.NoArgs,
	RunE:  runHeartbeat,
}

var heartbeatStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the last heartbeat and fail if it is stale",
	Args:  cobra.NoArgs,
	RunE:  runHeartbeatStatus,
}

var (
	errHeartbeatStale   = errors.New("heartbeat is stale")
	errHeartbeatMissing = errors.New("heartbeat is missing")
)

func runHeartbeat(cmd *cobra.Command, args []string) error {
	a, _, err := setup()
	if err != nil {
		return err
	}

	result, err := a.TouchHeartbeat(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to write heartbeat: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), constants.MsgHeartbeatWritten, result.RelPath)
	return nil
}

func runHeartbeatStatus(cmd *cobra.Command, args []string) error {
	a, _, err := setup()
	if err != nil {
		return err
	}

	status, err := a.HeartbeatStatus(statusMaxAge)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !status.Found {
		fmt.Fprintf(out, constants.MsgStatusMissing, a.HeartbeatRelPath())
		return errHeartbeatMissing
	}

	stamper := a.Stamper()
	fmt.Fprintf(out, constants.MsgStatusLast, stamper.Format(status.Entry.At), status.Age.Round(time.Second))
	if status.Entry.Message != "" {
		fmt.Fprintf(out, constants.MsgStatusMessage, status.Entry.Message)
	}
	if status.Stale {
		fmt.Fprintf(out, constants.MsgStatusStale, status.MaxAge)
		return errHeartbeatStale
	}
	return nil
}

func init() {
	heartbeatStatusCmd.Flags().DurationVar(&statusMaxAge, "max-age", 0, "Maximum heartbeat age before it counts as stale (overrides heartbeat.max_age)")
	heartbeatCmd.AddCommand(heartbeatStatusCmd)
}
