package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/touchstamp/internal/constants"
)

var readmeCmd = &cobra.Command{
	Use:   "readme",
	Short: "Rewrite the last-updated line of the README",
	Long: `Replace the first line matching readme.pattern with readme.template,
where {stamp} expands to the current time. The command fails when no line
matches.`,
	Args: cobra.NoArgs,
	RunE: runReadme,
}

func runReadme(cmd *cobra.Command, args []string) error {
	a, _, err := setup()
	if err != nil {
		return err
	}

	result, err := a.TouchReadme(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", a.ReadmeRelPath(), err)
	}

	if result.Changed {
		fmt.Fprintf(cmd.OutOrStdout(), constants.MsgReadmeUpdated, result.RelPath)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), constants.MsgReadmeCurrent, result.RelPath)
	}
	return nil
}
