package main

import (
	"fmt"

	"github.com/rpgo/patrimoine/internal/config"
	"github.com/rpgo/patrimoine/internal/output"
	"github.com/spf13/cobra"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example <file>",
		Short: "Write a sample scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, args[0]); err != nil {
				return fmt.Errorf("failed to write example scenario: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example scenario written to %s\n", args[0])
			return nil
		},
	}
}
