package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/radio/cmd/radio/internal/scenario"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenario.yaml>...",
		Short: "Validate scenarios without replaying them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				s, err := scenario.Load(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "OK  %s (%d button(s), %d step(s))\n", path, len(s.Buttons), len(s.Steps))
			}
			return nil
		},
	}
}
