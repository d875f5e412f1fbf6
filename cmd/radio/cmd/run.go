package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-drift/radio/cmd/radio/internal/config"
	"github.com/go-drift/radio/cmd/radio/internal/scenario"
	"github.com/go-drift/radio/pkg/errors"
)

func runCmd(flags *globalFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Replay a scenario and print the group after every step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "pretty" && format != "json" {
				return &errors.ValidationError{Field: "--format", Got: format, Reason: "want pretty or json"}
			}

			cfg, err := config.Resolve(flags.configDir)
			if err != nil {
				return err
			}

			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			runner := &scenario.Runner{
				Defaults:      cfg.Defaults,
				LabelPosition: cfg.LabelPosition,
				Logger:        flags.logger(cmd.ErrOrStderr()),
			}
			res, runErr := runner.Run(cmd.Context(), s)
			if err := printResult(cmd.OutOrStdout(), res, format); err != nil {
				return err
			}
			return runErr
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printResult(w io.Writer, res *scenario.Result, format string) error {
	if res == nil {
		return nil
	}
	switch format {
	case "json":
		payload := map[string]any{
			"name":        res.Scenario.Name,
			"initial":     res.Initial.Snapshot,
			"steps":       jsonSteps(res),
			"groupEvents": res.GroupEvents,
			"formValues":  res.FormValues,
			"touches":     res.Touches,
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		_, err := fmt.Fprint(w, renderResult(DefaultTheme(), res))
		return err
	}
}

func jsonSteps(res *scenario.Result) []map[string]any {
	out := make([]map[string]any, 0, len(res.Steps))
	for _, sr := range res.Steps {
		out = append(out, map[string]any{
			"index":        sr.Index,
			"op":           sr.Step.String(),
			"ids":          sr.IDs,
			"state":        sr.Snapshot,
			"groupEvents":  sr.GroupEvents,
			"buttonEvents": sr.ButtonEvents,
		})
	}
	return out
}
