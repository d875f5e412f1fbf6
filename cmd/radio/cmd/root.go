// Package cmd implements the radio CLI commands.
//
// The root command dispatches to run, validate and defaults. Configuration
// comes from an optional radio.yaml in the working directory or --config-dir.
package cmd

import (
	stderrors "errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/radio/cmd/radio/internal/config"
	"github.com/go-drift/radio/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type globalFlags struct {
	debug     bool
	configDir string
}

// Execute runs the CLI with os.Args. Failures are reported through the
// error handler configured by the root command.
func Execute() error {
	err := newRootCmd(os.Stdout, os.Stderr).Execute()
	if err != nil {
		errors.Report(asRadioError(err))
	}
	return err
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "radio",
		Short: "Radio - replay and inspect radio group scenarios",
		Long: `Radio replays scripted sessions against a radio group and prints the
group state after every step, failing when the selection invariants break.

Use "radio <command> --help" for more information about a command.`,
		Version:       Version + " (built " + BuildTime + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if flags.debug {
				level = slog.LevelDebug
			}
			errors.SetHandler(&errors.LogHandler{
				Logger:  slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
				Verbose: flags.debug,
			})
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable verbose logging with stack traces")
	cmd.PersistentFlags().StringVar(&flags.configDir, "config-dir", ".", "directory containing "+config.FileName)

	cmd.AddCommand(
		runCmd(&flags),
		validateCmd(),
		defaultsCmd(&flags),
	)
	return cmd
}

func (f *globalFlags) logger(stderr io.Writer) *slog.Logger {
	if !f.debug {
		return nil
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func asRadioError(err error) *errors.RadioError {
	var re *errors.RadioError
	if stderrors.As(err, &re) {
		return re
	}
	return errors.New("radio", errors.KindUnknown, err)
}
