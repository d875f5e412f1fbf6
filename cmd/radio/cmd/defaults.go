package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/radio/cmd/radio/internal/config"
)

func defaultsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the resolved " + config.FileName,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := config.Resolve(flags.configDir)
			if err != nil {
				return err
			}
			out := config.Config{
				Version: res.Version,
				Defaults: config.DefaultsConfig{
					Color:         string(res.Defaults.Color),
					LabelPosition: string(res.LabelPosition),
				},
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(out); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
