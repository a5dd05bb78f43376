package cmd

import (
	"fmt"

	"github.com/contre95/namer/src/features/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRulesCmd(a *app) *cobra.Command {
	var write string
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the effective naming rules as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if write != "" {
				return a.config.Save(write)
			}
			out, err := yaml.Marshal(struct {
				Rules config.Rules `yaml:"rules"`
			}{config.RulesFrom(a.config.Rules())})
			if err != nil {
				return fmt.Errorf("failed to encode rules: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&write, "write", "w", "", "write the full effective configuration to this file instead")
	return cmd
}
