package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/termhue/termhue/internal/scheme"
)

var exportCmd = &cobra.Command{
	Use:   "export NAME",
	Short: "Print a color scheme as YAML",
	Long: `Print the named color scheme as a YAML document on standard output,
for consumption by other tooling.

Examples:
  termhue export catppuccin_mocha
  termhue export gruvbox_dark > gruvbox_dark.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := scheme.Default().Lookup(args[0])
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("cannot encode scheme %q: %w", s.Name, err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
