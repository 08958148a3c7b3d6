// termhue sets the current terminal to a named color scheme, or lists
// and previews the built-in schemes.
//
// Usage:
//
//	termhue -c NAME          - Set the terminal to scheme NAME
//	termhue -e PATTERN       - Preview schemes whose name matches PATTERN
//	termhue -l               - List all scheme names
//	termhue -s               - Preview every scheme
//	termhue browse           - Interactive scheme browser
//	termhue export NAME      - Print scheme NAME as YAML
//	termhue serve            - Serve the browser over SSH
package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/termhue/termhue/internal/ansi"
	"github.com/termhue/termhue/internal/preview"
	"github.com/termhue/termhue/internal/scheme"
)

var (
	flagScheme  string
	flagPattern string
	flagList    bool
	flagShow    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termhue",
	Short: "Set terminal to the specified color scheme or list/show color schemes",
	Long: `termhue re-programs the terminal's 16-color palette and default
foreground/background by emitting the corresponding control sequences.

The four actions below are mutually exclusive. Running termhue with no
arguments prints this help.

Examples:
  termhue -c catppuccin_mocha
  termhue -e dark
  termhue -l
  termhue -s`,
	RunE: runRoot,
}

func init() {
	rootCmd.Flags().StringVarP(&flagScheme, "color-scheme", "c", "", "set the current terminal to the named color scheme")
	rootCmd.Flags().StringVarP(&flagPattern, "regexp", "e", "", "show color palettes for schemes matching the pattern")
	rootCmd.Flags().BoolVarP(&flagList, "list", "l", false, "list all color schemes")
	rootCmd.Flags().BoolVarP(&flagShow, "show", "s", false, "show color palettes for all color schemes")
	rootCmd.MarkFlagsMutuallyExclusive("color-scheme", "regexp", "list", "show")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
}

// action is the single operation selected by the root flags.
type action int

const (
	actionHelp action = iota
	actionSet
	actionSearch
	actionList
	actionShow
)

// resolveAction maps the flag set to exactly one action; exclusivity
// is already enforced by cobra, no-flags resolves to help.
func resolveAction(cmd *cobra.Command) action {
	switch {
	case cmd.Flags().Changed("color-scheme"):
		return actionSet
	case cmd.Flags().Changed("regexp"):
		return actionSearch
	case flagList:
		return actionList
	case flagShow:
		return actionShow
	default:
		return actionHelp
	}
}

func runRoot(cmd *cobra.Command, _ []string) error {
	registry := scheme.Default()
	out := cmd.OutOrStdout()

	switch resolveAction(cmd) {
	case actionSet:
		s, err := registry.Lookup(flagScheme)
		if err != nil {
			return err
		}
		return ansi.Apply(out, s)

	case actionSearch:
		re, err := regexp.Compile(flagPattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %w", flagPattern, err)
		}
		return preview.WriteBlocks(out, registry.Match(re))

	case actionList:
		for _, name := range registry.Names() {
			fmt.Fprintln(out, name)
		}
		return nil

	case actionShow:
		return preview.WriteBlocks(out, registry.All())

	default:
		return cmd.Help()
	}
}
