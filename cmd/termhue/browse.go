package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termhue/termhue/internal/scheme"
	"github.com/termhue/termhue/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse color schemes interactively",
	Long: `Open an interactive browser over the built-in color schemes.

The highlighted scheme is previewed live; pressing Enter applies it to
the current terminal immediately, so you can step through schemes until
one looks right.

Controls:
  Up/Down/j/k  - Navigate schemes
  /            - Filter by name (regular expression)
  Enter        - Apply highlighted scheme
  Esc          - Clear filter
  Q            - Quit

Examples:
  termhue browse`,
	RunE: runBrowse,
}

func runBrowse(_ *cobra.Command, _ []string) error {
	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	applied, err := tui.RunBrowser(scheme.Default(), os.Stdout, width, height)
	if err != nil {
		return err
	}
	if applied != "" {
		fmt.Fprintf(os.Stderr, "applied %s\n", applied)
	}
	return nil
}
