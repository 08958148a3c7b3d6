package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/termhue/termhue/internal/scheme"
)

// execRoot runs the root command with the given args and returns its
// combined output. Flag state is reset first so tests are independent.
func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flagScheme = ""
	flagPattern = ""
	flagList = false
	flagShow = false
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})

	if args == nil {
		// SetArgs(nil) would fall back to os.Args.
		args = []string{}
	}

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestListAction(t *testing.T) {
	out, err := execRoot(t, "-l")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	registry := scheme.Default()
	if len(lines) != registry.Len() {
		t.Fatalf("printed %d names, registry has %d", len(lines), registry.Len())
	}

	seen := make(map[string]bool, len(lines))
	for _, name := range lines {
		if seen[name] {
			t.Errorf("duplicate name %q in list output", name)
		}
		seen[name] = true
		if !registry.Contains(name) {
			t.Errorf("listed name %q is not in the registry", name)
		}
	}
}

func TestSetAction(t *testing.T) {
	out, err := execRoot(t, "-c", "catppuccin_mocha")
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if !strings.Contains(out, "1;#f38ba8") {
		t.Errorf("output missing palette slot 1 pair: %q", out)
	}
	if !strings.Contains(out, "\x1b]11;#1e1e2e\a") {
		t.Errorf("output missing background sequence: %q", out)
	}
	if !strings.Contains(out, "\x1b]10;#cdd6f4\a") {
		t.Errorf("output missing foreground sequence: %q", out)
	}
}

func TestSetActionUnknownScheme(t *testing.T) {
	_, err := execRoot(t, "-c", "no_such_scheme")
	if err == nil {
		t.Fatal("expected error for unknown scheme")
	}
	if !strings.Contains(err.Error(), "no_such_scheme") {
		t.Errorf("error does not name the scheme: %v", err)
	}
}

func TestSearchAction(t *testing.T) {
	out, err := execRoot(t, "-e", "catppuccin")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if !strings.HasPrefix(out, "\n") {
		t.Error("search output missing leading blank line")
	}
	if !strings.Contains(out, "catppuccin_mocha | Foreground: #cdd6f4 | Background: #1e1e2e") {
		t.Errorf("search output missing catppuccin_mocha title line")
	}
}

func TestSearchActionNoMatches(t *testing.T) {
	out, err := execRoot(t, "-e", "definitely_not_a_scheme")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if out != "\n" {
		t.Errorf("expected only the leading blank line, got %q", out)
	}
}

func TestSearchActionInvalidPattern(t *testing.T) {
	_, err := execRoot(t, "-e", "[")
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestNoArgsPrintsHelp(t *testing.T) {
	out, err := execRoot(t)
	if err != nil {
		t.Fatalf("no-args run failed: %v", err)
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("expected usage text, got %q", out)
	}
}

func TestMutuallyExclusiveFlags(t *testing.T) {
	_, err := execRoot(t, "-l", "-s")
	if err == nil {
		t.Fatal("expected error for combined actions")
	}
}

func TestExportAction(t *testing.T) {
	out, err := execRoot(t, "export", "catppuccin_mocha")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "name: catppuccin_mocha") {
		t.Errorf("export output missing scheme name: %q", out)
	}
	if !strings.Contains(out, "foreground: '#cdd6f4'") && !strings.Contains(out, "foreground: \"#cdd6f4\"") {
		t.Errorf("export output missing foreground: %q", out)
	}
}

func TestExportUnknownScheme(t *testing.T) {
	_, err := execRoot(t, "export", "no_such_scheme")
	if err == nil {
		t.Fatal("expected error for unknown scheme")
	}
}
