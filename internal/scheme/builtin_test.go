package scheme

import "testing"

func TestBuiltinInvariants(t *testing.T) {
	r := Default()

	if r.Len() == 0 {
		t.Fatal("builtin registry is empty")
	}
	if r.Len() != len(builtins) {
		t.Errorf("registry has %d schemes, builtin table has %d", r.Len(), len(builtins))
	}

	seen := make(map[string]bool, r.Len())
	for _, s := range r.All() {
		if seen[s.Name] {
			t.Errorf("duplicate scheme name %q", s.Name)
		}
		seen[s.Name] = true

		for _, hex := range s.colorValues() {
			if !hexColor.MatchString(hex) {
				t.Errorf("scheme %q has malformed color %q", s.Name, hex)
			}
		}
	}
}

func TestDefaultIsStable(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different registries")
	}
}

func TestBuiltinKnownScheme(t *testing.T) {
	s, err := Default().Lookup("catppuccin_mocha")
	if err != nil {
		t.Fatalf("Lookup(catppuccin_mocha) returned error: %v", err)
	}
	if s.Background != "#1e1e2e" {
		t.Errorf("background = %q, expected #1e1e2e", s.Background)
	}
	if s.Palette[1] != "#f38ba8" {
		t.Errorf("palette[1] = %q, expected #f38ba8", s.Palette[1])
	}
}

func TestBuiltinDeclarationOrder(t *testing.T) {
	names := Default().Names()
	for i, s := range builtins {
		if names[i] != s.Name {
			t.Fatalf("Names()[%d] = %q, table has %q", i, names[i], s.Name)
		}
	}
}
