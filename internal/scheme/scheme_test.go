package scheme

import (
	"errors"
	"regexp"
	"testing"
)

func testPalette(base string) Palette {
	var p Palette
	for i := range p {
		p[i] = base
	}
	return p
}

func testSchemes() []Scheme {
	return []Scheme{
		{Name: "dusk", Foreground: "#ffffff", Background: "#000000", Palette: testPalette("#111111")},
		{Name: "dawn", Foreground: "#000000", Background: "#ffffff", Palette: testPalette("#eeeeee")},
		{Name: "dusk_bright", Foreground: "#fafafa", Background: "#101010", Palette: testPalette("#222222")},
	}
}

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(testSchemes()...)
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", r.Len())
	}
}

func TestNewRegistryRejectsInvalid(t *testing.T) {
	valid := testSchemes()

	tests := []struct {
		name    string
		schemes []Scheme
	}{
		{
			name:    "duplicate name",
			schemes: append(testSchemes(), valid[0]),
		},
		{
			name: "malformed foreground",
			schemes: []Scheme{
				{Name: "bad", Foreground: "fff", Background: "#000000", Palette: testPalette("#111111")},
			},
		},
		{
			name: "malformed palette entry",
			schemes: []Scheme{
				{Name: "bad", Foreground: "#ffffff", Background: "#000000", Palette: testPalette("#11111g")},
			},
		},
		{
			name: "missing hash",
			schemes: []Scheme{
				{Name: "bad", Foreground: "ffffff", Background: "#000000", Palette: testPalette("#111111")},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistry(tc.schemes...)
			if err == nil {
				t.Fatal("NewRegistry succeeded, expected error")
			}
			if !errors.Is(err, ErrInvalidScheme) {
				t.Errorf("error = %v, expected ErrInvalidScheme", err)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	r, err := NewRegistry(testSchemes()...)
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}

	s, err := r.Lookup("dawn")
	if err != nil {
		t.Fatalf("Lookup(dawn) returned error: %v", err)
	}
	if s.Background != "#ffffff" {
		t.Errorf("Lookup(dawn).Background = %q", s.Background)
	}

	_, err = r.Lookup("noon")
	if err == nil {
		t.Fatal("Lookup(noon) succeeded, expected error")
	}
	if !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("error = %v, expected ErrUnknownScheme", err)
	}
}

func TestContains(t *testing.T) {
	r, err := NewRegistry(testSchemes()...)
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}
	if !r.Contains("dusk") {
		t.Error("Contains(dusk) = false")
	}
	if r.Contains("noon") {
		t.Error("Contains(noon) = true")
	}
}

func TestNamesKeepDeclarationOrder(t *testing.T) {
	r, err := NewRegistry(testSchemes()...)
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}

	names := r.Names()
	expected := []string{"dusk", "dawn", "dusk_bright"}
	if len(names) != len(expected) {
		t.Fatalf("Names() has %d entries, expected %d", len(names), len(expected))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Names()[%d] = %q, expected %q", i, names[i], expected[i])
		}
	}

	// Mutating the returned slice must not affect the registry.
	names[0] = "mutated"
	if r.Names()[0] != "dusk" {
		t.Error("Names() returned registry-internal storage")
	}
}

func TestAll(t *testing.T) {
	r, err := NewRegistry(testSchemes()...)
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("All() has %d entries, expected 3", len(all))
	}
	if all[0].Name != "dusk" || all[2].Name != "dusk_bright" {
		t.Errorf("All() order wrong: %q, %q", all[0].Name, all[2].Name)
	}
}

func TestMatch(t *testing.T) {
	r, err := NewRegistry(testSchemes()...)
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}

	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{"substring", "dusk", []string{"dusk", "dusk_bright"}},
		{"single", "dawn", []string{"dawn"}},
		{"everything", "d", []string{"dusk", "dawn", "dusk_bright"}},
		{"anchored", "^dusk$", []string{"dusk"}},
		{"no match", "noon", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			matched := r.Match(regexp.MustCompile(tc.pattern))
			if len(matched) != len(tc.expected) {
				t.Fatalf("Match(%q) returned %d schemes, expected %d", tc.pattern, len(matched), len(tc.expected))
			}
			for i, s := range matched {
				if s.Name != tc.expected[i] {
					t.Errorf("Match(%q)[%d] = %q, expected %q", tc.pattern, i, s.Name, tc.expected[i])
				}
			}
		})
	}
}
