// Package scheme provides the built-in color scheme registry.
// The registry is populated once from the static builtin table and is
// read-only afterward; commands look schemes up by name or iterate them
// in declaration order.
package scheme

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

// ErrUnknownScheme is returned by Lookup for names not in the registry.
var ErrUnknownScheme = errors.New("unknown color scheme")

// ErrInvalidScheme is returned by NewRegistry for records that violate the
// scheme invariants (duplicate name, malformed color value).
var ErrInvalidScheme = errors.New("invalid color scheme")

// hexColor matches a '#' followed by exactly six hex digits.
var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Palette holds the 16 ANSI palette slots of a scheme.
// Indices 0-7 are the normal-intensity colors, 8-15 their bright
// counterparts.
type Palette [16]string

// Scheme is one named terminal color scheme: default foreground and
// background plus the 16-color palette. All values are "#rrggbb" strings.
type Scheme struct {
	Name       string  `yaml:"name"`
	Foreground string  `yaml:"foreground"`
	Background string  `yaml:"background"`
	Palette    Palette `yaml:"palette,flow"`
}

// Registry is an immutable name-indexed collection of schemes that
// preserves declaration order for iteration.
type Registry struct {
	order  []string
	byName map[string]Scheme
}

// NewRegistry builds a registry from the given schemes, keeping their
// order. It rejects duplicate names and malformed color values so that
// every scheme handed out later is known-good.
func NewRegistry(schemes ...Scheme) (*Registry, error) {
	r := &Registry{
		order:  make([]string, 0, len(schemes)),
		byName: make(map[string]Scheme, len(schemes)),
	}
	for _, s := range schemes {
		if _, exists := r.byName[s.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidScheme, s.Name)
		}
		for _, hex := range s.colorValues() {
			if !hexColor.MatchString(hex) {
				return nil, fmt.Errorf("%w: %s has malformed color %q", ErrInvalidScheme, s.Name, hex)
			}
		}
		r.order = append(r.order, s.Name)
		r.byName[s.Name] = s
	}
	return r, nil
}

// colorValues returns every color of the scheme: foreground, background,
// then the 16 palette entries.
func (s Scheme) colorValues() []string {
	values := make([]string, 0, 18)
	values = append(values, s.Foreground, s.Background)
	values = append(values, s.Palette[:]...)
	return values
}

// Lookup returns the scheme registered under name.
func (r *Registry) Lookup(name string) (Scheme, error) {
	s, ok := r.byName[name]
	if !ok {
		return Scheme{}, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	return s, nil
}

// Contains reports whether a scheme with the given name is registered.
func (r *Registry) Contains(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Names returns all scheme names in declaration order.
// The returned slice is a copy and safe to modify.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered schemes.
func (r *Registry) Len() int {
	return len(r.order)
}

// All returns every scheme in declaration order.
func (r *Registry) All() []Scheme {
	all := make([]Scheme, len(r.order))
	for i, name := range r.order {
		all[i] = r.byName[name]
	}
	return all
}

// Match returns every scheme whose name contains a match of re, in
// declaration order. An unanchored pattern therefore has substring
// search semantics.
func (r *Registry) Match(re *regexp.Regexp) []Scheme {
	var matched []Scheme
	for _, name := range r.order {
		if re.MatchString(name) {
			matched = append(matched, r.byName[name])
		}
	}
	return matched
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry over the built-in schemes.
// The builtin table is static and validated, so a construction failure
// is a programming error.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(builtins...)
		if err != nil {
			panic(fmt.Sprintf("scheme: builtin table is corrupt: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
