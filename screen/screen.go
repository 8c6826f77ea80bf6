// Package screen maps project manager screen names to identifiers.
package screen

import (
	"errors"
	"fmt"
)

// ErrUnknown is returned by Set for a name that is not a screen.
var ErrUnknown = errors.New("screen: unknown screen name")

// Screen identifies a project manager screen.
type Screen int

const (
	Invalid Screen = iota - 1
	Empty
	CreateProject
	NewProjectSettings
	GemCatalog
	Projects
	UpdateProject
	UpdateProjectSettings
	EngineSettings
)

// names is indexed by Screen; Invalid has no name.
var names = [...]string{
	Empty:                 "Empty",
	CreateProject:         "CreateProject",
	NewProjectSettings:    "NewProjectSettings",
	GemCatalog:            "GemCatalog",
	Projects:              "Projects",
	UpdateProject:         "UpdateProject",
	UpdateProjectSettings: "UpdateProjectSettings",
	EngineSettings:        "EngineSettings",
}

var byName = func() map[string]Screen {
	m := make(map[string]Screen, len(names))
	for i, n := range names {
		m[n] = Screen(i)
	}
	return m
}()

// Parse returns the screen with the given name, or Invalid.
// Names are case sensitive.
func Parse(name string) Screen {
	if s, ok := byName[name]; ok {
		return s
	}
	return Invalid
}

// String returns the screen name, or "Invalid".
func (s Screen) String() string {
	if s < 0 || int(s) >= len(names) {
		return "Invalid"
	}
	return names[s]
}

// Valid reports whether s names a screen.
func (s Screen) Valid() bool { return s >= 0 && int(s) < len(names) }

// Names returns all screen names in identifier order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names[:])
	return out
}

// Set parses name into s. Together with String and Type it lets a Screen
// be used as a command line flag value.
func (s *Screen) Set(name string) error {
	v := Parse(name)
	if v == Invalid {
		return fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	*s = v
	return nil
}

// Type returns the flag type name.
func (*Screen) Type() string { return "screen" }
