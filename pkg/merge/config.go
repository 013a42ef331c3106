// File: pkg/merge/config.go
package merge

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Arguments holds the configuration options for a merge run.
type Arguments struct {
	Folder      string       // The folder to scan and merge.
	ProfilePath string       // Optional path to a TOML merge profile; empty selects the built-in profile.
	OnProgress  ProgressFunc // Optional per-file progress callback.
}

// ClassSpec describes one prefix class of a merge profile: which filenames
// belong to the class and where its combined output goes.
type ClassSpec struct {
	Name   string `toml:"name"`   // Display name, e.g. "Bead".
	Prefix string `toml:"prefix"` // Literal filename prefix that selects the class.
	Output string `toml:"output"` // Combined output filename, created inside the scanned folder.
}

// Profile is a set of prefix classes merged in one run. Each class produces at
// most one combined output file.
type Profile struct {
	Classes []ClassSpec `toml:"class"`
}

// DefaultProfile returns the built-in bead/motor profile used when no profile
// file is given.
func DefaultProfile() Profile {
	return Profile{Classes: []ClassSpec{
		{Name: "Bead", Prefix: "Bead Positions", Output: "Bead Positions Combined.txt"},
		{Name: "Motor", Prefix: "Motor Positions", Output: "Motor Positions Combined.txt"},
	}}
}

// LoadProfile reads and validates a TOML merge profile.
func LoadProfile(path string) (Profile, error) {
	var profile Profile
	if _, err := toml.DecodeFile(path, &profile); err != nil {
		return Profile{}, fmt.Errorf("failed to parse merge profile %s: %w", path, err)
	}
	if err := profile.validate(); err != nil {
		return Profile{}, fmt.Errorf("invalid merge profile %s: %w", path, err)
	}
	return profile, nil
}

func (p Profile) validate() error {
	if len(p.Classes) == 0 {
		return fmt.Errorf("profile defines no classes")
	}
	names := make(map[string]bool, len(p.Classes))
	outputs := make(map[string]bool, len(p.Classes))
	for i, c := range p.Classes {
		if c.Name == "" {
			return fmt.Errorf("class %d has no name", i+1)
		}
		if c.Prefix == "" {
			return fmt.Errorf("class %q has no prefix", c.Name)
		}
		if c.Output == "" {
			return fmt.Errorf("class %q has no output filename", c.Name)
		}
		if names[c.Name] {
			return fmt.Errorf("duplicate class name %q", c.Name)
		}
		if outputs[c.Output] {
			return fmt.Errorf("duplicate output filename %q", c.Output)
		}
		names[c.Name] = true
		outputs[c.Output] = true
	}
	return nil
}

// outputNames returns the set of combined output filenames, which discovery
// must skip so a second run does not re-merge its own outputs.
func (p Profile) outputNames() map[string]bool {
	outputs := make(map[string]bool, len(p.Classes))
	for _, c := range p.Classes {
		outputs[c.Output] = true
	}
	return outputs
}
