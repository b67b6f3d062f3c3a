// Package manifest decodes a TOML compliance manifest grouping policy and
// configuration files together, mirroring the "ComplianceManifest" concept
// of the original tool's CLI layer.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Manifest is the top-level decoded document: one or more groups of policy
// locations, and one or more groups of configuration locations.
type Manifest struct {
	Policies []PolicyGroup `toml:"policies"`
	Configs  []ConfigGroup `toml:"configs"`
}

// PolicyGroup is one set of policy file paths, resolved relative to the
// manifest file that declared them.
type PolicyGroup struct {
	Recurse bool     `toml:"recurse"`
	Paths   []string `toml:"paths"`
}

// ConfigGroup is one set of configuration file paths, plus any declared
// (but unimplemented) remote retrieval methods.
type ConfigGroup struct {
	Recurse bool            `toml:"recurse"`
	Paths   []string        `toml:"paths"`
	SSHExec []SSHExecConfig `toml:"ssh-exec"`
}

// SSHExecConfig names a remote host set a configuration could in principle
// be pulled from. Retrieval itself is declared but never implemented: see
// RetrieveConfigurations.
type SSHExecConfig struct {
	Cmd   string   `toml:"cmd"`
	User  string   `toml:"user"`
	Hosts []string `toml:"hosts"`
}

// ErrUnimplemented is returned by SSHExecConfig.RetrieveConfigurations.
var ErrUnimplemented = fmt.Errorf("manifest: remote ssh-exec configuration retrieval is not implemented")

// RetrieveConfigurations is the declared-but-never-built remote collection
// path: the manifest schema accepts "ssh-exec" groups, but nothing in this
// module is able to act on them yet.
func (s SSHExecConfig) RetrieveConfigurations() ([]string, error) {
	return nil, ErrUnimplemented
}

// Parse decodes a TOML manifest document and validates its structural
// requirements (every "vec1" rule from the original schema).
func Parse(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if err := validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseFile reads and decodes a manifest file at path.
func ParseFile(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return Parse(raw)
}

// Files resolves a PolicyGroup's declared paths relative to manifestPath's
// directory. A path naming a directory expands to that directory's
// immediate children when Recurse is false; Recurse being true is accepted
// syntax that behaves identically (see DESIGN.md), matching a gap already
// present in the system this was modeled on.
func (g PolicyGroup) Files(manifestPath string) ([]string, error) {
	return resolvePaths(manifestPath, g.Paths)
}

// Files resolves a ConfigGroup's declared paths the same way PolicyGroup
// does.
func (g ConfigGroup) Files(manifestPath string) ([]string, error) {
	return resolvePaths(manifestPath, g.Paths)
}

func resolvePaths(manifestPath string, paths []string) ([]string, error) {
	dir := filepath.Dir(manifestPath)

	var out []string
	for _, p := range paths {
		full := filepath.Join(dir, p)
		info, err := os.Stat(full)
		if err != nil {
			return nil, fmt.Errorf("manifest: %s: %w", full, err)
		}
		if !info.IsDir() {
			out = append(out, full)
			continue
		}
		entries, err := os.ReadDir(full)
		if err != nil {
			return nil, fmt.Errorf("manifest: %s: %w", full, err)
		}
		for _, e := range entries {
			if !e.IsDir() {
				out = append(out, filepath.Join(full, e.Name()))
			}
		}
	}
	return out, nil
}
