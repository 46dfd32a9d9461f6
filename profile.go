package truss

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Profile is a connection profile, typically kept in a truss.yaml file
// next to the project that drives the engine. Zero-value fields fall back
// to the session defaults.
//
// Example:
//
//	enginePath: C:\Program Files\Truss 21\truss.exe
//	versionRange: ">= 21.0.0, < 22.0.0"
type Profile struct {
	// EnginePath is the engine executable used by [Launch].
	EnginePath string `yaml:"enginePath"`

	// VersionRange overrides the accepted engine version range.
	VersionRange string `yaml:"versionRange"`
}

// LoadProfile reads a YAML connection profile from path. Use the result
// with [WithProfile].
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if p.VersionRange != "" {
		if _, err := semver.NewConstraint(p.VersionRange); err != nil {
			return nil, fmt.Errorf("profile %s: invalid versionRange: %w", path, err)
		}
	}
	return &p, nil
}
