//go:build ignore

// Command genversion syncs the engine version constants in version.go from
// the truss.yaml profile at the repository root, keeping the SDK's declared
// compatibility window in one place.
//
// Usage:
//
//	go run scripts/genversion.go
package main

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

const (
	configFile  = "truss.yaml"
	versionFile = "version.go"
)

type Config struct {
	EngineAPIVersion   string `yaml:"engineApiVersion"`
	EngineVersionRange string `yaml:"engineVersionRange"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	raw, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", configFile, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse %s: %w", configFile, err)
	}
	if cfg.EngineAPIVersion == "" || cfg.EngineVersionRange == "" {
		return fmt.Errorf("%s must set engineApiVersion and engineVersionRange", configFile)
	}

	src, err := os.ReadFile(versionFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", versionFile, err)
	}

	out := regexp.MustCompile(`const EngineAPIVersion = "[^"]*"`).
		ReplaceAll(src, []byte(fmt.Sprintf("const EngineAPIVersion = %q", cfg.EngineAPIVersion)))
	out = regexp.MustCompile(`const EngineVersionRange = "[^"]*"`).
		ReplaceAll(out, []byte(fmt.Sprintf("const EngineVersionRange = %q", cfg.EngineVersionRange)))

	if err := os.WriteFile(versionFile, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", versionFile, err)
	}
	fmt.Printf("synced %s: engine %s, range %s\n", versionFile, cfg.EngineAPIVersion, cfg.EngineVersionRange)
	return nil
}
