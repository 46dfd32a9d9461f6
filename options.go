package truss

import "github.com/trusslab/truss-go/logging"

type config struct {
	logger           logging.Logger
	versionRange     string
	enginePath       string
	skipVersionCheck bool
}

func defaultConfig() *config {
	return &config{
		logger:       logging.NoOpLogger{},
		versionRange: EngineVersionRange,
	}
}

// Option configures a session at [Attach] or [Launch] time.
type Option func(*config)

// WithLogger sets the structured logger used by the session and its
// managers. Defaults to a no-op logger.
func WithLogger(logger logging.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithVersionRange overrides the semver range of engine versions the
// session accepts. Defaults to [EngineVersionRange].
func WithVersionRange(versionRange string) Option {
	return func(c *config) {
		if versionRange != "" {
			c.versionRange = versionRange
		}
	}
}

// WithEnginePath sets the engine executable path handed to the launcher
// when [Launch] starts a new instance. Ignored by [Attach].
func WithEnginePath(path string) Option {
	return func(c *config) {
		c.enginePath = path
	}
}

// WithoutVersionCheck disables the engine version compatibility gate.
// Calls against an unsupported engine may fail in undocumented ways; this
// is intended for diagnosing version reporting problems, not production
// use.
func WithoutVersionCheck() Option {
	return func(c *config) {
		c.skipVersionCheck = true
	}
}

// WithProfile applies a loaded connection profile. Explicit options given
// after WithProfile override the profile's values.
func WithProfile(p *Profile) Option {
	return func(c *config) {
		if p == nil {
			return
		}
		if p.EnginePath != "" {
			c.enginePath = p.EnginePath
		}
		if p.VersionRange != "" {
			c.versionRange = p.VersionRange
		}
	}
}
