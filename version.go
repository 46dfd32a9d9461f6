package truss

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
const Version = "0.2.0"

// EngineAPIVersion is the engine version this SDK was built and tested
// against.
const EngineAPIVersion = "21.2.0"

// EngineVersionRange is the semver constraint of engine versions this SDK
// accepts. [Attach] and [Launch] reject engines outside this range unless
// [WithVersionRange] overrides it.
const EngineVersionRange = ">= 21.0.0, < 22.0.0"

// CompatibilityStatus is the outcome of a version compatibility check.
type CompatibilityStatus string

const (
	// Compatible means the engine version satisfies the supported range.
	Compatible CompatibilityStatus = "compatible"

	// Incompatible means the engine version parses but falls outside the
	// supported range.
	Incompatible CompatibilityStatus = "incompatible"

	// Unknown means the engine version could not be parsed.
	Unknown CompatibilityStatus = "unknown"
)

// Compatibility describes the result of checking an engine version against
// the SDK's supported range.
type Compatibility struct {
	Status         CompatibilityStatus
	EngineVersion  string
	SDKVersion     string
	TargetVersion  string
	SupportedRange string
	Message        string
}

// IsCompatible reports whether the check succeeded.
func (c Compatibility) IsCompatible() bool {
	return c.Status == Compatible
}

// CheckCompatibility evaluates an engine version string against
// [EngineVersionRange].
func CheckCompatibility(engineVersion string) Compatibility {
	return checkCompatibility(engineVersion, EngineVersionRange)
}

// IsCompatible reports whether an engine version string is inside the
// supported range. Convenience wrapper around [CheckCompatibility].
func IsCompatible(engineVersion string) bool {
	return CheckCompatibility(engineVersion).IsCompatible()
}

func checkCompatibility(engineVersion, versionRange string) Compatibility {
	result := Compatibility{
		EngineVersion:  engineVersion,
		SDKVersion:     Version,
		TargetVersion:  EngineAPIVersion,
		SupportedRange: versionRange,
	}

	constraint, err := semver.NewConstraint(versionRange)
	if err != nil {
		result.Status = Unknown
		result.Message = fmt.Sprintf("invalid version range %q: %v", versionRange, err)
		return result
	}

	v, err := semver.NewVersion(engineVersion)
	if err != nil {
		result.Status = Unknown
		result.Message = fmt.Sprintf("cannot parse engine version %q: %v", engineVersion, err)
		return result
	}

	if constraint.Check(v) {
		result.Status = Compatible
		result.Message = fmt.Sprintf("engine version %s is compatible with range %s", engineVersion, versionRange)
	} else {
		result.Status = Incompatible
		result.Message = fmt.Sprintf("engine version %s is outside supported range %s", engineVersion, versionRange)
	}
	return result
}
