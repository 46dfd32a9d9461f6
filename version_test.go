package truss_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	truss "github.com/trusslab/truss-go"
)

func TestVersion_Constants(t *testing.T) {
	assert.NotEmpty(t, truss.Version)
	assert.NotEmpty(t, truss.EngineAPIVersion)
	assert.NotEmpty(t, truss.EngineVersionRange)

	// The declared target version must itself be inside the supported range.
	assert.True(t, truss.IsCompatible(truss.EngineAPIVersion))
}

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		compatible bool
	}{
		{"exact target version", "21.2.0", true},
		{"older minor in range", "21.0.0", true},
		{"newer minor in range", "21.9.3", true},
		{"previous major", "20.3.0", false},
		{"next major", "22.0.0", false},
		{"empty version", "", false},
		{"unparseable version", "not-a-version", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.compatible, truss.IsCompatible(tt.version),
				"IsCompatible(%q)", tt.version)
		})
	}
}

func TestCheckCompatibility(t *testing.T) {
	t.Run("compatible", func(t *testing.T) {
		result := truss.CheckCompatibility("21.4.1")
		assert.Equal(t, truss.Compatible, result.Status)
		assert.True(t, result.IsCompatible())
		assert.Equal(t, "21.4.1", result.EngineVersion)
		assert.Equal(t, truss.Version, result.SDKVersion)
		assert.Equal(t, truss.EngineAPIVersion, result.TargetVersion)
		assert.Equal(t, truss.EngineVersionRange, result.SupportedRange)
		assert.Contains(t, result.Message, "compatible")
	})

	t.Run("incompatible", func(t *testing.T) {
		result := truss.CheckCompatibility("19.0.0")
		assert.Equal(t, truss.Incompatible, result.Status)
		assert.False(t, result.IsCompatible())
		assert.Contains(t, result.Message, "outside supported range")
	})

	t.Run("unparseable", func(t *testing.T) {
		result := truss.CheckCompatibility("v21beta")
		assert.Equal(t, truss.Unknown, result.Status)
		assert.False(t, result.IsCompatible())
	})
}
