package truss

import (
	"context"
	"fmt"

	"github.com/trusslab/truss-go/logging"
)

// MaterialKind enumerates the engine's material classes.
type MaterialKind int

const (
	MaterialSteel MaterialKind = iota + 1
	MaterialConcrete
	MaterialRebar
	MaterialAluminum
	MaterialTendon
	MaterialOther
)

// String returns the engine's display name for the material class.
func (k MaterialKind) String() string {
	switch k {
	case MaterialSteel:
		return "Steel"
	case MaterialConcrete:
		return "Concrete"
	case MaterialRebar:
		return "Rebar"
	case MaterialAluminum:
		return "Aluminum"
	case MaterialTendon:
		return "Tendon"
	case MaterialOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Isotropic holds the isotropic mechanical properties of a material in the
// present units.
type Isotropic struct {
	// E is the modulus of elasticity.
	E float64

	// Nu is Poisson's ratio.
	Nu float64

	// Alpha is the coefficient of thermal expansion.
	Alpha float64

	// G is the shear modulus the engine derived from E and Nu.
	G float64
}

// Materials manages material property definitions.
type Materials struct {
	s   *Session
	log logging.Logger
}

func newMaterials(s *Session) *Materials {
	return &Materials{s: s, log: s.logger}
}

// Add defines a new material of the given class.
func (m *Materials) Add(ctx context.Context, name string, kind MaterialKind) error {
	return m.s.call(ctx, "Materials.Add",
		[]Validator{
			nonEmpty("name", name),
			func() error {
				if kind < MaterialSteel || kind > MaterialOther {
					return fmt.Errorf("material kind %d is not a known class", int(kind))
				}
				return nil
			},
		},
		[]any{name, int(kind)}, nil)
}

// SetIsotropic sets the isotropic mechanical properties of a material.
func (m *Materials) SetIsotropic(ctx context.Context, name string, e, nu, alpha float64) error {
	return m.s.call(ctx, "Materials.SetIsotropic",
		[]Validator{
			nonEmpty("name", name),
			positive("e", e),
			func() error {
				if nu <= -1 || nu >= 0.5 {
					return fmt.Errorf("nu must be in (-1, 0.5), got %v", nu)
				}
				return nil
			},
			finite("alpha", alpha),
		},
		[]any{name, e, nu, alpha}, nil)
}

// Isotropic reports the isotropic mechanical properties of a material.
func (m *Materials) Isotropic(ctx context.Context, name string) (Isotropic, error) {
	var iso Isotropic
	err := m.s.call(ctx, "Materials.GetIsotropic",
		[]Validator{nonEmpty("name", name)},
		[]any{name, &iso.E, &iso.Nu, &iso.Alpha, &iso.G}, nil)
	if err != nil {
		return Isotropic{}, err
	}
	return iso, nil
}

// Count reports the number of defined materials.
func (m *Materials) Count(ctx context.Context) (int, error) {
	var n int
	err := m.s.call(ctx, "Materials.Count", nil, []any{&n}, nil)
	return n, err
}

// Names returns the names of all defined materials.
func (m *Materials) Names(ctx context.Context) ([]string, error) {
	var (
		n     int
		names []string
	)
	var out []string
	err := m.s.call(ctx, "Materials.GetNameList", nil, []any{&n, &names},
		func() error {
			var zerr error
			out, zerr = zip(
				Rows(n).Col("Name", len(names)),
				func(i int) string { return names[i] },
				nil)
			return zerr
		})
	if err != nil {
		return nil, err
	}
	return out, nil
}
