package truss

import (
	"context"
	"fmt"

	"github.com/trusslab/truss-go/logging"
)

// LoadPatternKind enumerates the engine's load pattern types.
type LoadPatternKind int

const (
	LoadPatternDead LoadPatternKind = iota + 1
	LoadPatternSuperDead
	LoadPatternLive
	LoadPatternQuake
	LoadPatternWind
	LoadPatternSnow
	LoadPatternOther
)

// String returns the engine's display name for the pattern type.
func (k LoadPatternKind) String() string {
	switch k {
	case LoadPatternDead:
		return "Dead"
	case LoadPatternSuperDead:
		return "SuperDead"
	case LoadPatternLive:
		return "Live"
	case LoadPatternQuake:
		return "Quake"
	case LoadPatternWind:
		return "Wind"
	case LoadPatternSnow:
		return "Snow"
	case LoadPatternOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// LoadPatterns manages load pattern definitions.
type LoadPatterns struct {
	s   *Session
	log logging.Logger
}

func newLoadPatterns(s *Session) *LoadPatterns {
	return &LoadPatterns{s: s, log: s.logger}
}

// Add defines a new load pattern. selfWeightMultiplier scales the model's
// self weight inside this pattern; 0 excludes it.
func (lp *LoadPatterns) Add(ctx context.Context, name string, kind LoadPatternKind, selfWeightMultiplier float64) error {
	return lp.s.call(ctx, "LoadPatterns.Add",
		[]Validator{
			nonEmpty("name", name),
			func() error {
				if kind < LoadPatternDead || kind > LoadPatternOther {
					return fmt.Errorf("load pattern kind %d is not a known type", int(kind))
				}
				return nil
			},
			finite("selfWeightMultiplier", selfWeightMultiplier),
		},
		[]any{name, int(kind), selfWeightMultiplier}, nil)
}

// Count reports the number of defined load patterns.
func (lp *LoadPatterns) Count(ctx context.Context) (int, error) {
	var n int
	err := lp.s.call(ctx, "LoadPatterns.Count", nil, []any{&n}, nil)
	return n, err
}

// Names returns the names of all defined load patterns.
func (lp *LoadPatterns) Names(ctx context.Context) ([]string, error) {
	var (
		n     int
		names []string
	)
	var out []string
	err := lp.s.call(ctx, "LoadPatterns.GetNameList", nil, []any{&n, &names},
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

// Delete removes a load pattern. Patterns with assigned loads are rejected
// by the engine.
func (lp *LoadPatterns) Delete(ctx context.Context, name string) error {
	return lp.s.call(ctx, "LoadPatterns.Delete",
		[]Validator{nonEmpty("name", name)},
		[]any{name}, nil)
}
