package truss

import (
	"context"
	"fmt"

	"github.com/trusslab/truss-go/logging"
)

// Releases are end releases for one frame end, in the engine's documented
// degree-of-freedom order: P, V2, V3, T, M2, M3.
type Releases [6]bool

// DistributedLoad is one distributed load row assigned to a frame.
//
// The engine returns both the relative and the absolute distance pair for
// every row but no flag saying which pair the assignment was made with.
// Relative is inferred: it reports whether both relative distances lie in
// [0, 1]. Rows assigned with absolute distances on short frames can
// therefore report Relative = true; callers needing certainty must compare
// Dist1/Dist2 against the frame length themselves. This is an engine
// contract gap, not an SDK guarantee.
type DistributedLoad struct {
	Frame     string
	Pattern   string
	Direction int
	RelDist1  float64
	RelDist2  float64
	Dist1     float64
	Dist2     float64
	Value1    float64
	Value2    float64
	Relative  bool
}

// Frames manages frame (line) objects.
type Frames struct {
	s   *Session
	log logging.Logger
}

func newFrames(s *Session) *Frames {
	return &Frames{s: s, log: s.logger}
}

// AddByPoints connects two existing points with a new frame and returns
// the name the engine assigned to it.
func (f *Frames) AddByPoints(ctx context.Context, pointI, pointJ string) (string, error) {
	var name string
	err := f.s.call(ctx, "Frames.AddByPoint",
		[]Validator{
			nonEmpty("pointI", pointI),
			nonEmpty("pointJ", pointJ),
			func() error {
				if pointI == pointJ {
					return fmt.Errorf("pointI and pointJ must differ, both are %q", pointI)
				}
				return nil
			},
		},
		[]any{pointI, pointJ, &name}, nil)
	if err != nil {
		return "", err
	}
	return name, nil
}

// SetSection assigns a frame section property to a named frame.
func (f *Frames) SetSection(ctx context.Context, name, section string) error {
	return f.s.call(ctx, "Frames.SetSection",
		[]Validator{nonEmpty("name", name), nonEmpty("section", section)},
		[]any{name, section}, nil)
}

// Section reports the section property assigned to a frame, plus the
// auto-select list name when the section came from one (empty otherwise).
func (f *Frames) Section(ctx context.Context, name string) (section, autoList string, err error) {
	err = f.s.call(ctx, "Frames.GetSection",
		[]Validator{nonEmpty("name", name)},
		[]any{name, &section, &autoList}, nil)
	if err != nil {
		return "", "", err
	}
	return section, autoList, nil
}

// SetReleases sets the end releases of a frame for both ends.
func (f *Frames) SetReleases(ctx context.Context, name string, i, j Releases) error {
	return f.s.call(ctx, "Frames.SetReleases",
		[]Validator{nonEmpty("name", name)},
		[]any{name, i[:], j[:]}, nil)
}

// SetDistributedLoad assigns a distributed load to a frame over a
// relative-distance interval rd1..rd2 with end values v1 and v2.
func (f *Frames) SetDistributedLoad(ctx context.Context, name, pattern string, direction int, rd1, rd2, v1, v2 float64) error {
	return f.s.call(ctx, "Frames.SetDistributedLoad",
		[]Validator{
			nonEmpty("name", name),
			nonEmpty("pattern", pattern),
			inUnitRange("rd1", rd1),
			inUnitRange("rd2", rd2),
			func() error {
				if rd1 > rd2 {
					return fmt.Errorf("rd1 (%v) must not exceed rd2 (%v)", rd1, rd2)
				}
				return nil
			},
			finite("v1", v1),
			finite("v2", v2),
		},
		[]any{name, pattern, direction, rd1, rd2, v1, v2}, nil)
}

// DistributedLoads returns the distributed loads assigned to a frame.
// When pattern is non-empty only rows of that load pattern are returned;
// the filter is applied after zipping, so row order and index alignment
// follow the engine's output.
//
// A frame with no assigned loads yields an empty slice, not an error.
func (f *Frames) DistributedLoads(ctx context.Context, name, pattern string) ([]DistributedLoad, error) {
	var (
		n          int
		frames     []string
		patterns   []string
		directions []int
		rd1s, rd2s []float64
		d1s, d2s   []float64
		v1s, v2s   []float64
	)
	var out []DistributedLoad
	err := f.s.call(ctx, "Frames.GetDistributedLoads",
		[]Validator{nonEmpty("name", name)},
		[]any{name, &n, &frames, &patterns, &directions, &rd1s, &rd2s, &d1s, &d2s, &v1s, &v2s},
		func() error {
			rs := Rows(n).
				Col("FrameName", len(frames)).
				Col("LoadPattern", len(patterns)).
				Col("Direction", len(directions)).
				Col("RelDist1", len(rd1s)).
				Col("RelDist2", len(rd2s)).
				Col("Dist1", len(d1s)).
				Col("Dist2", len(d2s)).
				Col("Value1", len(v1s)).
				Col("Value2", len(v2s))
			var keep func(DistributedLoad) bool
			if pattern != "" {
				keep = func(dl DistributedLoad) bool { return dl.Pattern == pattern }
			}
			var zerr error
			out, zerr = zip(rs, func(i int) DistributedLoad {
				return DistributedLoad{
					Frame:     frames[i],
					Pattern:   patterns[i],
					Direction: directions[i],
					RelDist1:  rd1s[i],
					RelDist2:  rd2s[i],
					Dist1:     d1s[i],
					Dist2:     d2s[i],
					Value1:    v1s[i],
					Value2:    v2s[i],
					Relative:  rd1s[i] >= 0 && rd1s[i] <= 1 && rd2s[i] >= 0 && rd2s[i] <= 1,
				}
			}, keep)
			return zerr
		})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a named frame object.
func (f *Frames) Delete(ctx context.Context, name string) error {
	return f.s.call(ctx, "Frames.Delete",
		[]Validator{nonEmpty("name", name)},
		[]any{name}, nil)
}
