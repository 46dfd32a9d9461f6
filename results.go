package truss

import (
	"context"

	"github.com/trusslab/truss-go/logging"
)

// JointDisplacement is one joint displacement row: translations U1..U3 and
// rotations R1..R3 for one point under one load case.
type JointDisplacement struct {
	Point string
	Case  string
	U1    float64
	U2    float64
	U3    float64
	R1    float64
	R2    float64
	R3    float64
}

// BaseReaction is the total base reaction for one load case.
type BaseReaction struct {
	Case string
	FX   float64
	FY   float64
	FZ   float64
	MX   float64
	MY   float64
	MZ   float64
}

// FrameForce is one frame internal-force row at a station along the frame.
type FrameForce struct {
	Frame   string
	Station float64
	Case    string
	P       float64
	V2      float64
	V3      float64
	T       float64
	M2      float64
	M3      float64
}

// Results reads analysis results. All operations require a completed
// analysis; the engine rejects them otherwise.
type Results struct {
	s   *Session
	log logging.Logger
}

func newResults(s *Session) *Results {
	return &Results{s: s, log: s.logger}
}

// JointDisplacements returns displacement rows for a point. When caseName
// is non-empty only rows of that load case are returned; the filter is
// applied after zipping so row order follows the engine's output.
func (r *Results) JointDisplacements(ctx context.Context, point, caseName string) ([]JointDisplacement, error) {
	var (
		n                      int
		points, cases          []string
		u1, u2, u3, r1, r2, r3 []float64
	)
	var out []JointDisplacement
	err := r.s.call(ctx, "Results.JointDisplacements",
		[]Validator{nonEmpty("point", point)},
		[]any{point, &n, &points, &cases, &u1, &u2, &u3, &r1, &r2, &r3},
		func() error {
			rs := Rows(n).
				Col("PointName", len(points)).
				Col("LoadCase", len(cases)).
				Col("U1", len(u1)).
				Col("U2", len(u2)).
				Col("U3", len(u3)).
				Col("R1", len(r1)).
				Col("R2", len(r2)).
				Col("R3", len(r3))
			var keep func(JointDisplacement) bool
			if caseName != "" {
				keep = func(jd JointDisplacement) bool { return jd.Case == caseName }
			}
			var zerr error
			out, zerr = zip(rs, func(i int) JointDisplacement {
				return JointDisplacement{
					Point: points[i],
					Case:  cases[i],
					U1:    u1[i], U2: u2[i], U3: u3[i],
					R1: r1[i], R2: r2[i], R3: r3[i],
				}
			}, keep)
			return zerr
		})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BaseReactions returns the total base reactions, one row per load case,
// optionally filtered to a single case.
func (r *Results) BaseReactions(ctx context.Context, caseName string) ([]BaseReaction, error) {
	var (
		n                      int
		cases                  []string
		fx, fy, fz, mx, my, mz []float64
	)
	var out []BaseReaction
	err := r.s.call(ctx, "Results.BaseReactions", nil,
		[]any{&n, &cases, &fx, &fy, &fz, &mx, &my, &mz},
		func() error {
			rs := Rows(n).
				Col("LoadCase", len(cases)).
				Col("FX", len(fx)).
				Col("FY", len(fy)).
				Col("FZ", len(fz)).
				Col("MX", len(mx)).
				Col("MY", len(my)).
				Col("MZ", len(mz))
			var keep func(BaseReaction) bool
			if caseName != "" {
				keep = func(br BaseReaction) bool { return br.Case == caseName }
			}
			var zerr error
			out, zerr = zip(rs, func(i int) BaseReaction {
				return BaseReaction{
					Case: cases[i],
					FX:   fx[i], FY: fy[i], FZ: fz[i],
					MX: mx[i], MY: my[i], MZ: mz[i],
				}
			}, keep)
			return zerr
		})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FrameForces returns internal-force rows for a frame, one per output
// station per load case, optionally filtered to a single case.
func (r *Results) FrameForces(ctx context.Context, frame, caseName string) ([]FrameForce, error) {
	var (
		n                    int
		frames, cases        []string
		stations             []float64
		p, v2, v3, t, m2, m3 []float64
	)
	var out []FrameForce
	err := r.s.call(ctx, "Results.FrameForces",
		[]Validator{nonEmpty("frame", frame)},
		[]any{frame, &n, &frames, &stations, &cases, &p, &v2, &v3, &t, &m2, &m3},
		func() error {
			rs := Rows(n).
				Col("FrameName", len(frames)).
				Col("Station", len(stations)).
				Col("LoadCase", len(cases)).
				Col("P", len(p)).
				Col("V2", len(v2)).
				Col("V3", len(v3)).
				Col("T", len(t)).
				Col("M2", len(m2)).
				Col("M3", len(m3))
			var keep func(FrameForce) bool
			if caseName != "" {
				keep = func(ff FrameForce) bool { return ff.Case == caseName }
			}
			var zerr error
			out, zerr = zip(rs, func(i int) FrameForce {
				return FrameForce{
					Frame:   frames[i],
					Station: stations[i],
					Case:    cases[i],
					P:       p[i], V2: v2[i], V3: v3[i],
					T: t[i], M2: m2[i], M3: m3[i],
				}
			}, keep)
			return zerr
		})
	if err != nil {
		return nil, err
	}
	return out, nil
}
