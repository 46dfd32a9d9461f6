package truss

import (
	"context"
	"fmt"

	"github.com/trusslab/truss-go/logging"
)

// Areas manages area (shell) objects.
type Areas struct {
	s   *Session
	log logging.Logger
}

func newAreas(s *Session) *Areas {
	return &Areas{s: s, log: s.logger}
}

// AddByPoints creates an area from existing corner points, in the order
// given, and returns the name the engine assigned to it. At least three
// points are required.
func (a *Areas) AddByPoints(ctx context.Context, points []string) (string, error) {
	validators := []Validator{atLeast("points", len(points), 3)}
	for i, p := range points {
		validators = append(validators, nonEmpty(fmt.Sprintf("points[%d]", i), p))
	}
	var name string
	err := a.s.call(ctx, "Areas.AddByPoint", validators,
		[]any{len(points), points, &name}, nil)
	if err != nil {
		return "", err
	}
	return name, nil
}

// Points returns the corner point names of an area, in the order they
// were submitted when the area was created.
func (a *Areas) Points(ctx context.Context, name string) ([]string, error) {
	var (
		n      int
		points []string
	)
	var out []string
	err := a.s.call(ctx, "Areas.GetPoints",
		[]Validator{nonEmpty("name", name)},
		[]any{name, &n, &points},
		func() error {
			var zerr error
			out, zerr = zip(
				Rows(n).Col("PointName", len(points)),
				func(i int) string { return points[i] },
				nil)
			return zerr
		})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Count reports the number of area objects in the model.
func (a *Areas) Count(ctx context.Context) (int, error) {
	var n int
	err := a.s.call(ctx, "Areas.Count", nil, []any{&n}, nil)
	return n, err
}

// Delete removes a named area object.
func (a *Areas) Delete(ctx context.Context, name string) error {
	return a.s.call(ctx, "Areas.Delete",
		[]Validator{nonEmpty("name", name)},
		[]any{name}, nil)
}
