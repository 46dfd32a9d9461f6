package truss

import (
	"context"

	"github.com/trusslab/truss-go/logging"
)

// Coord is a point location in the model's present units.
type Coord struct {
	X float64
	Y float64
	Z float64
}

// Points manages point (joint) objects.
type Points struct {
	s   *Session
	log logging.Logger
}

func newPoints(s *Session) *Points {
	return &Points{s: s, log: s.logger}
}

// AddCartesian adds a point at the given coordinates and returns the name
// the engine assigned to it. The engine reuses an existing point when one
// already sits at the same location.
func (p *Points) AddCartesian(ctx context.Context, x, y, z float64) (string, error) {
	var name string
	err := p.s.call(ctx, "Points.AddCartesian",
		[]Validator{finite("x", x), finite("y", y), finite("z", z)},
		[]any{x, y, z, &name}, nil)
	if err != nil {
		return "", err
	}
	return name, nil
}

// Coordinates reports the location of a named point.
func (p *Points) Coordinates(ctx context.Context, name string) (Coord, error) {
	var c Coord
	err := p.s.call(ctx, "Points.GetCoordCartesian",
		[]Validator{nonEmpty("name", name)},
		[]any{name, &c.X, &c.Y, &c.Z}, nil)
	if err != nil {
		return Coord{}, err
	}
	return c, nil
}

// Count reports the number of point objects in the model.
func (p *Points) Count(ctx context.Context) (int, error) {
	var n int
	err := p.s.call(ctx, "Points.Count", nil, []any{&n}, nil)
	return n, err
}

// Names returns the names of all point objects in model order.
func (p *Points) Names(ctx context.Context) ([]string, error) {
	var (
		n     int
		names []string
	)
	var out []string
	err := p.s.call(ctx, "Points.GetNameList", nil, []any{&n, &names},
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

// Delete removes a named point object. Points still referenced by frames
// or areas are rejected by the engine.
func (p *Points) Delete(ctx context.Context, name string) error {
	return p.s.call(ctx, "Points.Delete",
		[]Validator{nonEmpty("name", name)},
		[]any{name}, nil)
}
