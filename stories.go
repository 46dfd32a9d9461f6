package truss

import (
	"context"

	"github.com/trusslab/truss-go/logging"
)

// Story is one story (level) of the model.
type Story struct {
	Name      string
	Elevation float64
	Height    float64
	IsMaster  bool
}

// Stories manages the model's story definitions.
type Stories struct {
	s   *Session
	log logging.Logger
}

func newStories(s *Session) *Stories {
	return &Stories{s: s, log: s.logger}
}

// Count reports the number of stories.
func (st *Stories) Count(ctx context.Context) (int, error) {
	var n int
	err := st.s.call(ctx, "Stories.Count", nil, []any{&n}, nil)
	return n, err
}

// All returns every story bottom-up, in the order the engine defines them.
func (st *Stories) All(ctx context.Context) ([]Story, error) {
	var (
		n          int
		names      []string
		elevations []float64
		heights    []float64
		masters    []bool
	)
	var out []Story
	err := st.s.call(ctx, "Stories.GetStories", nil,
		[]any{&n, &names, &elevations, &heights, &masters},
		func() error {
			rs := Rows(n).
				Col("Name", len(names)).
				Col("Elevation", len(elevations)).
				Col("Height", len(heights)).
				Col("IsMaster", len(masters))
			var zerr error
			out, zerr = zip(rs, func(i int) Story {
				return Story{
					Name:      names[i],
					Elevation: elevations[i],
					Height:    heights[i],
					IsMaster:  masters[i],
				}
			}, nil)
			return zerr
		})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Elevation reports the elevation of a named story.
func (st *Stories) Elevation(ctx context.Context, name string) (float64, error) {
	var elevation float64
	err := st.s.call(ctx, "Stories.GetElevation",
		[]Validator{nonEmpty("name", name)},
		[]any{name, &elevation}, nil)
	return elevation, err
}

// Height reports the height of a named story.
func (st *Stories) Height(ctx context.Context, name string) (float64, error) {
	var height float64
	err := st.s.call(ctx, "Stories.GetHeight",
		[]Validator{nonEmpty("name", name)},
		[]any{name, &height}, nil)
	return height, err
}
