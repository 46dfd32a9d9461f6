package truss_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	truss "github.com/trusslab/truss-go"
	"github.com/trusslab/truss-go/internal/enginetest"
)

func TestStories_All(t *testing.T) {
	engine := enginetest.New("21.2.0")
	engine.Handle("Stories.GetStories", func(args []any) int {
		enginetest.SetInt(args, 0, 3)
		enginetest.SetStrings(args, 1, []string{"Base", "Story1", "Story2"})
		enginetest.SetFloats(args, 2, []float64{0, 3.2, 6.4})
		enginetest.SetFloats(args, 3, []float64{0, 3.2, 3.2})
		enginetest.SetBools(args, 4, []bool{false, true, false})
		return 0
	})
	sess := newTestSession(t, engine)

	stories, err := sess.Stories().All(context.Background())

	require.NoError(t, err)
	require.Len(t, stories, 3)
	assert.Equal(t, truss.Story{Name: "Story1", Elevation: 3.2, Height: 3.2, IsMaster: true}, stories[1])
}

func TestStories_All_ColumnMismatch(t *testing.T) {
	engine := enginetest.New("21.2.0")
	engine.Handle("Stories.GetStories", func(args []any) int {
		enginetest.SetInt(args, 0, 2)
		enginetest.SetStrings(args, 1, []string{"Base", "Story1"})
		enginetest.SetFloats(args, 2, []float64{0, 3.2})
		enginetest.SetFloats(args, 3, []float64{0}) // heights short
		enginetest.SetBools(args, 4, []bool{false, true})
		return 0
	})
	sess := newTestSession(t, engine)

	_, err := sess.Stories().All(context.Background())

	terr, ok := truss.AsError(err)
	require.True(t, ok)
	assert.Equal(t, truss.KindMarshalling, terr.Kind)
	assert.Contains(t, terr.Cause.Error(), "Height")
}

func TestStories_Elevation(t *testing.T) {
	engine := enginetest.New("21.2.0")
	engine.Handle("Stories.GetElevation", func(args []any) int {
		enginetest.SetFloat(args, 1, 6.4)
		return 0
	})
	sess := newTestSession(t, engine)

	elevation, err := sess.Stories().Elevation(context.Background(), "Story2")

	require.NoError(t, err)
	assert.Equal(t, 6.4, elevation)
}
