package truss_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	truss "github.com/trusslab/truss-go"
	"github.com/trusslab/truss-go/internal/enginetest"
)

func TestMaterials_Add(t *testing.T) {
	engine := enginetest.New("21.2.0")
	sess := newTestSession(t, engine)

	err := sess.Materials().Add(context.Background(), "C30/37", truss.MaterialConcrete)

	require.NoError(t, err)
	calls := engine.Calls("Materials.Add")
	require.Len(t, calls, 1)
	assert.Equal(t, "C30/37", calls[0].Args[0])
	assert.Equal(t, int(truss.MaterialConcrete), calls[0].Args[1])
}

func TestMaterials_Add_UnknownKind(t *testing.T) {
	engine := enginetest.New("21.2.0")
	sess := newTestSession(t, engine)

	err := sess.Materials().Add(context.Background(), "X", truss.MaterialKind(42))

	assert.True(t, truss.IsKind(err, truss.KindInvalidArgument))
	assert.Equal(t, 0, engine.CallCount("Materials.Add"))
}

func TestMaterials_SetIsotropic_Validation(t *testing.T) {
	engine := enginetest.New("21.2.0")
	sess := newTestSession(t, engine)
	ctx := context.Background()

	assert.True(t, truss.IsKind(
		sess.Materials().SetIsotropic(ctx, "S355", 0, 0.3, 1.2e-5),
		truss.KindInvalidArgument), "zero modulus")
	assert.True(t, truss.IsKind(
		sess.Materials().SetIsotropic(ctx, "S355", 210e9, 0.5, 1.2e-5),
		truss.KindInvalidArgument), "poisson ratio at upper bound")
	assert.Equal(t, 0, engine.CallCount("Materials.SetIsotropic"))

	require.NoError(t, sess.Materials().SetIsotropic(ctx, "S355", 210e9, 0.3, 1.2e-5))
	assert.Equal(t, 1, engine.CallCount("Materials.SetIsotropic"))
}

func TestMaterials_Isotropic(t *testing.T) {
	engine := enginetest.New("21.2.0")
	engine.Handle("Materials.GetIsotropic", func(args []any) int {
		enginetest.SetFloat(args, 1, 210e9)
		enginetest.SetFloat(args, 2, 0.3)
		enginetest.SetFloat(args, 3, 1.2e-5)
		enginetest.SetFloat(args, 4, 80.77e9)
		return 0
	})
	sess := newTestSession(t, engine)

	iso, err := sess.Materials().Isotropic(context.Background(), "S355")

	require.NoError(t, err)
	assert.Equal(t, 210e9, iso.E)
	assert.Equal(t, 0.3, iso.Nu)
	assert.Equal(t, 80.77e9, iso.G)
}

func TestMaterialKind_String(t *testing.T) {
	assert.Equal(t, "Steel", truss.MaterialSteel.String())
	assert.Equal(t, "Concrete", truss.MaterialConcrete.String())
	assert.Equal(t, "Unknown", truss.MaterialKind(0).String())
}
