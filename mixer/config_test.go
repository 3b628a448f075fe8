package mixer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFunctionTypeYAML(t *testing.T) {
	const src = `
kind: sigmoid
max_points: 1000
p: 0.68
s: 0.00003
`
	var ft FunctionType
	require.NoError(t, yaml.Unmarshal([]byte(src), &ft))
	require.Equal(t, KindSigmoid, ft.Kind)
	require.EqualValues(t, 1000, ft.MaxPoints)
	require.Equal(t, "0.68", ft.P.String())
	require.Equal(t, "0.00003", ft.S.String())
	require.True(t, ft.A.IsZero())

	fn, err := ft.Function()
	require.NoError(t, err)
	require.IsType(t, &Sigmoid{}, fn)

	res, err := fn.Score(100_000, 5000)
	require.NoError(t, err)
	require.EqualValues(t, 1000, res)

	out, err := yaml.Marshal(ft)
	require.NoError(t, err)
	require.NotContains(t, string(out), "a:")
}

func TestFunctionTypeKinds(t *testing.T) {
	fn, err := FunctionType{Kind: KindGeometricMean}.Function()
	require.NoError(t, err)
	require.Equal(t, GeometricMean{}, fn)

	_, err = FunctionType{Kind: "cubic"}.Function()
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = FunctionType{Kind: KindSigmoidSqrt, MaxPoints: 10}.Function()
	require.ErrorIs(t, err, ErrParameterRange)

	fn, err = FunctionType{Kind: KindAlgebraicSigmoid, MaxPoints: 10, A: dec("1"), P: dec("1"), S: dec("1")}.Function()
	require.NoError(t, err)
	require.IsType(t, &AlgebraicSigmoid{}, fn)
}

func TestKindOf(t *testing.T) {
	for _, ft := range []FunctionType{
		{Kind: KindGeometricMean},
		{Kind: KindSigmoid, MaxPoints: 1, P: dec("1"), S: dec("1")},
		{Kind: KindSigmoidSqrt, MaxPoints: 1, S: dec("1")},
		{Kind: KindAlgebraicSigmoid, MaxPoints: 1, A: dec("1"), P: dec("1"), S: dec("1")},
	} {
		fn, err := ft.Function()
		require.NoError(t, err)
		require.Equal(t, ft.Kind, KindOf(fn))
	}
	require.EqualValues(t, "custom", KindOf(failingFunction{}))
}
