package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/textnet/matrix"
)

func sample(t *testing.T) *matrix.Labeled {
	t.Helper()
	// rows: d1, d2; cols: a, b, c
	m, err := matrix.New(
		[]string{"d1", "d2"},
		[]string{"a", "b", "c"},
		[]float64{
			1, 0, 2,
			0, 3, 1,
		},
		nil,
	)
	require.NoError(t, err)

	return m
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		cols []string
		data []float64
		mask []bool
		want error
	}{
		{"short data", []string{"r"}, []string{"c1", "c2"}, []float64{1}, nil, matrix.ErrBadShape},
		{"short mask", []string{"r"}, []string{"c"}, []float64{1}, []bool{}, matrix.ErrBadShape},
		{"empty row label", []string{""}, []string{"c"}, []float64{1}, nil, matrix.ErrEmptyLabel},
		{"duplicate col", []string{"r"}, []string{"c", "c"}, []float64{1, 2}, nil, matrix.ErrDuplicateLabel},
		{"nan", []string{"r"}, []string{"c"}, []float64{math.NaN()}, nil, matrix.ErrNaNInf},
		{"inf", []string{"r"}, []string{"c"}, []float64{math.Inf(-1)}, nil, matrix.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.New(tc.rows, tc.cols, tc.data, tc.mask)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	data := []float64{1, 2}
	m, err := matrix.New([]string{"r"}, []string{"a", "b"}, data, nil)
	require.NoError(t, err)
	data[0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestEmptyShapes(t *testing.T) {
	m, err := matrix.New([]string{"d1", "d2"}, nil, nil, nil)
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 0, c)
	assert.Nil(t, m.Dense())

	g, err := m.Gram(matrix.ByRow)
	require.NoError(t, err)
	v, err := g.Value("d1", "d2")
	require.NoError(t, err)
	assert.Zero(t, v)

	g, err = m.Gram(matrix.ByColumn)
	require.NoError(t, err)
	assert.Zero(t, g.Len())

	calls := 0
	require.NoError(t, m.EachCell(false, func(int, int, float64) error { calls++; return nil }))
	assert.Zero(t, calls)
	assert.Len(t, m.AlphaCut(0), 2)
}

func TestLookups(t *testing.T) {
	m := sample(t)
	v, err := m.Value("d2", "b")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = m.Value("d3", "b")
	assert.ErrorIs(t, err, matrix.ErrUnknownLabel)
	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	i, ok := m.RowIndex("d2")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	j, ok := m.ColIndex("c")
	assert.True(t, ok)
	assert.Equal(t, 2, j)
	assert.Equal(t, []string{"a", "b", "c"}, m.Cols())
}

func TestEachCell_RowMajorSupport(t *testing.T) {
	m, err := matrix.New(
		[]string{"d1", "d2"},
		[]string{"a", "b"},
		[]float64{0, 0.5, 0, 0},
		[]bool{true, true, false, true},
	)
	require.NoError(t, err)

	type cell struct {
		i, j int
		w    float64
	}
	var bySupport, byValue []cell
	require.NoError(t, m.EachCell(false, func(i, j int, w float64) error {
		bySupport = append(bySupport, cell{i, j, w})
		return nil
	}))
	require.NoError(t, m.EachCell(true, func(i, j int, w float64) error {
		byValue = append(byValue, cell{i, j, w})
		return nil
	}))

	assert.Equal(t, []cell{{0, 0, 0}, {0, 1, 0.5}, {1, 1, 0}}, bySupport)
	assert.Equal(t, []cell{{0, 1, 0.5}}, byValue)

	ok, err := m.Supported(1, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	stop := errors.New("stop")
	n := 0
	err = m.EachCell(false, func(int, int, float64) error { n++; return stop })
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, n)
}

func TestGram_MatchesProducts(t *testing.T) {
	m := sample(t)

	rows, err := m.Gram(matrix.ByRow)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d2"}, rows.Labels())
	// d1·d1 = 1+4, d1·d2 = 2, d2·d2 = 9+1
	for _, tc := range []struct {
		a, b string
		want float64
	}{{"d1", "d1", 5}, {"d1", "d2", 2}, {"d2", "d1", 2}, {"d2", "d2", 10}} {
		v, err := rows.Value(tc.a, tc.b)
		require.NoError(t, err)
		assert.True(t, scalar.EqualWithinAbs(tc.want, v, 1e-12), "%s,%s=%v", tc.a, tc.b, v)
	}

	cols, err := m.Gram(matrix.ByColumn)
	require.NoError(t, err)
	assert.Equal(t, 3, cols.Len())
	// a·c = 2, b·c = 3, a·b = 0
	for _, tc := range []struct {
		a, b string
		want float64
	}{{"a", "c", 2}, {"b", "c", 3}, {"a", "b", 0}, {"c", "c", 5}} {
		v, err := cols.Value(tc.a, tc.b)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, v, 1e-12)
		w, err := cols.Value(tc.b, tc.a)
		require.NoError(t, err)
		assert.Equal(t, v, w, "symmetric")
	}

	_, err = m.Gram(matrix.Axis(7))
	assert.ErrorIs(t, err, matrix.ErrBadAxis)
	_, err = cols.At(3, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestAlphaCut(t *testing.T) {
	m := sample(t)
	assert.Equal(t, [][]bool{
		{false, false, true},
		{false, true, false},
	}, m.AlphaCut(2))
}

func TestValidate(t *testing.T) {
	require.NoError(t, sample(t).Validate())

	neg, err := matrix.New([]string{"r"}, []string{"a", "b"}, []float64{1, -0.5}, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, neg.Validate(), matrix.ErrNegative)
}
