package fca_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textnet/fca"
	"github.com/katalvlaran/textnet/matrix"
)

func TestExtract_SingleCell(t *testing.T) {
	wm, err := matrix.New(
		[]string{"d1", "d2", "d3"},
		[]string{"a", "b", "c"},
		[]float64{
			0.1, 0.2, 0.0,
			0.4, 0.6, 0.3,
			0.0, 0.49, 0.1,
		},
		nil,
	)
	require.NoError(t, err)

	ctx, err := fca.Extract(wm, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []string{"d2"}, ctx.Objects)
	assert.Equal(t, []string{"b"}, ctx.Properties)
	assert.Equal(t, [][]bool{{true}}, ctx.Incidence)
}

func TestExtract_NoEmptyRowsOrColumns(t *testing.T) {
	wm, err := matrix.New(
		[]string{"d1", "d2", "d3", "d4"},
		[]string{"a", "b", "c"},
		[]float64{
			0.9, 0.0, 0.3,
			0.0, 0.0, 0.0,
			0.3, 0.0, 0.2,
			0.0, 0.0, 0.8,
		},
		nil,
	)
	require.NoError(t, err)

	ctx, err := fca.Extract(wm, fca.DefaultAlpha)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d3", "d4"}, ctx.Objects)
	assert.Equal(t, []string{"a", "c"}, ctx.Properties)
	assert.Equal(t, [][]bool{
		{true, true},
		{true, false},
		{false, true},
	}, ctx.Incidence)

	for i, row := range ctx.Incidence {
		assert.Contains(t, row, true, "row %d", i)
	}
	for j := range ctx.Properties {
		col := false
		for _, row := range ctx.Incidence {
			col = col || row[j]
		}
		assert.True(t, col, "column %d", j)
	}

	intent, err := ctx.Intent("d1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, intent)
	extent, err := ctx.Extent("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d4"}, extent)
	_, err = ctx.Intent("d2")
	assert.ErrorIs(t, err, fca.ErrUnknownLabel)
	_, err = ctx.Extent("b")
	assert.ErrorIs(t, err, fca.ErrUnknownLabel)
}

func TestExtract_Errors(t *testing.T) {
	wm, err := matrix.New([]string{"d"}, []string{"t"}, []float64{1}, nil)
	require.NoError(t, err)
	for _, a := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := fca.Extract(wm, a)
		assert.ErrorIs(t, err, fca.ErrAlphaOutOfRange)
	}
	_, err = fca.Extract(nil, 0.3)
	assert.ErrorIs(t, err, fca.ErrNilMatrix)
}

func TestExtract_AllFalse(t *testing.T) {
	wm, err := matrix.New([]string{"d"}, []string{"t"}, []float64{0.1}, nil)
	require.NoError(t, err)
	ctx, err := fca.Extract(wm, 0.5)
	require.NoError(t, err)
	assert.Empty(t, ctx.Objects)
	assert.Empty(t, ctx.Properties)
	assert.Empty(t, ctx.Incidence)
}

func TestWriteCXT(t *testing.T) {
	ctx := &fca.Context{
		Objects:    []string{"d1", "d2"},
		Properties: []string{"cat", "dog", "eel"},
		Incidence:  [][]bool{{true, false, true}, {false, true, false}},
	}
	var buf bytes.Buffer
	require.NoError(t, ctx.WriteCXT(&buf))
	assert.Equal(t, "B\n\n2\n3\n\nd1\nd2\ncat\ndog\neel\nX.X\n.X.\n", buf.String())
}

func TestContext_Clone(t *testing.T) {
	c := &fca.Context{
		Objects:    []string{"d1", "d2"},
		Properties: []string{"t1"},
		Incidence:  [][]bool{{true}, {false}},
	}
	cp := c.Clone()
	assert.Equal(t, c, cp)

	cp.Incidence[1][0] = true
	cp.Objects[0] = "x"
	cp.Properties = append(cp.Properties, "t2")
	assert.Equal(t, [][]bool{{true}, {false}}, c.Incidence)
	assert.Equal(t, []string{"d1", "d2"}, c.Objects)
	assert.Equal(t, []string{"t1"}, c.Properties)
}
