// Package fca reduces a fuzzy document × term relation to a crisp formal
// context for formal concept analysis.
//
// Extract applies an alpha-cut (weight ≥ alpha ⇒ true) to the weight matrix
// and drops every object (document) row and every property (term) column that
// ends up all false. The result never contains an empty row or column.
package fca

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/textnet/matrix"
)

// DefaultAlpha is the default cut level.
const DefaultAlpha = 0.3

var (
	// ErrAlphaOutOfRange indicates a cut level outside [0, 1].
	ErrAlphaOutOfRange = errors.New("fca: alpha must be in [0, 1]")
	// ErrNilMatrix indicates a nil weight matrix.
	ErrNilMatrix = errors.New("fca: nil weight matrix")
	// ErrUnknownLabel indicates an object or property that is not in the context.
	ErrUnknownLabel = errors.New("fca: unknown object or property")
)

// Context is a crisp formal context: Incidence[i][j] tells whether object i
// has property j.
type Context struct {
	Objects    []string `json:"objects"`
	Properties []string `json:"properties"`
	Incidence  [][]bool `json:"incidence"`
}

// Clone returns a deep copy of c.
func (c *Context) Clone() *Context {
	out := &Context{
		Objects:    append([]string{}, c.Objects...),
		Properties: append([]string{}, c.Properties...),
		Incidence:  make([][]bool, len(c.Incidence)),
	}
	for i, row := range c.Incidence {
		out.Incidence[i] = append([]bool(nil), row...)
	}

	return out
}

// Extract alpha-cuts wm and removes empty rows and columns.
//
// Complexity: O(D·T).
func Extract(wm *matrix.Labeled, alpha float64) (*Context, error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("Extract(%g): %w", alpha, ErrAlphaOutOfRange)
	}
	if wm == nil {
		return nil, ErrNilMatrix
	}

	cut := wm.AlphaCut(alpha)
	rows, cols := wm.Rows(), wm.Cols()

	keepCol := make([]bool, len(cols))
	var keepRow []int
	for i, row := range cut {
		hit := false
		for j, x := range row {
			if x {
				hit = true
				keepCol[j] = true
			}
		}
		if hit {
			keepRow = append(keepRow, i)
		}
	}
	var colIdx []int
	ctx := &Context{Objects: []string{}, Properties: []string{}, Incidence: [][]bool{}}
	for j, ok := range keepCol {
		if ok {
			colIdx = append(colIdx, j)
			ctx.Properties = append(ctx.Properties, cols[j])
		}
	}
	for _, i := range keepRow {
		ctx.Objects = append(ctx.Objects, rows[i])
		line := make([]bool, len(colIdx))
		for k, j := range colIdx {
			line[k] = cut[i][j]
		}
		ctx.Incidence = append(ctx.Incidence, line)
	}

	return ctx, nil
}

// Intent returns the properties of object, in column order.
func (c *Context) Intent(object string) ([]string, error) {
	for i, o := range c.Objects {
		if o != object {
			continue
		}
		out := []string{}
		for j, x := range c.Incidence[i] {
			if x {
				out = append(out, c.Properties[j])
			}
		}
		return out, nil
	}

	return nil, fmt.Errorf("Intent(%q): %w", object, ErrUnknownLabel)
}

// Extent returns the objects having property, in row order.
func (c *Context) Extent(property string) ([]string, error) {
	for j, p := range c.Properties {
		if p != property {
			continue
		}
		out := []string{}
		for i, row := range c.Incidence {
			if row[j] {
				out = append(out, c.Objects[i])
			}
		}
		return out, nil
	}

	return nil, fmt.Errorf("Extent(%q): %w", property, ErrUnknownLabel)
}

// WriteCXT writes the context in Burmeister format, the plain-text layout
// read by ConExp, ToscanaJ and concepts:
//
//	B
//	<blank>
//	#objects
//	#properties
//	<blank>
//	object names, property names, then one X/. row per object
func (c *Context) WriteCXT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "B\n\n%d\n%d\n\n", len(c.Objects), len(c.Properties))
	for _, o := range c.Objects {
		fmt.Fprintln(bw, o)
	}
	for _, p := range c.Properties {
		fmt.Fprintln(bw, p)
	}
	for _, row := range c.Incidence {
		line := make([]byte, len(row))
		for j, x := range row {
			if x {
				line[j] = 'X'
			} else {
				line[j] = '.'
			}
		}
		bw.Write(line)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
