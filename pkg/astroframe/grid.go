package astroframe

import (
	"fmt"
	"image"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of element types a Grid can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Grid is a row-major 2D raster indexed [row, col].
type Grid[T Scalar] struct {
	rows, cols int
	pix        []T
}

// NewGrid returns a zeroed rows x cols grid.
func NewGrid[T Scalar](rows, cols int) *Grid[T] {
	rows, cols = max(rows, 0), max(cols, 0)
	return &Grid[T]{rows: rows, cols: cols, pix: make([]T, rows*cols)}
}

// FromRows copies a slice of equally long rows into a new grid.
func FromRows[T Scalar](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return NewGrid[T](0, 0), nil
	}
	g := NewGrid[T](len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != g.cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(row), g.cols)
		}
		copy(g.pix[i*g.cols:], row)
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// At returns the value at row r, column c.
func (g *Grid[T]) At(r, c int) T { return g.pix[g.offset(r, c)] }

// Set stores v at row r, column c.
func (g *Grid[T]) Set(r, c int, v T) { g.pix[g.offset(r, c)] = v }

// Row returns a copy of row r.
func (g *Grid[T]) Row(r int) []T {
	out := make([]T, g.cols)
	copy(out, g.pix[g.offset(r, 0):])
	return out
}

func (g *Grid[T]) offset(r, c int) int {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		panic(fmt.Sprintf("astroframe: index [%d, %d] out of range for %dx%d grid", r, c, g.rows, g.cols))
	}
	return r*g.cols + c
}

// Region copies the part of g inside rect (X = column, Y = row) into a new
// grid. The rectangle is clipped to the grid first; the receiver is not
// modified and the result does not share memory with it.
func (g *Grid[T]) Region(rect image.Rectangle) *Grid[T] {
	rect = rect.Intersect(image.Rect(0, 0, g.cols, g.rows))
	out := NewGrid[T](rect.Dy(), rect.Dx())
	for r := 0; r < out.rows; r++ {
		src := (rect.Min.Y+r)*g.cols + rect.Min.X
		copy(out.pix[r*out.cols:(r+1)*out.cols], g.pix[src:src+out.cols])
	}
	return out
}
