package model

import (
	"iter"
	"math"
)

// Coordinate is one axis of a cell position. The grid spans the full range of
// the type, so there are no negative coordinates and no fixed outer edge
// beyond the numeric limits.
type Coordinate uint64

// Coordinate range limits. Neighbor enumeration clips against these rather
// than wrapping around, so the grid is unbounded but not toroidal.
const (
	MinCoordinate Coordinate = 0
	MaxCoordinate Coordinate = math.MaxUint64
)

// Cell identifies one grid position by row and column. Two cells are the same
// cell exactly when both coordinates match.
type Cell struct {
	Row Coordinate
	Col Coordinate
}

// startValue returns the coordinate one before v, clipped at the range minimum
func startValue(v Coordinate) Coordinate {
	if v == MinCoordinate {
		return v
	}
	return v - 1
}

// endValue returns the coordinate one past v, clipped at the range maximum
func endValue(v Coordinate) Coordinate {
	if v == MaxCoordinate {
		return v
	}
	return v + 1
}

/*
Neighbors returns the Moore neighborhood of c: the cells adjacent to it
horizontally, vertically and diagonally, visited in row-major order with c
itself skipped.

Positions that would fall outside the Coordinate range are never produced,
so a cell on a range edge has five neighbors and a cell in a range corner
three instead of the usual eight. The loop bounds are inclusive and checked
before stepping, which keeps the arithmetic inside the range at the limits.
The sequence is finite and restartable.
*/
func (c Cell) Neighbors() iter.Seq[Cell] {
	var (
		firstRow = startValue(c.Row)
		firstCol = startValue(c.Col)
		lastRow  = endValue(c.Row)
		lastCol  = endValue(c.Col)
	)
	return func(yield func(Cell) bool) {
		for row := firstRow; ; row++ {
			for col := firstCol; ; col++ {
				if neighbor := (Cell{Row: row, Col: col}); neighbor != c && !yield(neighbor) {
					return
				}
				if col == lastCol {
					break
				}
			}
			if row == lastRow {
				break
			}
		}
	}
}
