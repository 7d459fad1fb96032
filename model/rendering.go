package model

import (
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"strings"
)

const (
	cellAliveGlyph = "x  "
	cellDeadGlyph  = "-  "

	macosClearCmd = "clear"
)

// Window is the rectangular region of the grid chosen for display and for
// pattern placement. The grid itself is unbounded; only the window has edges.
type Window struct {
	Origin Cell
	Width  int
	Height int
}

// clampedOffset moves v forward by delta, stopping at the coordinate maximum
// instead of wrapping
func clampedOffset(v Coordinate, delta int) Coordinate {
	if delta <= 0 {
		return v
	}
	d := Coordinate(delta)
	if v > MaxCoordinate-d {
		return MaxCoordinate
	}
	return v + d
}

// LastRow returns the row of the window's bottom edge, clipped at the
// coordinate range
func (w Window) LastRow() Coordinate {
	return clampedOffset(w.Origin.Row, w.Height-1)
}

// LastCol returns the column of the window's right edge, clipped at the
// coordinate range
func (w Window) LastCol() Coordinate {
	return clampedOffset(w.Origin.Col, w.Width-1)
}

// Contains reports whether the cell lies inside the window
func (w Window) Contains(c Cell) bool {
	if w.Width <= 0 || w.Height <= 0 {
		return false
	}
	return c.Row >= w.Origin.Row && c.Row <= w.LastRow() &&
		c.Col >= w.Origin.Col && c.Col <= w.LastCol()
}

// RandomCell returns a uniformly random cell inside the window. The window
// must not be empty.
func (w Window) RandomCell() Cell {
	var (
		// Clipping keeps both spans within int no matter where the origin sits
		rowSpan = int(w.LastRow()-w.Origin.Row) + 1
		colSpan = int(w.LastCol()-w.Origin.Col) + 1
	)
	return Cell{
		Row: w.Origin.Row + Coordinate(rand.Intn(rowSpan)),
		Col: w.Origin.Col + Coordinate(rand.Intn(colSpan)),
	}
}

// RenderWindow draws the generation as text, one window row per line: every
// cell inside the window maps to a glyph by membership in the living set.
// Windows reaching past the coordinate maximum are clipped, not wrapped.
func RenderWindow(g Generation, w Window) string {
	if w.Width <= 0 || w.Height <= 0 {
		return ""
	}

	var (
		frame   strings.Builder
		lastRow = w.LastRow()
		lastCol = w.LastCol()
	)
	for row := w.Origin.Row; ; row++ {
		for col := w.Origin.Col; ; col++ {
			if g.Get(Cell{Row: row, Col: col}) {
				frame.WriteString(cellAliveGlyph)
			} else {
				frame.WriteString(cellDeadGlyph)
			}
			if col == lastCol {
				break
			}
		}
		frame.WriteByte('\n')
		if row == lastRow {
			break
		}
	}
	return frame.String()
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the window of the generation to the terminal
func (r *TerminalRenderer) Display(g Generation, w Window) {
	fmt.Print(RenderWindow(g, w))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	var cmd *exec.Cmd
	cmd = exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
