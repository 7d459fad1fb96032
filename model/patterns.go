package model

import (
	"math/rand"

	"github.com/sheikhrachel/go-sparse-gol/utils"
)

// StarterSeed returns the seven cell ring the batch runner grows from
func StarterSeed() Generation {
	return NewGeneration(
		Cell{Row: 1, Col: 3},
		Cell{Row: 2, Col: 2},
		Cell{Row: 2, Col: 3},
		Cell{Row: 2, Col: 4},
		Cell{Row: 3, Col: 2},
		Cell{Row: 3, Col: 4},
		Cell{Row: 4, Col: 3},
	)
}

// offsetCell moves origin down and right by the given amounts, reporting
// whether the result stays inside the coordinate range. Placements that would
// wrap are skipped by the callers, never wrapped.
func offsetCell(origin Cell, rowOffset, colOffset int) (Cell, bool) {
	if rowOffset < 0 || colOffset < 0 {
		return Cell{}, false
	}
	if origin.Row > MaxCoordinate-Coordinate(rowOffset) {
		return Cell{}, false
	}
	if origin.Col > MaxCoordinate-Coordinate(colOffset) {
		return Cell{}, false
	}
	return Cell{
		Row: origin.Row + Coordinate(rowOffset),
		Col: origin.Col + Coordinate(colOffset),
	}, true
}

// AddGlider adds a glider pattern with its top-left corner at origin
func (g Generation) AddGlider(origin Cell) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for rowOffset, row := range pattern {
		for colOffset, alive := range row {
			if cell, ok := offsetCell(origin, rowOffset, colOffset); ok {
				g.Set(cell, alive)
			}
		}
	}
}

// AddOscillator adds a blinker oscillator pattern starting at origin
func (g Generation) AddOscillator(origin Cell) {
	for colOffset := range 3 {
		if cell, ok := offsetCell(origin, 0, colOffset); ok {
			g.Set(cell, true)
		}
	}
}

// AddBlock adds a 2x2 still life block with its top-left corner at origin
func (g Generation) AddBlock(origin Cell) {
	for rowOffset := range 2 {
		for colOffset := range 2 {
			if cell, ok := offsetCell(origin, rowOffset, colOffset); ok {
				g.Set(cell, true)
			}
		}
	}
}

// Randomize fills the window with random living cells at the given density.
// Every cell in the window is rewritten, dead cells included.
func (g Generation) Randomize(w Window, density float64) {
	if w.Width <= 0 || w.Height <= 0 {
		return
	}

	var (
		lastRow = w.LastRow()
		lastCol = w.LastCol()
	)
	for row := w.Origin.Row; ; row++ {
		for col := w.Origin.Col; ; col++ {
			g.Set(Cell{Row: row, Col: col}, rand.Float64() < density)
			if col == lastCol {
				break
			}
		}
		if row == lastRow {
			break
		}
	}
}

// InjectRandomLife adds some random cells inside the window to break stagnation
func (g Generation) InjectRandomLife(w Window, count int) {
	if w.Width <= 0 || w.Height <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		g.Set(w.RandomCell(), true)
	}
}

// ResetWithInterestingPatterns clears the generation and reseeds the window
// with random life plus various interesting patterns. The random fill goes
// down first so the stamped patterns stay intact on top of it.
func (g Generation) ResetWithInterestingPatterns(w Window, config utils.Config) {
	g.Clear()

	g.Randomize(w, config.RandomDensity)

	if w.Width >= 10 && w.Height >= 10 {
		// Add some gliders
		if origin, ok := offsetCell(w.Origin, 5, 5); ok {
			g.AddGlider(origin)
		}
		if w.Width >= 20 && w.Height >= 15 {
			if origin, ok := offsetCell(w.Origin, 5, w.Width-8); ok {
				g.AddGlider(origin)
			}
		}

		// Add oscillators
		if origin, ok := offsetCell(w.Origin, w.Height/4, w.Width/4); ok {
			g.AddOscillator(origin)
		}
		if w.Width >= 30 {
			if origin, ok := offsetCell(w.Origin, 3*w.Height/4, 3*w.Width/4); ok {
				g.AddOscillator(origin)
			}
		}
	}
}
