package model

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-sparse-gol/rules"
	"github.com/sheikhrachel/go-sparse-gol/utils"
)

// Generation is the set of cells currently alive. Every cell not in the set
// is dead; membership is the only alive/dead signal the engine keeps.
type Generation map[Cell]struct{}

// NewGeneration builds a generation holding the given seed cells
func NewGeneration(cells ...Cell) Generation {
	g := make(Generation, len(cells))
	for _, cell := range cells {
		g.Set(cell, true)
	}
	return g
}

// Set sets a cell to alive (true) or dead (false)
func (g Generation) Set(cell Cell, alive bool) {
	if alive {
		g[cell] = struct{}{}
	} else {
		delete(g, cell)
	}
}

// Get returns the state of a cell
func (g Generation) Get(cell Cell) bool {
	_, alive := g[cell]
	return alive
}

// Clear kills all cells
func (g Generation) Clear() {
	clear(g)
}

// Clone returns an independent copy of the generation
func (g Generation) Clone() Generation {
	return maps.Clone(g)
}

// CountLivingCells returns the total number of living cells
func (g Generation) CountLivingCells() int {
	return len(g)
}

// Cells returns the living cells sorted in row-major order
func (g Generation) Cells() []Cell {
	cells := make([]Cell, 0, len(g))
	for cell := range g {
		cells = append(cells, cell)
	}
	slices.SortFunc(cells, compareCells)
	return cells
}

func compareCells(a, b Cell) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}

// Bounds returns the corners of the smallest rectangle covering every living
// cell. ok is false when no cells are alive.
func (g Generation) Bounds() (topLeft, bottomRight Cell, ok bool) {
	for cell := range g {
		if !ok {
			topLeft, bottomRight, ok = cell, cell, true
			continue
		}
		topLeft.Row = min(topLeft.Row, cell.Row)
		topLeft.Col = min(topLeft.Col, cell.Col)
		bottomRight.Row = max(bottomRight.Row, cell.Row)
		bottomRight.Col = max(bottomRight.Col, cell.Col)
	}
	return topLeft, bottomRight, ok
}

/*
neighborStatus describes one live cell's Moore neighborhood: how many of its
neighbors are alive and which ones are dead.

The dead neighbors are the only cells that can be born next generation, so
they are collected here during the same pass that counts the living ones.
Away from the coordinate range edges the two always total 8.
*/
type neighborStatus struct {
	aliveCount    int
	deadNeighbors []Cell
}

// surveyNeighbors walks the neighborhood of one live cell once, splitting it
// into an alive count and the dead birth candidates
func (g Generation) surveyNeighbors(cell Cell) (status neighborStatus) {
	for neighbor := range cell.Neighbors() {
		if g.Get(neighbor) {
			status.aliveCount++
		} else {
			status.deadNeighbors = append(status.deadNeighbors, neighbor)
		}
	}
	return status
}

// bringBackToLife reports whether a currently dead cell has exactly the
// neighbor count required for a birth. The count is recomputed from scratch
// against g, so asking about the same cell twice always agrees.
func (g Generation) bringBackToLife(cell Cell) bool {
	count := 0
	for neighbor := range cell.Neighbors() {
		if g.Get(neighbor) {
			count++
		}
	}
	return rules.ApplyConwayRules(count, false)
}

// stepCell settles the fate of one live cell and of its dead neighbors,
// writing survivors and births into next. The same dead cell may be proposed
// by several live neighbors; the recheck is idempotent and the set dedupes
// the insert, so repeats only cost the recount.
func (g Generation) stepCell(cell Cell, next Generation) {
	status := g.surveyNeighbors(cell)

	if rules.ApplyConwayRules(status.aliveCount, true) {
		next.Set(cell, true)
	}

	for _, dead := range status.deadNeighbors {
		if g.bringBackToLife(dead) {
			next.Set(dead, true)
		}
	}
}

// Next computes the following generation serially. The receiver is read only;
// the result is a fresh set, drawn from the pool when one is supplied.
func (g Generation) Next(pool *GenerationPool) Generation {
	var next Generation
	if pool != nil {
		next = pool.Get()
	} else {
		next = NewGeneration()
	}

	for cell := range g {
		g.stepCell(cell, next)
	}

	return next
}

// NextParallel computes the following generation with the live cells fanned
// out across one worker per CPU. Workers fill private partial sets which are
// merged after the wait, so no two goroutines write the same map. The result
// equals Next's for every input.
func (g Generation) NextParallel(pool *GenerationPool) Generation {
	var next Generation
	if pool != nil {
		next = pool.Get()
	} else {
		next = NewGeneration()
	}

	cells := make([]Cell, 0, len(g))
	for cell := range g {
		cells = append(cells, cell)
	}

	var (
		eg             errgroup.Group
		numWorkers     = runtime.NumCPU()
		cellsPerWorker = (len(cells) + numWorkers - 1) / numWorkers // Ceiling division
		partials       = make([]Generation, 0, numWorkers)
	)

	for i := range numWorkers {
		var (
			start = i * cellsPerWorker
			end   = min(start+cellsPerWorker, len(cells))
		)
		if start >= len(cells) {
			break
		}

		partial := NewGeneration()
		partials = append(partials, partial)

		eg.Go(func() error {
			for _, cell := range cells[start:end] {
				g.stepCell(cell, partial)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}

	for _, partial := range partials {
		maps.Copy(next, partial)
		GenerationToPool(partial, pool)
	}

	return next
}

// Advance computes the following generation using the configured strategy
func (g Generation) Advance(config utils.Config, pool *GenerationPool) Generation {
	if config.UseParallel {
		return g.NextParallel(pool)
	}
	return g.Next(pool)
}

// Generations returns the endless sequence of generations grown from seed,
// the seed itself first. Each advance reads one set and produces a fresh one.
// The sequence is restartable: ranging over it again replays from the seed,
// and the next set is computed before the current one is handed out, so a
// caller mutating what it received cannot skew the run.
func Generations(seed Generation) iter.Seq[Generation] {
	return func(yield func(Generation) bool) {
		current := seed.Clone()
		for {
			next := current.Next(nil)
			if !yield(current) {
				return
			}
			current = next
		}
	}
}
