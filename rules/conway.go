package rules

/*
ApplyConwayRules reports whether a cell is alive in the next generation given
its live neighbor count and its current state.

Classic Life: a live cell survives with 2 or 3 live neighbors, a dead cell is
born with exactly 3. Everything else dies or stays dead.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
