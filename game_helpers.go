package main

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/go-sparse-gol/model"
	"github.com/sheikhrachel/go-sparse-gol/utils"
)

// displayWindow builds the terminal viewport described by the config, rooted
// at the grid origin
func displayWindow(config utils.Config) model.Window {
	return model.Window{
		Width:  config.Width,
		Height: config.Height,
	}
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	model.Generation,
	*model.GenerationPool,
	*model.TerminalRenderer,
	*utils.Stats,
) {
	var pool *model.GenerationPool
	if config.UseMemoryPool {
		pool = model.NewGenerationPool()
	}

	current := model.NewGeneration()
	current.ResetWithInterestingPatterns(displayWindow(config), config)

	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	return current, pool, renderer, stats
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, current model.Generation) {
	fmt.Printf("Features: Memory Pool: %v, Parallel: %v\n",
		config.UseMemoryPool, config.UseParallel)
	fmt.Printf("Window: %dx%d | Initial living cells: %d\n",
		config.Width, config.Height, current.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	current model.Generation,
	history *model.History,
	window model.Window,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := current.CountLivingCells()
	density := float64(livingCells) / float64(window.Width*window.Height) * 100

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, frameDuration)

	// Check for stagnation against prior frames before recording this one
	isStagnant := history.IsStagnant(current)
	history.Observe(current)

	// Display status
	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	current model.Generation,
	stats *utils.Stats,
	lastRestartGen int,
) {
	// Show the live set's bounding box, which may extend past the window
	boundsInfo := ""
	if topLeft, bottomRight, ok := current.Bounds(); ok {
		boundsInfo = fmt.Sprintf(" | Bounds: (%d,%d)-(%d,%d)",
			topLeft.Row, topLeft.Col, bottomRight.Row, bottomRight.Col)
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s%s\n",
		generation, livingCells, density, status, boundsInfo)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame handles the game restart logic
func restartGame(config utils.Config, window model.Window) model.Generation {
	fmt.Printf("\n🔄 Restarting...\n")
	time.Sleep(1 * time.Second)

	current := model.NewGeneration()
	current.ResetWithInterestingPatterns(window, config)

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", current.CountLivingCells())
	time.Sleep(2 * time.Second)

	return current
}
