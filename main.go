package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-sparse-gol/model"
	"github.com/sheikhrachel/go-sparse-gol/utils"
)

func main() {
	configPath := flag.String(
		"config",
		"config.json",
		"Path to the JSON config file. Defaults to config.json.")

	animate := flag.Bool(
		"animate",
		false,
		"Run the animated terminal loop instead of printing a batch of frames.")

	generations := flag.Int(
		"gens",
		-1,
		"Number of generations to produce. 0 means unlimited in animate mode; negative values defer to the config.")

	width := flag.Int(
		"w",
		0,
		"Width of the display window in cells. Overrides the config when positive.")

	height := flag.Int(
		"h",
		0,
		"Height of the display window in cells. Overrides the config when positive.")

	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%v not found)\n", *configPath)
		config = utils.DefaultConfig()
	}

	if *animate {
		config.Animate = true
	}
	if *generations >= 0 {
		config.MaxGenerations = *generations
	}
	if *width > 0 {
		config.Width = *width
	}
	if *height > 0 {
		config.Height = *height
	}

	if config.Animate {
		runAnimated(config)
		return
	}
	runBatch(config)
}

// runBatch grows the starter seed and prints the configured number of
// generations to stdout, the seed first, one blank line between frames
func runBatch(config utils.Config) {
	var (
		window = displayWindow(config)
		count  = 0
	)
	for generation := range model.Generations(model.StarterSeed()) {
		if count >= config.MaxGenerations {
			break
		}
		fmt.Print(model.RenderWindow(generation, window))
		fmt.Println()
		count++
	}
}

// runAnimated clears and redraws the terminal every frame until the
// generation limit is reached or the process is interrupted
func runAnimated(config utils.Config) {
	current, pool, renderer, stats := initializeGame(config)
	window := displayWindow(config)
	displayGameInfo(config, current)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		history        model.History
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		// Update game state
		livingCells, density, status, isStagnant := updateGameState(current, &history, window, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		// Update stagnation counter
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		// Display current status
		displayGameStatus(generation, livingCells, density, status, current, stats, lastRestartGen)
		renderer.Display(current, window)

		// Check for max generations limit
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		// Check restart conditions
		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)

		if shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)

			// Return old generation to pool if using memory pooling
			model.GenerationToPool(current, pool)

			// Restart game
			current = restartGame(config, window)
			history.Reset()
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			current.InjectRandomLife(window, config.InjectionCount)
		}

		// Calculate next generation
		next := current.Advance(config, pool)

		// Return old generation to pool if using memory pooling
		model.GenerationToPool(current, pool)
		current = next

		generation++

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
	model.GenerationToPool(current, pool)
}
