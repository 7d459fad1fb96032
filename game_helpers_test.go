package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-sparse-gol/model"
	"github.com/sheikhrachel/go-sparse-gol/utils"
)

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()

	tests := []struct {
		name        string
		livingCells int
		stagnant    int
		generation  int
		want        bool
		wantReason  string
	}{
		{name: "healthy board keeps running", livingCells: 12, stagnant: 0, generation: 17, want: false},
		{name: "extinction restarts", livingCells: 0, stagnant: 0, generation: 3, want: true, wantReason: "extinction"},
		{name: "stagnation threshold restarts", livingCells: 9, stagnant: config.StagnationThreshold, generation: 8, want: true, wantReason: "stagnation detected"},
		{name: "stagnation below threshold keeps running", livingCells: 9, stagnant: config.StagnationThreshold - 1, generation: 8, want: false},
		{name: "periodic refresh restarts", livingCells: 9, stagnant: 0, generation: 200, want: true, wantReason: "periodic refresh"},
		{name: "generation zero never refreshes", livingCells: 9, stagnant: 0, generation: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := checkRestartConditions(tt.livingCells, tt.stagnant, tt.generation, config)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestDisplayWindowMatchesConfig(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width = 42
	config.Height = 17

	require.Equal(t, model.Window{Width: 42, Height: 17}, displayWindow(config))
}

func TestInitializeGame(t *testing.T) {
	config := utils.DefaultConfig()

	current, pool, renderer, stats := initializeGame(config)
	require.NotZero(t, current.CountLivingCells())
	require.NotNil(t, pool)
	require.NotNil(t, renderer)
	require.NotNil(t, stats)

	config.UseMemoryPool = false
	_, pool, _, _ = initializeGame(config)
	require.Nil(t, pool)
}

func TestUpdateGameStateReportsStagnationThenObserves(t *testing.T) {
	var (
		config  = utils.DefaultConfig()
		window  = displayWindow(config)
		history model.History
		stats   = utils.NewStats()
		block   = model.NewGeneration(
			model.Cell{Row: 1, Col: 1}, model.Cell{Row: 1, Col: 2},
			model.Cell{Row: 2, Col: 1}, model.Cell{Row: 2, Col: 2},
		)
	)

	livingCells, density, status, isStagnant := updateGameState(block, &history, window, 0, stats.StartTime, stats)
	require.Equal(t, 4, livingCells)
	require.InDelta(t, 1.0, density, 0.001)
	require.Equal(t, "Active", status, "the first frame has nothing to repeat")
	require.False(t, isStagnant)

	// The block is a still life, so the second frame repeats the first
	_, _, status, isStagnant = updateGameState(block.Next(nil), &history, window, 1, stats.StartTime, stats)
	require.True(t, isStagnant)
	require.Equal(t, "Stagnant (1)", status)
}

func TestUpdateGameStateReportsExtinction(t *testing.T) {
	var (
		config  = utils.DefaultConfig()
		history model.History
		stats   = utils.NewStats()
	)

	livingCells, _, status, _ := updateGameState(model.NewGeneration(), &history, displayWindow(config), 0, stats.StartTime, stats)
	require.Zero(t, livingCells)
	require.Equal(t, "Extinct", status)
}
