package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStatsUpdateTracksRateAndPopulation(t *testing.T) {
	stats := NewStats()

	stats.Update(1, 100, 100*time.Millisecond)
	require.Equal(t, 1, stats.TotalGenerations)
	require.InDelta(t, 10.0, stats.GenerationsPerSecond, 0.001)
	require.InDelta(t, 100.0, stats.AveragePopulation, 0.001)

	stats.Update(2, 50, 200*time.Millisecond)
	require.Equal(t, 2, stats.TotalGenerations)
	require.InDelta(t, 5.0, stats.GenerationsPerSecond, 0.001)
	require.InDelta(t, 95.0, stats.AveragePopulation, 0.001, "population average blends 90/10")
}

func TestStatsUpdateIgnoresZeroDuration(t *testing.T) {
	stats := NewStats()

	stats.Update(1, 10, 0)
	require.Zero(t, stats.GenerationsPerSecond)
	require.InDelta(t, 10.0, stats.AveragePopulation, 0.001)
}
