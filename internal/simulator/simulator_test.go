package simulator

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	simulator := New(Config{Games: 10, Players: 3, Seed: 12345})
	if simulator == nil {
		t.Fatal("New() returned nil")
	}
	if simulator.config.Workers <= 0 {
		t.Errorf("Expected default workers, got %d", simulator.config.Workers)
	}
	if simulator.config.Policy != "first" {
		t.Errorf("Expected 'first' policy, got %s", simulator.config.Policy)
	}
}

func TestSimulator_Run(t *testing.T) {
	for _, policy := range Policies {
		t.Run(policy, func(t *testing.T) {
			stats, err := New(Config{
				Games:   20,
				Players: 4,
				Policy:  policy,
				Seed:    7,
				Logger:  log.NewWithOptions(nil, log.Options{Level: log.WarnLevel}),
			}).Run(context.Background())
			require.NoError(t, err)

			assert.Equal(t, 20, stats.Games)
			assert.Equal(t, 80, stats.Results)
			for seat := 0; seat < 4; seat++ {
				assert.Equal(t, 20, stats.Seats[seat].Games)
			}
			assert.Zero(t, stats.Seats[4].Games)
			assert.LessOrEqual(t, stats.TokensTaken, 2*20)
		})
	}
}

func TestSimulator_WorkerCountDoesNotChangeResults(t *testing.T) {
	run := func(workers int) []float64 {
		stats, err := New(Config{Games: 12, Players: 5, Policy: "random", Seed: 99, Workers: workers}).Run(context.Background())
		require.NoError(t, err)
		return stats.Values
	}
	assert.Equal(t, run(1), run(4))
}

func TestSimulator_RunErrors(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"too few players", Config{Games: 1, Players: 1}},
		{"too many players", Config{Games: 1, Players: 7}},
		{"no games", Config{Games: 0, Players: 2}},
		{"unknown policy", Config{Games: 1, Players: 2, Policy: "greedy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config).Run(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestSimulator_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Games: 50, Players: 2, Workers: 1}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
