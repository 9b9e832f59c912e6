// Package simulator plays many seeded games with a fixed autoplay policy and
// aggregates the results.
package simulator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/darkhorse/internal/game"
	"github.com/lox/darkhorse/internal/randutil"
	"github.com/lox/darkhorse/internal/script"
	"github.com/lox/darkhorse/internal/statistics"
	"github.com/lox/darkhorse/race"
)

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Players int
	Policy  string // "first" or "random"
	Seed    int64
	Workers int // 0 means GOMAXPROCS
	Logger  *log.Logger
}

// Policies lists the accepted Config.Policy values.
var Policies = []string{"first", "random"}

// Simulator runs games in parallel. Game i is always played with seed
// Config.Seed+i, so results do not depend on the worker count.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Policy == "" {
		config.Policy = "first"
	}
	return &Simulator{config: config}
}

// Run plays every game and returns the aggregate.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if _, err := game.AllotmentFor(s.config.Players); err != nil {
		return nil, err
	}
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	if _, err := newPolicy(s.config.Policy, randutil.New(0)); err != nil {
		return nil, err
	}

	results := make([]statistics.GameResult, s.config.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range results {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := s.config.Seed + int64(i)
			result, err := s.playGame(seed)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

func (s *Simulator) playGame(seed int64) (statistics.GameResult, error) {
	engine := game.NewEngine(game.WithSeed(seed), game.WithLogger(s.config.Logger))

	// The policy draws from its own source so the engine's stream matches a
	// replay of the same seed.
	policy, err := newPolicy(s.config.Policy, randutil.New(^seed))
	if err != nil {
		return statistics.GameResult{}, err
	}

	names := make([]string, s.config.Players)
	for i := range names {
		names[i] = fmt.Sprintf("seat-%d", i+1)
	}
	d := &session{engine: engine}
	state, err := script.RunWithPolicy(d, &script.Script{Players: names, Autoplay: true}, policy)
	if err != nil {
		return statistics.GameResult{}, err
	}

	scores, winners, err := engine.Score(state)
	if err != nil {
		return statistics.GameResult{}, err
	}
	rank, _ := state.Horses.RankOf(state.DarkHorse)

	result := statistics.GameResult{
		Seed:          seed,
		DarkHorseRank: rank,
		Scores:        scores,
	}
	for _, w := range winners {
		result.Winners = append(result.Winners, w.PlayerID)
	}
	return result, nil
}

// session threads snapshots through an engine without keeping history.
type session struct {
	engine *game.Engine
	state  game.GameState
}

func (d *session) Dispatch(a game.Action) (game.GameState, error) {
	next, err := d.engine.Apply(d.state, a)
	if err != nil {
		return game.GameState{}, err
	}
	d.state = next
	return next, nil
}

func newPolicy(name string, rng randutil.Source) (script.Policy, error) {
	switch name {
	case "first":
		return script.FirstCard, nil
	case "random":
		return randomPolicy(rng), nil
	}
	return nil, fmt.Errorf("unknown policy %q", name)
}

// randomPolicy picks a uniformly random legal turn.
func randomPolicy(rng randutil.Source) script.Policy {
	return script.PolicyFunc(func(s game.GameState) script.Turn {
		player, _ := s.CurrentPlayer()
		target := s.Players[rng.IntN(len(s.Players))]
		dir := race.Forward
		if rng.IntN(2) == 1 {
			dir = race.Backward
		}
		return script.Turn{
			TakeToken:  game.CanTakeDarkHorseToken(s) && rng.IntN(2) == 1,
			Card:       rng.IntN(len(player.ActionCards)),
			Direction:  dir.String(),
			Target:     target.ID,
			TargetCard: rng.IntN(len(target.BettingCards)),
		}
	})
}
