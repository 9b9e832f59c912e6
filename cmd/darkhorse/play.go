package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/darkhorse/internal/game"
	"github.com/lox/darkhorse/internal/gameid"
	"github.com/lox/darkhorse/internal/randutil"
	"github.com/lox/darkhorse/internal/replay"
	"github.com/lox/darkhorse/internal/script"
)

// PlayCmd runs a scenario file to completion.
type PlayCmd struct {
	Script string `arg:"" type:"existingfile" help:"HCL scenario file"`
	Seed   *int64 `help:"Override the scenario seed"`
	Replay string `help:"Write a replay log to this path" type:"path"`
}

func (cmd *PlayCmd) Run(logger *log.Logger) error {
	return cmd.run(os.Stdout, logger, quartz.NewReal())
}

func (cmd *PlayCmd) run(w io.Writer, logger *log.Logger, clock quartz.Clock) error {
	s, err := script.Load(cmd.Script)
	if err != nil {
		return err
	}

	// A zero seed in the scenario means pick one.
	seed := s.Seed
	if cmd.Seed != nil {
		seed = *cmd.Seed
	}
	if seed == 0 {
		seed = randutil.NewSeed()
	}

	id := gameid.NewGenerator(randutil.New(randutil.NewSeed()), clock).Generate()
	rec := replay.NewRecorder(id, seed, clock, game.WithLogger(logger))

	state, runErr := script.Run(rec, s)
	if cmd.Replay != "" {
		if err := replay.Save(cmd.Replay, rec.Log()); err != nil {
			return err
		}
		logger.Info("Replay saved", "path", cmd.Replay, "entries", len(rec.Log().Entries))
	}
	if runErr != nil {
		return fmt.Errorf("%s: %w", cmd.Script, runErr)
	}

	fmt.Fprintf(w, "Game %s (seed %d)\n\n", id, seed)
	renderRace(w, state)

	if state.Phase != game.PhaseScoring {
		fmt.Fprintf(w, "Game stopped in phase %s before every card was played\n", state.Phase)
		return nil
	}
	scores, winners, err := rec.Engine().Score(state)
	if err != nil {
		return err
	}
	renderScores(w, scores, winners)
	return nil
}
