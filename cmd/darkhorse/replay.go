package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/darkhorse/internal/game"
	"github.com/lox/darkhorse/internal/replay"
)

// ReplayCmd re-runs saved logs against fresh engines.
type ReplayCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Replay logs written by play --replay"`
}

type verifyResult struct {
	log replay.Log
	err error
}

func (cmd *ReplayCmd) Run(logger *log.Logger) error {
	return cmd.run(os.Stdout, logger)
}

func (cmd *ReplayCmd) run(w io.Writer, logger *log.Logger) error {
	results := make([]verifyResult, len(cmd.Files))

	// Each log gets its own engine, so files verify independently.
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range cmd.Files {
		g.Go(func() error {
			l, err := replay.Load(path)
			if err == nil {
				err = replay.Verify(l, game.WithLogger(logger.With("game", l.GameID)))
			}
			results[i] = verifyResult{log: l, err: err}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		status := okStyle.Render("ok")
		if r.err != nil {
			failed++
			status = failStyle.Render("FAIL")
			logger.Error("Replay failed verification", "file", cmd.Files[i], "error", r.err)
		}
		rows = append(rows, []string{cmd.Files[i], r.log.GameID, strconv.Itoa(len(r.log.Entries)), status})
	}
	fmt.Fprintln(w, newTable([]string{"File", "Game", "Actions", "Status"}, nil).Rows(rows...).String())

	if failed > 0 {
		return fmt.Errorf("%d of %d replays failed verification", failed, len(results))
	}
	return nil
}
