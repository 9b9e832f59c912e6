package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/darkhorse/internal/randutil"
	"github.com/lox/darkhorse/internal/simulator"
	"github.com/lox/darkhorse/internal/statistics"
	"github.com/lox/darkhorse/race"
)

// SimulateCmd plays many autoplay games and reports seat and score statistics.
type SimulateCmd struct {
	Games   int    `short:"n" help:"Number of games to play" default:"1000"`
	Players int    `short:"p" help:"Players per game" default:"4"`
	Policy  string `help:"Autoplay policy" enum:"first,random" default:"random"`
	Seed    int64  `help:"Seed of the first game (0 picks one)"`
	Workers int    `help:"Parallel games (0 = GOMAXPROCS)"`
}

func (cmd *SimulateCmd) Run(logger *log.Logger) error {
	return cmd.run(context.Background(), os.Stdout, logger)
}

func (cmd *SimulateCmd) run(ctx context.Context, w io.Writer, logger *log.Logger) error {
	seed := cmd.Seed
	if seed == 0 {
		seed = randutil.NewSeed()
	}

	start := time.Now()
	stats, err := simulator.New(simulator.Config{
		Games:   cmd.Games,
		Players: cmd.Players,
		Policy:  cmd.Policy,
		Seed:    seed,
		Workers: cmd.Workers,
		Logger:  logger,
	}).Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("Simulation complete", "games", stats.Games, "duration", time.Since(start))

	fmt.Fprintf(w, "%d games, %d players, %s policy (seeds %d..%d)\n\n",
		stats.Games, cmd.Players, cmd.Policy, seed, seed+int64(stats.Games)-1)
	renderSimulation(w, stats, cmd.Players)
	return nil
}

func renderSimulation(w io.Writer, stats *statistics.Statistics, players int) {
	fmt.Fprintln(w, titleStyle.Render("Seats"))
	rows := make([][]string, 0, players)
	for seat := 0; seat < players; seat++ {
		rows = append(rows, []string{
			strconv.Itoa(seat + 1),
			strconv.Itoa(stats.Seats[seat].Wins),
			fmt.Sprintf("%.1f%%", 100*stats.SeatWinRate(seat)),
			fmt.Sprintf("%.2f", stats.SeatMean(seat)),
		})
	}
	fmt.Fprintln(w, newTable([]string{"Seat", "Wins", "Win rate", "Mean score"}, nil).Rows(rows...).String())

	low, high := stats.ConfidenceInterval95()
	fmt.Fprintln(w, titleStyle.Render("Scores"))
	fmt.Fprintf(w, "Mean %.2f ± %.2f (95%% CI [%.2f, %.2f]), stddev %.2f\n",
		stats.Mean(), stats.StdError(), low, high, stats.StdDev())
	fmt.Fprintf(w, "Median %.1f, p10 %.1f, p90 %.1f\n",
		stats.Median(), stats.Percentile(0.1), stats.Percentile(0.9))
	fmt.Fprintf(w, "Ties %d, double bets %d, tokens %d taken / %d paid (net %+d)\n\n",
		stats.Ties, stats.DoubleBets, stats.TokensTaken, stats.TokensPaid, stats.TokenBonusSum)

	fmt.Fprintln(w, titleStyle.Render("Dark horse finish"))
	rows = nil
	for rank := 1; rank <= race.Count; rank++ {
		n := stats.DarkHorseRanks[rank]
		rows = append(rows, []string{
			strconv.Itoa(rank),
			strconv.Itoa(n),
			fmt.Sprintf("%.1f%%", 100*float64(n)/float64(stats.Games)),
		})
	}
	fmt.Fprintln(w, newTable([]string{"Rank", "Games", "Share"}, nil).Rows(rows...).String())
}
