package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/darkhorse/internal/game"
	"github.com/lox/darkhorse/race"
)

// renderRace prints the race order from first place down.
func renderRace(w io.Writer, s game.GameState) {
	fmt.Fprintln(w, titleStyle.Render("Race order"))

	rows := make([][]string, 0, len(s.Horses))
	for i := len(s.Horses) - 1; i >= 0; i-- {
		h := s.Horses[i]
		name := h.Number.String()
		if h.Number == s.DarkHorse {
			name = darkHorseStyle.Render(name + " (dark horse)")
		}
		rank := race.RankAt(i)
		rows = append(rows, []string{strconv.Itoa(int(rank)), name, strconv.Itoa(race.Points(rank))})
	}
	fmt.Fprintln(w, newTable([]string{"Rank", "Horse", "Points"}, nil).Rows(rows...).String())
}

// renderScores prints one row per player, highlighting the winners.
func renderScores(w io.Writer, scores, winners []game.PlayerScore) {
	fmt.Fprintln(w, titleStyle.Render("Scores"))

	won := make(map[string]bool, len(winners))
	for _, p := range winners {
		won[p.PlayerID] = true
	}

	highlight := make(map[int]bool)
	rows := make([][]string, 0, len(scores))
	for i, p := range scores {
		bets := make([]string, len(p.BettingScores))
		for j, b := range p.BettingScores {
			bets[j] = fmt.Sprintf("%s:%d", b.Horse, b.Points)
		}
		double := "-"
		if p.HasDoubleBetting {
			double = "+" + strconv.Itoa(p.DoubleBettingBonus)
		}
		bonus := strconv.Itoa(p.DarkHorseTokenBonus)
		if p.DarkHorseTokenBonus > 0 {
			bonus = "+" + bonus
		}
		if won[p.PlayerID] {
			highlight[i] = true
		}
		rows = append(rows, []string{
			p.PlayerName,
			strings.Join(bets, " "),
			strconv.Itoa(p.BaseScore),
			double,
			bonus,
			strconv.Itoa(p.TotalScore),
		})
	}
	headers := []string{"Player", "Bets", "Base", "Double", "Token", "Total"}
	fmt.Fprintln(w, newTable(headers, highlight).Rows(rows...).String())

	names := make([]string, len(winners))
	for i, p := range winners {
		names[i] = p.PlayerName
	}
	fmt.Fprintf(w, "Winner: %s\n", winnerStyle.Render(strings.Join(names, ", ")))
}

// deckCounts groups identical cards, keeping first-seen order.
func deckCounts[T comparable](cards []T) ([]T, map[T]int) {
	var order []T
	counts := make(map[T]int)
	for _, c := range cards {
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}
	return order, counts
}

func renderDeck(w io.Writer) error {
	actions, actionCounts := deckCounts(game.NewActionDeck())
	rows := make([][]string, 0, len(actions))
	for _, c := range actions {
		rows = append(rows, []string{c.Kind.String(), c.String(), strconv.Itoa(actionCounts[c])})
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Action deck (%d cards)", len(game.NewActionDeck()))))
	fmt.Fprintln(w, newTable([]string{"Kind", "Card", "Copies"}, nil).Rows(rows...).String())

	bets, betCounts := deckCounts(game.NewBettingDeck())
	rows = nil
	for _, b := range bets {
		rows = append(rows, []string{b.Horse.String(), strconv.Itoa(betCounts[b])})
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Betting deck (%d cards)", len(game.NewBettingDeck()))))
	fmt.Fprintln(w, newTable([]string{"Horse", "Copies"}, nil).Rows(rows...).String())

	rows = nil
	for n := game.MinPlayers; n <= game.MaxPlayers; n++ {
		a, err := game.AllotmentFor(n)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			strconv.Itoa(n),
			strconv.Itoa(a.ActionCards),
			strconv.Itoa(a.BettingCards),
			strconv.Itoa(a.Tokens),
		})
	}
	fmt.Fprintln(w, titleStyle.Render("Deal per player count"))
	fmt.Fprintln(w, newTable([]string{"Players", "Action cards", "Betting cards", "Tokens"}, nil).Rows(rows...).String())
	return nil
}
