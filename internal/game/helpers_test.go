package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/darkhorse/race"
)

// fixedSource always draws the same value, reduced into range.
type fixedSource int

func (f fixedSource) IntN(n int) int {
	return int(f) % n
}

func orderOf(t *testing.T, numbers ...race.HorseNumber) race.Order {
	t.Helper()
	var o race.Order
	for _, n := range numbers {
		var err error
		o, err = o.Place(n, race.Right)
		require.NoError(t, err)
	}
	return o
}

func bets(horses ...race.HorseNumber) []BettingCard {
	cards := make([]BettingCard, len(horses))
	for i, h := range horses {
		cards[i] = BettingCard{Horse: h}
	}
	return cards
}

// playingState builds a game in the take_token step with every horse placed
// in numeric order and horse 7 as the dark horse.
func playingState(t *testing.T, players ...Player) GameState {
	t.Helper()
	for i := range players {
		if players[i].ID == "" {
			players[i].ID = playerID(i)
		}
	}
	return GameState{
		Phase:           PhasePlaying,
		TurnPhase:       TurnTakeToken,
		Players:         players,
		Horses:          orderOf(t, 1, 2, 3, 4, 5, 6, 7),
		DarkHorse:       7,
		AvailableTokens: 1,
		PlayedCards:     []ActionCard{},
		HorsesPlaced:    race.Count,
	}
}

// placedState initializes a game and places horses 1..6 alternating left and
// right, leaving horse 7 as the dark horse.
func placedState(t *testing.T, e *Engine, names ...string) GameState {
	t.Helper()
	s, err := e.Apply(GameState{}, Initialize(names...))
	require.NoError(t, err)
	s, err = e.Apply(s, AdvancePlacement())
	require.NoError(t, err)
	for i, n := range []race.HorseNumber{1, 2, 3, 4, 5, 6} {
		side := race.Left
		if i%2 == 1 {
			side = race.Right
		}
		s, err = e.Apply(s, Place(n, side))
		require.NoError(t, err)
	}
	return s
}
