package game

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/darkhorse/internal/randutil"
)

func TestAllotmentTable(t *testing.T) {
	t.Parallel()

	want := map[int]Allotment{
		2: {8, 3, 1},
		3: {7, 2, 2},
		4: {6, 2, 2},
		5: {6, 2, 3},
		6: {5, 2, 3},
	}
	for n, w := range want {
		got, err := AllotmentFor(n)
		require.NoError(t, err)
		assert.Equal(t, w, got, "%d players", n)
		assert.LessOrEqual(t, got.ActionCards*n, len(NewActionDeck()))
		assert.LessOrEqual(t, got.BettingCards*n, len(NewBettingDeck()))
	}
}

func TestInitializeGameRejectsPlayerCount(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 7, 8} {
		names := make([]string, n)
		_, err := InitializeGame(randutil.New(1), names)
		require.Error(t, err, "%d players", n)
		assert.True(t, errors.Is(err, ErrValidation), "%d players: %v", n, err)
	}
}

func TestInitializeGameDeals(t *testing.T) {
	t.Parallel()

	for n := MinPlayers; n <= MaxPlayers; n++ {
		t.Run(fmt.Sprintf("%d players", n), func(t *testing.T) {
			t.Parallel()

			names := make([]string, n)
			for i := range names {
				names[i] = fmt.Sprintf("P%d", i+1)
			}
			allot, err := AllotmentFor(n)
			require.NoError(t, err)

			s, err := InitializeGame(randutil.New(int64(n)), names)
			require.NoError(t, err)

			assert.Equal(t, PhaseSetup, s.Phase)
			assert.Equal(t, TurnNone, s.TurnPhase)
			assert.Empty(t, s.Horses)
			assert.False(t, s.HasDarkHorse())
			assert.Equal(t, allot.Tokens, s.AvailableTokens)
			assert.Equal(t, 0, s.CurrentPlayerIndex)
			assert.Empty(t, s.PlayedCards)

			actionLeft := make(map[ActionCard]int)
			for _, c := range NewActionDeck() {
				actionLeft[c]++
			}
			bettingLeft := make(map[BettingCard]int)
			for _, c := range NewBettingDeck() {
				bettingLeft[c]++
			}

			for i, p := range s.Players {
				assert.Equal(t, fmt.Sprintf("player-%d", i+1), p.ID)
				assert.Equal(t, names[i], p.Name)
				assert.False(t, p.HasDarkHorseToken)
				require.Len(t, p.ActionCards, allot.ActionCards)
				require.Len(t, p.BettingCards, allot.BettingCards)

				// No card may be dealt more times than the deck holds it.
				for _, c := range p.ActionCards {
					actionLeft[c]--
					assert.GreaterOrEqual(t, actionLeft[c], 0, "action card %s dealt twice", c)
				}
				for _, c := range p.BettingCards {
					bettingLeft[c]--
					assert.GreaterOrEqual(t, bettingLeft[c], 0, "betting card %s dealt three times", c)
				}
			}
		})
	}
}

func TestInitializeGameIsDeterministic(t *testing.T) {
	t.Parallel()

	a, err := InitializeGame(randutil.New(5), []string{"A", "B", "C"})
	require.NoError(t, err)
	b, err := InitializeGame(randutil.New(5), []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestInitializeGameHandsDoNotShareStorage(t *testing.T) {
	t.Parallel()

	s, err := InitializeGame(randutil.New(3), []string{"A", "B"})
	require.NoError(t, err)

	first := s.Players[1].ActionCards[0]
	s.Players[0].ActionCards = append(s.Players[0].ActionCards, ExchangeCard())
	assert.Equal(t, first, s.Players[1].ActionCards[0])
}
