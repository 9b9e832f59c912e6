package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/darkhorse/internal/randutil"
	"github.com/lox/darkhorse/race"
)

func TestExecuteMovementCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		card   ActionCard
		choice *Choice
		want   []race.HorseNumber
	}{
		{"fixed forward", SingleMove(4, 1, race.Forward), nil, []race.HorseNumber{1, 2, 4, 3, 5, 6, 7}},
		{"fixed backward ignores choice", SingleMove(4, 1, race.Backward), MoveChoice(race.Forward), []race.HorseNumber{1, 2, 3, 5, 4, 6, 7}},
		{"choice forward", SingleMove(5, 2, race.Choice), MoveChoice(race.Forward), []race.HorseNumber{1, 2, 5, 3, 4, 6, 7}},
		{"choice backward", SingleMove(5, 2, race.Choice), MoveChoice(race.Backward), []race.HorseNumber{1, 2, 3, 4, 6, 7, 5}},
		{"dual backward", DualMove(3, 4, 1, race.Choice), MoveChoice(race.Backward), []race.HorseNumber{1, 2, 5, 3, 4, 6, 7}},
		{"rider fall off", RiderFallOffCard(), nil, []race.HorseNumber{5, 1, 2, 3, 4, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := playingState(t, Player{}, Player{})
			next, err := ExecuteActionCard(fixedSource(0), s, tt.card, tt.choice)
			require.NoError(t, err)
			assert.Equal(t, tt.want, next.Horses.Numbers())
			assert.Equal(t, []race.HorseNumber{1, 2, 3, 4, 5, 6, 7}, s.Horses.Numbers(), "previous snapshot modified")
		})
	}
}

func TestExecuteMissingChoice(t *testing.T) {
	t.Parallel()

	s := playingState(t, Player{BettingCards: bets(1, 2)}, Player{BettingCards: bets(3, 4)})

	for _, card := range []ActionCard{SingleMove(1, 2, race.Choice), DualMove(1, 2, 1, race.Choice)} {
		_, err := ExecuteActionCard(fixedSource(0), s, card, nil)
		assert.ErrorIs(t, err, ErrMissingChoice, "%s without choice", card)
		_, err = ExecuteActionCard(fixedSource(0), s, card, &Choice{})
		assert.ErrorIs(t, err, ErrMissingChoice, "%s with empty choice", card)
		_, err = ExecuteActionCard(fixedSource(0), s, card, MoveChoice(race.Choice))
		assert.ErrorIs(t, err, ErrValidation, "%s choosing choice", card)
	}

	_, err := ExecuteActionCard(fixedSource(0), s, ExchangeCard(), nil)
	assert.ErrorIs(t, err, ErrMissingChoice)
	_, err = ExecuteActionCard(fixedSource(0), s, ExchangeCard(), MoveChoice(race.Forward))
	assert.ErrorIs(t, err, ErrMissingChoice)
	assert.Equal(t, KindMissingChoice, KindOf(err))
}

func TestExecuteUnknownHorse(t *testing.T) {
	t.Parallel()

	s := playingState(t, Player{}, Player{})
	s.Horses = orderOf(t, 1, 2, 3)
	_, err := ExecuteActionCard(fixedSource(0), s, SingleMove(6, 1, race.Forward), nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, race.ErrHorseNotFound)
}

func TestExchangeBetting(t *testing.T) {
	t.Parallel()

	s := playingState(t,
		Player{BettingCards: bets(1, 1)},
		Player{BettingCards: bets(2, 3)},
	)

	// Horse 1 is fully held; 2 and 3 are held once and stay in the pool.
	pool := BettingPool(s)
	assert.Equal(t, bets(2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7), pool)

	next, err := ExecuteActionCard(fixedSource(4), s, ExchangeCard(), ExchangeChoice("player-2", 0))
	require.NoError(t, err)
	assert.Equal(t, bets(4, 3), next.Players[1].BettingCards)
	assert.Equal(t, bets(1, 1), next.Players[0].BettingCards)
	assert.Equal(t, bets(2, 3), s.Players[1].BettingCards, "previous snapshot modified")

	self, err := ExecuteExchangeBetting(fixedSource(11), s, "player-1", 1)
	require.NoError(t, err)
	assert.Equal(t, bets(1, 7), self.Players[0].BettingCards)
}

func TestExchangeBettingValidation(t *testing.T) {
	t.Parallel()

	s := playingState(t, Player{BettingCards: bets(1, 2)}, Player{BettingCards: bets(3, 4)})

	_, err := ExecuteExchangeBetting(fixedSource(0), s, "player-9", 0)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = ExecuteExchangeBetting(fixedSource(0), s, "player-1", 2)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = ExecuteExchangeBetting(fixedSource(0), s, "player-1", -1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExchangeBettingEmptyPoolIsNoop(t *testing.T) {
	t.Parallel()

	s := playingState(t,
		Player{BettingCards: bets(1, 1, 2, 2, 3, 3, 4)},
		Player{BettingCards: bets(4, 5, 5, 6, 6, 7, 7)},
	)
	require.Empty(t, BettingPool(s))

	next, err := ExecuteExchangeBetting(fixedSource(0), s, "player-2", 3)
	require.NoError(t, err)
	assert.Equal(t, s, next)
}

func TestExchangeBettingKeepsHandSize(t *testing.T) {
	t.Parallel()

	rng := randutil.New(11)
	s := playingState(t, Player{BettingCards: bets(1, 2)}, Player{BettingCards: bets(3, 4)}, Player{BettingCards: bets(5, 6)})
	for range 200 {
		var err error
		target := playerID(rng.IntN(3))
		s, err = ExecuteExchangeBetting(rng, s, target, rng.IntN(2))
		require.NoError(t, err)

		held := make(map[race.HorseNumber]int)
		for _, p := range s.Players {
			require.Len(t, p.BettingCards, 2)
			for _, c := range p.BettingCards {
				held[c.Horse]++
				require.LessOrEqual(t, held[c.Horse], 2, "horse %s held three times", c.Horse)
			}
		}
	}
}
