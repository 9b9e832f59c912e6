package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/darkhorse/race"
)

func TestAlternatingPlacementResolvesDarkHorse(t *testing.T) {
	t.Parallel()

	e := NewEngine(WithSeed(42))
	s, err := e.Apply(GameState{}, Initialize("Alice", "Bob"))
	require.NoError(t, err)
	s, err = e.Apply(s, AdvancePlacement())
	require.NoError(t, err)
	require.Equal(t, PhaseHorsePlacement, s.Phase)

	placed := []race.HorseNumber{2, 5, 1, 7, 3, 6}
	for i, n := range placed {
		side := race.Left
		if i%2 == 1 {
			side = race.Right
		}
		s, err = e.Apply(s, Place(n, side))
		require.NoError(t, err)

		if i < len(placed)-1 {
			assert.False(t, s.HasDarkHorse(), "dark horse set after %d placements", i+1)
			assert.Equal(t, i+1, s.HorsesPlaced)
		}
	}

	assert.Equal(t, race.HorseNumber(4), s.DarkHorse)
	assert.Equal(t, []race.HorseNumber{3, 1, 2, 5, 7, 6, 4}, s.Horses.Numbers())
	assert.Equal(t, 7, s.HorsesPlaced)
	assert.True(t, IsPlacementComplete(s.Horses))

	dark, err := DetermineDarkHorse(s.Horses[:6])
	require.NoError(t, err)
	assert.Equal(t, s.DarkHorse, dark)

	rank, ok := s.Horses.RankOf(s.DarkHorse)
	require.True(t, ok)
	assert.Equal(t, race.Rank(1), rank)

	s, err = e.Apply(s, Start())
	require.NoError(t, err)
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, TurnTakeToken, s.TurnPhase)
}

func TestDetermineDarkHorseNeedsSixHorses(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 3, 5, 7} {
		_, err := DetermineDarkHorse(orderOf(t, race.AllHorses()[:n]...))
		assert.ErrorIs(t, err, ErrPrecondition, "%d horses", n)
	}
}

func TestPlaceHorseErrors(t *testing.T) {
	t.Parallel()

	e := NewEngine(WithSeed(1))
	setup, err := e.Apply(GameState{}, Initialize("A", "B"))
	require.NoError(t, err)

	_, err = PlaceHorse(setup, 1, race.Left)
	assert.ErrorIs(t, err, ErrPrecondition, "placing during setup")

	s, err := AdvanceHorsePlacement(setup)
	require.NoError(t, err)
	_, err = AdvanceHorsePlacement(s)
	assert.ErrorIs(t, err, ErrPrecondition, "advancing twice")

	s, err = PlaceHorse(s, 1, race.Left)
	require.NoError(t, err)

	_, err = PlaceHorse(s, 1, race.Right)
	assert.ErrorIs(t, err, ErrPrecondition, "placing a placed horse")
	_, err = PlaceHorse(s, 9, race.Right)
	assert.ErrorIs(t, err, ErrValidation, "placing horse 9")
	_, err = PlaceHorse(s, 2, race.Side(0))
	assert.ErrorIs(t, err, ErrValidation, "placing with no side")

	complete := placedState(t, e, "A", "B")
	_, err = PlaceHorse(complete, 7, race.Left)
	assert.ErrorIs(t, err, ErrPrecondition, "placing after completion")
}

func TestPlacementSides(t *testing.T) {
	t.Parallel()

	e := NewEngine(WithSeed(1))
	s := placedState(t, e, "A", "B")
	// 1L 2R 3L 4R 5L 6R, then the dark horse at the best-rank end.
	assert.Equal(t, []race.HorseNumber{5, 3, 1, 2, 4, 6, 7}, s.Horses.Numbers())
	for i, h := range s.Horses {
		assert.Equal(t, i, h.Position)
	}
}

func TestStartGamePreconditions(t *testing.T) {
	t.Parallel()

	e := NewEngine(WithSeed(1))
	s, err := e.Apply(GameState{}, Initialize("A", "B"))
	require.NoError(t, err)

	_, err = StartGame(s)
	assert.ErrorIs(t, err, ErrPrecondition, "start from setup")

	s, err = AdvanceHorsePlacement(s)
	require.NoError(t, err)
	s, err = PlaceHorse(s, 1, race.Left)
	require.NoError(t, err)
	_, err = StartGame(s)
	assert.ErrorIs(t, err, ErrPrecondition, "start with one horse")

	full := s
	full.Horses = orderOf(t, 1, 2, 3, 4, 5, 6, 7)
	_, err = StartGame(full)
	assert.True(t, errors.Is(err, ErrPrecondition), "start without dark horse: %v", err)
}

func TestAvailableHorses(t *testing.T) {
	t.Parallel()

	assert.Equal(t, race.AllHorses(), AvailableHorses(nil))
	assert.Equal(t, []race.HorseNumber{2, 4, 6, 7}, AvailableHorses(orderOf(t, 5, 1, 3)))
}
