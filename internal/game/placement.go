package game

import (
	"errors"

	"github.com/lox/darkhorse/race"
)

// AdvanceHorsePlacement moves a freshly dealt game into horse placement.
func AdvanceHorsePlacement(s GameState) (GameState, error) {
	if s.Phase != PhaseSetup {
		return GameState{}, preconditionError("advance horse placement", "phase is %s, want %s", s.Phase, PhaseSetup)
	}
	next := s.Clone()
	next.Phase = PhaseHorsePlacement
	return next, nil
}

// PlaceHorse puts horse n on one end of the developing race order. The
// sixth placement resolves the dark horse and appends it at the best-rank end.
func PlaceHorse(s GameState, n race.HorseNumber, side race.Side) (GameState, error) {
	const op = "place horse"
	if s.Phase != PhaseHorsePlacement {
		return GameState{}, preconditionError(op, "phase is %s, want %s", s.Phase, PhaseHorsePlacement)
	}
	if len(s.Horses) >= race.Count-1 {
		return GameState{}, preconditionError(op, "placement is complete")
	}

	horses, err := s.Horses.Place(n, side)
	switch {
	case errors.Is(err, race.ErrHorsePlaced):
		return GameState{}, wrapError(KindPrecondition, op, err)
	case err != nil:
		return GameState{}, wrapError(KindValidation, op, err)
	}

	next := s.Clone()
	if len(horses) == race.Count-1 {
		dark, err := DetermineDarkHorse(horses)
		if err != nil {
			return GameState{}, err
		}
		horses, err = horses.Place(dark, race.Right)
		if err != nil {
			return GameState{}, wrapError(KindValidation, op, err)
		}
		next.DarkHorse = dark
	}
	next.Horses = horses
	next.HorsesPlaced = len(horses)
	return next, nil
}

// DetermineDarkHorse returns the one horse left unplaced after six placements.
func DetermineDarkHorse(horses race.Order) (race.HorseNumber, error) {
	available := horses.Available()
	if len(available) != 1 {
		return 0, preconditionError("determine dark horse", "need exactly %d horses placed, have %d", race.Count-1, len(horses))
	}
	return available[0], nil
}

// AvailableHorses lists horses still waiting to be placed.
func AvailableHorses(horses race.Order) []race.HorseNumber {
	return horses.Available()
}

// IsPlacementComplete reports whether all seven horses are in the order.
func IsPlacementComplete(horses race.Order) bool {
	return horses.Complete()
}

// StartGame opens play once every horse is placed and the dark horse known.
func StartGame(s GameState) (GameState, error) {
	const op = "start game"
	if s.Phase != PhaseHorsePlacement {
		return GameState{}, preconditionError(op, "phase is %s, want %s", s.Phase, PhaseHorsePlacement)
	}
	if !IsPlacementComplete(s.Horses) {
		return GameState{}, preconditionError(op, "only %d of %d horses placed", len(s.Horses), race.Count)
	}
	if !s.HasDarkHorse() {
		return GameState{}, preconditionError(op, "dark horse not determined")
	}
	next := s.Clone()
	next.Phase = PhasePlaying
	next.TurnPhase = TurnTakeToken
	return next, nil
}
