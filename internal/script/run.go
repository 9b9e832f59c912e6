package script

import (
	"fmt"

	"github.com/lox/darkhorse/internal/game"
	"github.com/lox/darkhorse/race"
)

// Dispatcher applies one action and returns the resulting snapshot.
// *replay.Recorder satisfies it.
type Dispatcher interface {
	Dispatch(a game.Action) (game.GameState, error)
}

// Policy picks the turns autoplay takes once the scripted ones run out.
type Policy interface {
	NextTurn(s game.GameState) Turn
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(s game.GameState) Turn

func (f PolicyFunc) NextTurn(s game.GameState) Turn { return f(s) }

// FirstCard plays the first card in hand, moves forward when given the
// choice, exchanges the player's own first betting card and takes a dark
// horse token whenever one is available.
var FirstCard Policy = PolicyFunc(func(s game.GameState) Turn {
	return Turn{TakeToken: game.CanTakeDarkHorseToken(s), Direction: race.Forward.String()}
})

// Run plays s through d with the FirstCard autoplay policy.
func Run(d Dispatcher, s *Script) (game.GameState, error) {
	return RunWithPolicy(d, s, FirstCard)
}

// RunWithPolicy plays s through d and returns the last snapshot. A game whose
// hands are all empty once the listed turns are played is ended; otherwise
// the state is returned mid-game.
func RunWithPolicy(d Dispatcher, s *Script, policy Policy) (game.GameState, error) {
	state, err := d.Dispatch(game.Initialize(s.Players...))
	if err != nil {
		return game.GameState{}, fmt.Errorf("initialize: %w", err)
	}
	if state, err = d.Dispatch(game.AdvancePlacement()); err != nil {
		return game.GameState{}, fmt.Errorf("advance placement: %w", err)
	}

	for i, p := range s.Placements {
		side, err := race.ParseSide(p.Side)
		if err != nil {
			return game.GameState{}, fmt.Errorf("place %d: %w", i+1, err)
		}
		if state, err = d.Dispatch(game.Place(race.HorseNumber(p.Horse), side)); err != nil {
			return game.GameState{}, fmt.Errorf("place %d: %w", i+1, err)
		}
	}
	if s.Autoplay {
		for len(state.Horses) < race.Count-1 {
			side := race.Left
			if len(state.Horses)%2 == 1 {
				side = race.Right
			}
			next := game.AvailableHorses(state.Horses)[0]
			if state, err = d.Dispatch(game.Place(next, side)); err != nil {
				return game.GameState{}, fmt.Errorf("autoplace %s: %w", next, err)
			}
		}
	}
	if state, err = d.Dispatch(game.Start()); err != nil {
		return game.GameState{}, fmt.Errorf("start: %w", err)
	}

	for i, t := range s.Turns {
		if state, err = playTurn(d, state, t); err != nil {
			return game.GameState{}, fmt.Errorf("turn %d: %w", i+1, err)
		}
	}
	if s.Autoplay {
		for n := len(s.Turns) + 1; !game.IsGameOver(state); n++ {
			if state, err = playTurn(d, state, policy.NextTurn(state)); err != nil {
				return game.GameState{}, fmt.Errorf("autoplay turn %d: %w", n, err)
			}
		}
	}

	if game.IsGameOver(state) {
		if state, err = d.Dispatch(game.End()); err != nil {
			return game.GameState{}, fmt.Errorf("end: %w", err)
		}
	}
	return state, nil
}

func playTurn(d Dispatcher, state game.GameState, t Turn) (game.GameState, error) {
	var err error
	token := game.SkipToken()
	if t.TakeToken {
		token = game.TakeToken()
	}
	if state, err = d.Dispatch(token); err != nil {
		return game.GameState{}, err
	}

	player, ok := state.CurrentPlayer()
	if !ok {
		return game.GameState{}, fmt.Errorf("no current player")
	}
	hand := player.ActionCards
	if state, err = d.Dispatch(game.Play(t.Card)); err != nil {
		return game.GameState{}, err
	}
	card := hand[t.Card]

	choice, err := choiceFor(state, player, card, t)
	if err != nil {
		return game.GameState{}, err
	}
	if state, err = d.Dispatch(game.Execute(card, choice)); err != nil {
		return game.GameState{}, fmt.Errorf("%s: %w", card, err)
	}
	return d.Dispatch(game.Next())
}

func choiceFor(state game.GameState, player game.Player, card game.ActionCard, t Turn) (*game.Choice, error) {
	if card.Kind == game.ExchangeBetting {
		target := player.ID
		if t.Target != "" {
			target = resolvePlayer(state, t.Target)
		}
		return game.ExchangeChoice(target, t.TargetCard), nil
	}
	if !card.NeedsChoice() {
		return nil, nil
	}
	dir, err := race.ParseDirection(t.Direction)
	if err != nil {
		return nil, err
	}
	return game.MoveChoice(dir), nil
}

// resolvePlayer maps a player name to its ID. Anything else is passed
// through for the engine to validate.
func resolvePlayer(state game.GameState, target string) string {
	for _, p := range state.Players {
		if p.Name == target {
			return p.ID
		}
	}
	return target
}
