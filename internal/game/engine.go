package game

import (
	"github.com/charmbracelet/log"

	"github.com/lox/darkhorse/internal/randutil"
)

// Engine applies actions to snapshots. It holds the random source, which
// advances on every shuffle and exchange draw, so an Engine must only be
// driven from one goroutine at a time.
type Engine struct {
	rng    randutil.Source
	logger *log.Logger
}

// NewEngine creates an engine. Without WithRand or WithSeed it seeds itself
// from the runtime generator.
func NewEngine(opts ...Option) *Engine {
	cfg := newConfig(opts)
	return &Engine{
		rng:    cfg.rng,
		logger: cfg.logger,
	}
}

// Apply runs one action against s and returns the next snapshot. s is never
// modified. INITIALIZE_GAME ignores s; every other action needs a started game.
func (e *Engine) Apply(s GameState, a Action) (GameState, error) {
	next, err := e.apply(s, a)
	if err != nil {
		e.logger.Debug("Action rejected", "action", a.Type, "error", err)
		return GameState{}, err
	}
	e.logger.Debug("Action applied",
		"action", a.Type,
		"phase", next.Phase,
		"turn", next.TurnPhase,
		"player", next.CurrentPlayerIndex,
		"order", next.Horses.Numbers())
	return next, nil
}

func (e *Engine) apply(s GameState, a Action) (GameState, error) {
	if a.Type == ActionInitializeGame {
		return InitializeGame(e.rng, a.PlayerNames)
	}
	if !s.Started() {
		return GameState{}, preconditionError(string(a.Type), "game not initialized")
	}

	switch a.Type {
	case ActionAdvanceHorsePlacement:
		return AdvanceHorsePlacement(s)

	case ActionPlaceHorse:
		return PlaceHorse(s, a.Horse, a.Side)

	case ActionStartGame:
		return StartGame(s)

	case ActionTakeDarkHorseToken:
		if err := requireTurnPhase(s, a.Type, TurnTakeToken); err != nil {
			return GameState{}, err
		}
		next, err := TakeDarkHorseToken(s)
		if err != nil {
			return GameState{}, err
		}
		e.logger.Debug("Dark horse token taken", "player", next.Players[next.CurrentPlayerIndex].ID, "remaining", next.AvailableTokens)
		return AdvanceTurnPhase(next), nil

	case ActionSkipDarkHorseToken:
		if err := requireTurnPhase(s, a.Type, TurnTakeToken); err != nil {
			return GameState{}, err
		}
		return AdvanceTurnPhase(s), nil

	case ActionPlayActionCard:
		if err := requireTurnPhase(s, a.Type, TurnPlayCard); err != nil {
			return GameState{}, err
		}
		next, card, err := PlayActionCard(s, a.CardIndex)
		if err != nil {
			return GameState{}, err
		}
		e.logger.Debug("Card played", "player", next.Players[next.CurrentPlayerIndex].ID, "card", card)
		return AdvanceTurnPhase(next), nil

	case ActionExecuteActionCard:
		if err := requireTurnPhase(s, a.Type, TurnExecuteCard); err != nil {
			return GameState{}, err
		}
		if a.Card == nil {
			return GameState{}, validationError(string(a.Type), "no card given")
		}
		next, err := ExecuteActionCard(e.rng, s, *a.Card, a.Choice)
		if err != nil {
			return GameState{}, err
		}
		return AdvanceTurnPhase(next), nil

	case ActionNextTurn:
		return NextTurn(s)

	case ActionEndGame:
		return EndGame(s)
	}

	return GameState{}, validationError("apply", "unknown action %q", a.Type)
}

func requireTurnPhase(s GameState, action ActionType, want TurnPhase) error {
	if s.Phase != PhasePlaying {
		return preconditionError(string(action), "phase is %s, want %s", s.Phase, PhasePlaying)
	}
	if s.TurnPhase != want {
		return preconditionError(string(action), "turn phase is %s, want %s", s.TurnPhase, want)
	}
	return nil
}

// Score computes every player's final score and the winners.
func (e *Engine) Score(s GameState) ([]PlayerScore, []PlayerScore, error) {
	scores, err := CalculateAllScores(s)
	if err != nil {
		return nil, nil, err
	}
	winners := DetermineWinner(scores)
	for _, w := range winners {
		e.logger.Info("Winner", "player", w.PlayerName, "score", w.TotalScore)
	}
	return scores, winners, nil
}
