package game

import (
	"github.com/lox/darkhorse/race"
)

// ActionType names a member of the closed action alphabet.
type ActionType string

const (
	ActionInitializeGame        ActionType = "INITIALIZE_GAME"
	ActionAdvanceHorsePlacement ActionType = "ADVANCE_HORSE_PLACEMENT"
	ActionPlaceHorse            ActionType = "PLACE_HORSE"
	ActionStartGame             ActionType = "START_GAME"
	ActionTakeDarkHorseToken    ActionType = "TAKE_DARK_HORSE_TOKEN"
	ActionSkipDarkHorseToken    ActionType = "SKIP_DARK_HORSE_TOKEN"
	ActionPlayActionCard        ActionType = "PLAY_ACTION_CARD"
	ActionExecuteActionCard     ActionType = "EXECUTE_ACTION_CARD"
	ActionNextTurn              ActionType = "NEXT_TURN"
	ActionEndGame               ActionType = "END_GAME"
)

// Action is one dispatched transition. Only the fields relevant to Type are
// read.
type Action struct {
	Type        ActionType       `json:"type"`
	PlayerNames []string         `json:"player_names,omitempty"`
	Horse       race.HorseNumber `json:"horse,omitempty"`
	Side        race.Side        `json:"side,omitzero"`
	CardIndex   int              `json:"card_index,omitempty"`
	Card        *ActionCard      `json:"card,omitempty"`
	Choice      *Choice          `json:"choice,omitempty"`
}

// Initialize and the constructors below build each member of the alphabet.
func Initialize(names ...string) Action {
	return Action{Type: ActionInitializeGame, PlayerNames: names}
}

func AdvancePlacement() Action {
	return Action{Type: ActionAdvanceHorsePlacement}
}

func Place(n race.HorseNumber, side race.Side) Action {
	return Action{Type: ActionPlaceHorse, Horse: n, Side: side}
}

func Start() Action {
	return Action{Type: ActionStartGame}
}

func TakeToken() Action {
	return Action{Type: ActionTakeDarkHorseToken}
}

func SkipToken() Action {
	return Action{Type: ActionSkipDarkHorseToken}
}

func Play(cardIndex int) Action {
	return Action{Type: ActionPlayActionCard, CardIndex: cardIndex}
}

func Execute(card ActionCard, choice *Choice) Action {
	return Action{Type: ActionExecuteActionCard, Card: &card, Choice: choice}
}

func Next() Action {
	return Action{Type: ActionNextTurn}
}

func End() Action {
	return Action{Type: ActionEndGame}
}
