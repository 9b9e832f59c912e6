package game

import (
	"slices"

	"github.com/lox/darkhorse/race"
)

// Phase is the stage of the whole game.
type Phase string

const (
	PhaseSetup          Phase = "setup"
	PhaseHorsePlacement Phase = "horse_placement"
	PhasePlaying        Phase = "playing"
	PhaseScoring        Phase = "scoring"
	PhaseFinished       Phase = "finished"
)

// TurnPhase is the step within a turn. Empty outside PhasePlaying.
type TurnPhase string

const (
	TurnNone        TurnPhase = ""
	TurnTakeToken   TurnPhase = "take_token"
	TurnPlayCard    TurnPhase = "play_card"
	TurnExecuteCard TurnPhase = "execute_card"
)

// GameState is an immutable snapshot. Transitions return a new value and
// never write through to slices held by an earlier snapshot.
type GameState struct {
	Phase              Phase            `json:"phase"`
	TurnPhase          TurnPhase        `json:"turn_phase,omitempty"`
	Players            []Player         `json:"players"`
	Horses             race.Order       `json:"horses"`
	DarkHorse          race.HorseNumber `json:"dark_horse,omitempty"`
	AvailableTokens    int              `json:"available_tokens"`
	CurrentPlayerIndex int              `json:"current_player_index"`
	PlayedCards        []ActionCard     `json:"played_cards"`
	HorsesPlaced       int              `json:"horses_placed"`
}

// Clone returns a deep copy of s.
func (s GameState) Clone() GameState {
	out := s
	if s.Players != nil {
		out.Players = make([]Player, len(s.Players))
		for i, p := range s.Players {
			out.Players[i] = p.clone()
		}
	}
	out.Horses = s.Horses.Clone()
	out.PlayedCards = slices.Clone(s.PlayedCards)
	return out
}

// Started reports whether the snapshot came out of InitializeGame.
func (s GameState) Started() bool {
	return s.Phase != ""
}

// HasDarkHorse reports whether the dark horse has been resolved.
func (s GameState) HasDarkHorse() bool {
	return s.DarkHorse != 0
}

// CurrentPlayer returns the player whose turn it is.
func (s GameState) CurrentPlayer() (Player, bool) {
	if s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return Player{}, false
	}
	return s.Players[s.CurrentPlayerIndex], true
}

// PlayerIndex returns the seat of the player with the given id.
func (s GameState) PlayerIndex(id string) (int, bool) {
	idx := slices.IndexFunc(s.Players, func(p Player) bool { return p.ID == id })
	return idx, idx >= 0
}
