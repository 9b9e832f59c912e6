package game

import (
	"fmt"

	"github.com/lox/darkhorse/internal/randutil"
)

const (
	MinPlayers = 2
	MaxPlayers = 6
)

// Allotment is what each player count deals out.
type Allotment struct {
	ActionCards  int // per player
	BettingCards int // per player
	Tokens       int // dark horse tokens on the table
}

var allotments = map[int]Allotment{
	2: {ActionCards: 8, BettingCards: 3, Tokens: 1},
	3: {ActionCards: 7, BettingCards: 2, Tokens: 2},
	4: {ActionCards: 6, BettingCards: 2, Tokens: 2},
	5: {ActionCards: 6, BettingCards: 2, Tokens: 3},
	6: {ActionCards: 5, BettingCards: 2, Tokens: 3},
}

// AllotmentFor returns the deal for a player count.
func AllotmentFor(players int) (Allotment, error) {
	a, ok := allotments[players]
	if !ok {
		return Allotment{}, validationError("allotment", "player count must be between %d and %d, got %d", MinPlayers, MaxPlayers, players)
	}
	return a, nil
}

// InitializeGame shuffles both decks and deals them out in seat order.
// Undealt cards are discarded. The returned state is in PhaseSetup.
func InitializeGame(rng randutil.Source, names []string) (GameState, error) {
	allot, err := AllotmentFor(len(names))
	if err != nil {
		return GameState{}, err
	}

	actionDeck := Shuffle(rng, NewActionDeck())
	bettingDeck := Shuffle(rng, NewBettingDeck())

	players := make([]Player, len(names))
	for i, name := range names {
		a, b := i*allot.ActionCards, i*allot.BettingCards
		players[i] = Player{
			ID:           playerID(i),
			Name:         name,
			ActionCards:  append([]ActionCard(nil), actionDeck[a:a+allot.ActionCards]...),
			BettingCards: append([]BettingCard(nil), bettingDeck[b:b+allot.BettingCards]...),
		}
	}

	return GameState{
		Phase:              PhaseSetup,
		Players:            players,
		AvailableTokens:    allot.Tokens,
		CurrentPlayerIndex: 0,
		PlayedCards:        []ActionCard{},
	}, nil
}

func playerID(seat int) string {
	return fmt.Sprintf("player-%d", seat+1)
}
