package game

import (
	"github.com/lox/darkhorse/internal/randutil"
	"github.com/lox/darkhorse/race"
)

// Choice is the extra payload some cards need. Movement cards printed with
// race.Choice read Direction; exchange cards read TargetPlayerID and
// CardIndex. A nil *Choice means none was made.
type Choice struct {
	Direction      race.Direction `json:"direction,omitzero"`
	TargetPlayerID string         `json:"target_player_id,omitempty"`
	CardIndex      int            `json:"card_index,omitempty"`
}

// MoveChoice is shorthand for a direction choice.
func MoveChoice(dir race.Direction) *Choice {
	return &Choice{Direction: dir}
}

// ExchangeChoice is shorthand for an exchange target.
func ExchangeChoice(targetPlayerID string, cardIndex int) *Choice {
	return &Choice{TargetPlayerID: targetPlayerID, CardIndex: cardIndex}
}

// ExecuteActionCard applies card to s. rng is only drawn from by exchange
// cards.
func ExecuteActionCard(rng randutil.Source, s GameState, card ActionCard, choice *Choice) (GameState, error) {
	const op = "execute action card"

	switch card.Kind {
	case SingleMovement, DualMovement:
		dir, err := movementDirection(card, choice)
		if err != nil {
			return GameState{}, err
		}
		var horses race.Order
		if card.Kind == SingleMovement {
			horses, err = s.Horses.Move(card.Horses[0], card.Spaces, dir)
		} else {
			horses, err = s.Horses.MoveMany(card.MovedHorses(), card.Spaces, dir)
		}
		if err != nil {
			return GameState{}, wrapError(KindValidation, op, err)
		}
		next := s.Clone()
		next.Horses = horses
		return next, nil

	case RiderFallOff:
		next := s.Clone()
		next.Horses = s.Horses.RiderFallOff()
		return next, nil

	case ExchangeBetting:
		if choice == nil || choice.TargetPlayerID == "" {
			return GameState{}, missingChoiceError(op, "exchange betting needs a target player and card")
		}
		return ExecuteExchangeBetting(rng, s, choice.TargetPlayerID, choice.CardIndex)
	}

	return GameState{}, validationError(op, "unknown card kind %s", card.Kind)
}

func movementDirection(card ActionCard, choice *Choice) (race.Direction, error) {
	const op = "execute action card"
	if card.Direction != race.Choice {
		if !card.Direction.Concrete() {
			return 0, validationError(op, "card %s has no direction", card)
		}
		return card.Direction, nil
	}
	if choice == nil || choice.Direction == 0 {
		return 0, missingChoiceError(op, "card %s needs a direction", card)
	}
	if !choice.Direction.Concrete() {
		return 0, validationError(op, "direction %s is not forward or backward", choice.Direction)
	}
	return choice.Direction, nil
}

// ExecuteExchangeBetting swaps the target player's betting card at cardIndex
// for one drawn uniformly from the pool. The pool is every card of the
// betting deck whose horse is held fewer than two times across all hands;
// an empty pool leaves the state as it was. Any player may be targeted,
// including the one playing the card.
func ExecuteExchangeBetting(rng randutil.Source, s GameState, targetPlayerID string, cardIndex int) (GameState, error) {
	const op = "exchange betting"

	target, ok := s.PlayerIndex(targetPlayerID)
	if !ok {
		return GameState{}, validationError(op, "player %q not found", targetPlayerID)
	}
	hand := s.Players[target].BettingCards
	if cardIndex < 0 || cardIndex >= len(hand) {
		return GameState{}, validationError(op, "card index %d out of range [0,%d)", cardIndex, len(hand))
	}

	pool := BettingPool(s)
	next := s.Clone()
	if len(pool) == 0 {
		return next, nil
	}
	next.Players[target].BettingCards[cardIndex] = pool[rng.IntN(len(pool))]
	return next, nil
}

// BettingPool lists the betting cards an exchange can currently draw.
func BettingPool(s GameState) []BettingCard {
	held := make(map[race.HorseNumber]int, race.Count)
	for _, p := range s.Players {
		for _, c := range p.BettingCards {
			held[c.Horse]++
		}
	}

	var pool []BettingCard
	for _, c := range NewBettingDeck() {
		if held[c.Horse] < bettingCopies {
			pool = append(pool, c)
		}
	}
	return pool
}
