package game

import (
	"fmt"
	"slices"

	"github.com/lox/darkhorse/internal/randutil"
	"github.com/lox/darkhorse/race"
)

// CardKind tags the four action card shapes.
type CardKind uint8

const (
	SingleMovement CardKind = iota + 1
	DualMovement
	RiderFallOff
	ExchangeBetting
)

var cardKindNames = map[CardKind]string{
	SingleMovement:  "single_movement",
	DualMovement:    "dual_movement",
	RiderFallOff:    "rider_fall_off",
	ExchangeBetting: "exchange_betting",
}

func (k CardKind) String() string {
	if name, ok := cardKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("card_kind(%d)", uint8(k))
}

func (k CardKind) MarshalText() ([]byte, error) {
	name, ok := cardKindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown card kind %d", uint8(k))
	}
	return []byte(name), nil
}

func (k *CardKind) UnmarshalText(text []byte) error {
	for kind, name := range cardKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown card kind %q", text)
}

// ActionCard is a closed variant keyed by Kind. Movement cards use Horses,
// Spaces and Direction; single movement cards leave Horses[1] zero. The other
// two kinds carry no fields. ActionCard is comparable.
type ActionCard struct {
	Kind      CardKind            `json:"kind"`
	Horses    [2]race.HorseNumber `json:"horses,omitzero"`
	Spaces    int                 `json:"spaces,omitempty"`
	Direction race.Direction      `json:"direction,omitzero"`
}

// SingleMove builds a card moving one horse.
func SingleMove(horse race.HorseNumber, spaces int, dir race.Direction) ActionCard {
	return ActionCard{Kind: SingleMovement, Horses: [2]race.HorseNumber{horse}, Spaces: spaces, Direction: dir}
}

// DualMove builds a card moving two horses the same way.
func DualMove(a, b race.HorseNumber, spaces int, dir race.Direction) ActionCard {
	return ActionCard{Kind: DualMovement, Horses: [2]race.HorseNumber{a, b}, Spaces: spaces, Direction: dir}
}

// RiderFallOffCard builds a rider fall off card.
func RiderFallOffCard() ActionCard {
	return ActionCard{Kind: RiderFallOff}
}

// ExchangeCard builds an exchange betting card.
func ExchangeCard() ActionCard {
	return ActionCard{Kind: ExchangeBetting}
}

// MovedHorses returns the horses a movement card moves, nil for other kinds.
func (c ActionCard) MovedHorses() []race.HorseNumber {
	switch c.Kind {
	case SingleMovement:
		return []race.HorseNumber{c.Horses[0]}
	case DualMovement:
		return []race.HorseNumber{c.Horses[0], c.Horses[1]}
	}
	return nil
}

// NeedsChoice reports whether executing c requires an extra choice payload.
func (c ActionCard) NeedsChoice() bool {
	switch c.Kind {
	case SingleMovement, DualMovement:
		return c.Direction == race.Choice
	case ExchangeBetting:
		return true
	}
	return false
}

func (c ActionCard) String() string {
	sign := map[race.Direction]string{race.Forward: "+", race.Backward: "-", race.Choice: "±"}[c.Direction]
	switch c.Kind {
	case SingleMovement:
		return fmt.Sprintf("%s %s%d", c.Horses[0], sign, c.Spaces)
	case DualMovement:
		return fmt.Sprintf("%s&%s %s%d", c.Horses[0], c.Horses[1], sign, c.Spaces)
	case RiderFallOff:
		return "Rider fall off"
	case ExchangeBetting:
		return "Exchange"
	}
	return c.Kind.String()
}

// BettingCard names the horse a player is backing.
type BettingCard struct {
	Horse race.HorseNumber `json:"horse"`
}

func (b BettingCard) String() string {
	return "bet " + b.Horse.String()
}

// dualPairs are the only horse pairs printed on dual movement cards.
var dualPairs = [][2]race.HorseNumber{{1, 2}, {3, 4}, {5, 6}, {2, 7}, {4, 6}}

const (
	riderFallOffCopies = 4
	exchangeCopies     = 3
	bettingCopies      = 2
)

// NewActionDeck builds the 33 action cards in a fixed, unshuffled order.
func NewActionDeck() []ActionCard {
	deck := make([]ActionCard, 0, 33)
	for _, h := range race.AllHorses() {
		deck = append(deck,
			SingleMove(h, 1, race.Forward),
			SingleMove(h, 1, race.Backward),
		)
	}
	for _, h := range race.AllHorses() {
		deck = append(deck, SingleMove(h, 2, race.Choice))
	}
	for _, pair := range dualPairs {
		deck = append(deck, DualMove(pair[0], pair[1], 1, race.Choice))
	}
	for range riderFallOffCopies {
		deck = append(deck, RiderFallOffCard())
	}
	for range exchangeCopies {
		deck = append(deck, ExchangeCard())
	}
	return deck
}

// NewBettingDeck builds the 14 betting cards, two per horse.
func NewBettingDeck() []BettingCard {
	deck := make([]BettingCard, 0, race.Count*bettingCopies)
	for _, h := range race.AllHorses() {
		for range bettingCopies {
			deck = append(deck, BettingCard{Horse: h})
		}
	}
	return deck
}

// Shuffle returns a Fisher-Yates permutation of cards drawn from rng.
// The input is left untouched.
func Shuffle[T any](rng randutil.Source, cards []T) []T {
	shuffled := slices.Clone(cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
