package game

import "slices"

// Player is one seat at the table. Membership is fixed after setup.
type Player struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	BettingCards      []BettingCard `json:"betting_cards"`
	ActionCards       []ActionCard  `json:"action_cards"`
	HasDarkHorseToken bool          `json:"has_dark_horse_token"`
}

func (p Player) clone() Player {
	p.BettingCards = slices.Clone(p.BettingCards)
	p.ActionCards = slices.Clone(p.ActionCards)
	return p
}
