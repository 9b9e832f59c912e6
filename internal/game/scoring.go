package game

import (
	"github.com/lox/darkhorse/race"
)

const (
	darkHorseBonus   = 5
	darkHorsePenalty = -3
	darkHorseTopRank = race.Rank(3)
)

// BettingScore is what one betting card earned.
type BettingScore struct {
	Horse  race.HorseNumber `json:"horse"`
	Rank   race.Rank        `json:"rank"`
	Points int              `json:"points"`
}

// PlayerScore is derived at the end of a game and never stored in state.
type PlayerScore struct {
	PlayerID            string         `json:"player_id"`
	PlayerName          string         `json:"player_name"`
	BettingScores       []BettingScore `json:"betting_scores"`
	BaseScore           int            `json:"base_score"`
	HasDoubleBetting    bool           `json:"has_double_betting"`
	DoubleBettingBonus  int            `json:"double_betting_bonus"`
	DarkHorseTokenBonus int            `json:"dark_horse_token_bonus"`
	TotalScore          int            `json:"total_score"`
}

// CalculateBettingScore returns the table points for a single card.
func CalculateBettingScore(rank race.Rank) int {
	return race.Points(rank)
}

// CheckDoubleBetting returns the first horse, in hand order, named by exactly
// two of the cards.
func CheckDoubleBetting(cards []BettingCard) (race.HorseNumber, bool) {
	counts := make(map[race.HorseNumber]int, len(cards))
	for _, c := range cards {
		counts[c.Horse]++
	}
	for _, c := range cards {
		if counts[c.Horse] == 2 {
			return c.Horse, true
		}
	}
	return 0, false
}

// CalculateDarkHorseBonus is +5 for a token holder whose dark horse finishes
// in the top three, -3 otherwise, and 0 without a token.
func CalculateDarkHorseBonus(hasToken bool, darkHorseRank race.Rank) int {
	if !hasToken {
		return 0
	}
	if darkHorseRank <= darkHorseTopRank {
		return darkHorseBonus
	}
	return darkHorsePenalty
}

func checkScorable(op string, s GameState) error {
	if s.Phase != PhaseScoring && s.Phase != PhaseFinished {
		return preconditionError(op, "phase is %s, want %s or %s", s.Phase, PhaseScoring, PhaseFinished)
	}
	if !s.HasDarkHorse() {
		return preconditionError(op, "dark horse not determined")
	}
	return nil
}

// CalculatePlayerScore scores one player. A double bet adds the doubled
// single-card value on top of both cards already counted, so it is worth
// four times the table value in total.
func CalculatePlayerScore(s GameState, playerID string) (PlayerScore, error) {
	const op = "score player"
	if err := checkScorable(op, s); err != nil {
		return PlayerScore{}, err
	}
	idx, ok := s.PlayerIndex(playerID)
	if !ok {
		return PlayerScore{}, validationError(op, "player %q not found", playerID)
	}
	player := s.Players[idx]

	rankOf := func(n race.HorseNumber) (race.Rank, error) {
		rank, ok := s.Horses.RankOf(n)
		if !ok {
			return 0, preconditionError(op, "horse %s is not in the race order", n)
		}
		return rank, nil
	}

	score := PlayerScore{
		PlayerID:      player.ID,
		PlayerName:    player.Name,
		BettingScores: make([]BettingScore, 0, len(player.BettingCards)),
	}
	for _, card := range player.BettingCards {
		rank, err := rankOf(card.Horse)
		if err != nil {
			return PlayerScore{}, err
		}
		points := CalculateBettingScore(rank)
		score.BettingScores = append(score.BettingScores, BettingScore{Horse: card.Horse, Rank: rank, Points: points})
		score.BaseScore += points
	}

	if horse, ok := CheckDoubleBetting(player.BettingCards); ok {
		rank, err := rankOf(horse)
		if err != nil {
			return PlayerScore{}, err
		}
		score.HasDoubleBetting = true
		score.DoubleBettingBonus = CalculateBettingScore(rank) * 2
	}

	darkRank, err := rankOf(s.DarkHorse)
	if err != nil {
		return PlayerScore{}, err
	}
	score.DarkHorseTokenBonus = CalculateDarkHorseBonus(player.HasDarkHorseToken, darkRank)
	score.TotalScore = score.BaseScore + score.DoubleBettingBonus + score.DarkHorseTokenBonus
	return score, nil
}

// CalculateAllScores scores every player in seat order.
func CalculateAllScores(s GameState) ([]PlayerScore, error) {
	if err := checkScorable("score players", s); err != nil {
		return nil, err
	}
	scores := make([]PlayerScore, 0, len(s.Players))
	for _, p := range s.Players {
		score, err := CalculatePlayerScore(s, p.ID)
		if err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	return scores, nil
}

// DetermineWinner returns every score tied at the maximum. Ties are not broken.
func DetermineWinner(scores []PlayerScore) []PlayerScore {
	if len(scores) == 0 {
		return []PlayerScore{}
	}
	best := scores[0].TotalScore
	for _, s := range scores[1:] {
		best = max(best, s.TotalScore)
	}
	var winners []PlayerScore
	for _, s := range scores {
		if s.TotalScore == best {
			winners = append(winners, s)
		}
	}
	return winners
}
