package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/darkhorse/internal/game"
	"github.com/lox/darkhorse/race"
)

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Seed          int64              // Engine seed, for replay
	DarkHorseRank race.Rank          // Where the dark horse finished
	Scores        []game.PlayerScore // In seat order
	Winners       []string           // Player IDs, more than one on a tie
}

// SeatStats tracks results for one seat across games.
type SeatStats struct {
	Games    int
	Wins     int
	SumScore float64
}

// Statistics aggregates simulated games. Score moments are taken over every
// seat of every game.
type Statistics struct {
	Games     int
	Results   int       // Player results, one per seat per game
	SumScore  float64   // Sum of every total score
	SumScore2 float64   // Sum of squares for variance calculation
	Values    []float64 // All scores for median/percentile calculation

	// Games with more than one winner
	Ties int
	// Results that earned the double betting bonus
	DoubleBets int

	TokensTaken   int
	TokensPaid    int // Tokens that earned the bonus rather than the penalty
	TokenBonusSum int // Net of bonuses and penalties

	DarkHorseRanks [race.Count + 1]int // Index 0 unused

	Seats [game.MaxPlayers]SeatStats
}

// Mean returns the arithmetic mean score per player result.
func (s *Statistics) Mean() float64 {
	if s.Results == 0 {
		return 0
	}
	return s.SumScore / float64(s.Results)
}

// Variance returns the sample variance of all scores.
func (s *Statistics) Variance() float64 {
	if s.Results < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumScore2 - float64(s.Results)*mean*mean) / float64(s.Results-1)
}

// StdDev returns the sample standard deviation of all scores.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Results == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Results))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates one game.
func (s *Statistics) Add(result GameResult) {
	s.Games++
	if len(result.Winners) > 1 {
		s.Ties++
	}
	if result.DarkHorseRank >= 1 && int(result.DarkHorseRank) <= race.Count {
		s.DarkHorseRanks[result.DarkHorseRank]++
	}

	won := make(map[string]bool, len(result.Winners))
	for _, id := range result.Winners {
		won[id] = true
	}

	for seat, p := range result.Scores {
		score := float64(p.TotalScore)
		s.Results++
		s.SumScore += score
		s.SumScore2 += score * score
		s.Values = append(s.Values, score)

		if p.HasDoubleBetting {
			s.DoubleBets++
		}
		if p.DarkHorseTokenBonus != 0 {
			s.TokensTaken++
			s.TokenBonusSum += p.DarkHorseTokenBonus
			if p.DarkHorseTokenBonus > 0 {
				s.TokensPaid++
			}
		}

		if seat < len(s.Seats) {
			s.Seats[seat].Games++
			s.Seats[seat].SumScore += score
			if won[p.PlayerID] {
				s.Seats[seat].Wins++
			}
		}
	}
}

// Median returns the median score.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the score at the given percentile (0.0 to 1.0).
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// SeatMean returns the mean score for a zero-based seat.
func (s *Statistics) SeatMean(seat int) float64 {
	if seat < 0 || seat >= len(s.Seats) || s.Seats[seat].Games == 0 {
		return 0
	}
	return s.Seats[seat].SumScore / float64(s.Seats[seat].Games)
}

// SeatWinRate returns the share of games a seat won, ties included.
func (s *Statistics) SeatWinRate(seat int) float64 {
	if seat < 0 || seat >= len(s.Seats) || s.Seats[seat].Games == 0 {
		return 0
	}
	return float64(s.Seats[seat].Wins) / float64(s.Seats[seat].Games)
}

// Validate checks the counters agree with each other.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Results {
		return fmt.Errorf("values array length (%d) does not match results count (%d)",
			len(s.Values), s.Results)
	}

	ranked := 0
	for _, n := range s.DarkHorseRanks {
		ranked += n
	}
	if ranked != s.Games {
		return fmt.Errorf("dark horse ranks total (%d) does not match games (%d)", ranked, s.Games)
	}

	seatResults, wins := 0, 0
	for _, seat := range s.Seats {
		seatResults += seat.Games
		wins += seat.Wins
	}
	if seatResults != s.Results {
		return fmt.Errorf("seat results total (%d) does not match results count (%d)", seatResults, s.Results)
	}
	if wins < s.Games {
		return fmt.Errorf("total wins (%d) is less than games (%d)", wins, s.Games)
	}
	if s.TokensPaid > s.TokensTaken {
		return fmt.Errorf("tokens paid (%d) exceeds tokens taken (%d)", s.TokensPaid, s.TokensTaken)
	}
	return nil
}
