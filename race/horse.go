package race

import (
	"errors"
	"fmt"
	"strconv"
)

// Count is the number of horses in every race.
const Count = 7

// HorseNumber identifies a horse, 1 through 7.
type HorseNumber uint8

// Valid reports whether n names one of the seven horses.
func (n HorseNumber) Valid() bool {
	return n >= 1 && n <= Count
}

func (n HorseNumber) String() string {
	return "H" + strconv.Itoa(int(n))
}

// AllHorses returns the horse numbers in ascending order.
func AllHorses() []HorseNumber {
	horses := make([]HorseNumber, Count)
	for i := range horses {
		horses[i] = HorseNumber(i + 1)
	}
	return horses
}

// Rank is a finishing position, 1 (best) to 7 (worst).
type Rank int

// RankAt derives the rank of the horse standing at index in the race order.
func RankAt(index int) Rank {
	return Rank(Count - index)
}

// pointsTable maps rank to betting points. Not linear.
var pointsTable = [Count + 1]int{
	1: 9,
	2: 7,
	3: 5,
	4: 3,
	5: 2,
	6: 1,
	7: 0,
}

// Points returns the betting points a single card earns for a horse at rank r.
// Ranks outside 1..7 earn nothing.
func Points(r Rank) int {
	if r < 1 || r > Count {
		return 0
	}
	return pointsTable[r]
}

// Horse is a placed horse and its index in the race order.
type Horse struct {
	Number   HorseNumber `json:"number"`
	Position int         `json:"position"`
}

// Direction is the way a movement card pushes a horse.
type Direction uint8

const (
	// Forward moves a horse toward index 0.
	Forward Direction = iota + 1
	// Backward moves a horse toward the last index.
	Backward
	// Choice leaves the direction to the player executing the card.
	Choice
)

var directionNames = map[Direction]string{
	Forward:  "forward",
	Backward: "backward",
	Choice:   "choice",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "none"
}

// Opposite returns the reverse of a concrete direction. Choice has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Forward:
		return Backward
	case Backward:
		return Forward
	}
	return d
}

// Concrete reports whether d is Forward or Backward.
func (d Direction) Concrete() bool {
	return d == Forward || d == Backward
}

// ParseDirection parses "forward", "backward" or "choice".
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if name == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

func (d Direction) MarshalText() ([]byte, error) {
	if d == 0 {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = 0
		return nil
	}
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Side is the end of the race order a horse is placed on during setup.
type Side uint8

const (
	// Left prepends at index 0, the worst-rank end.
	Left Side = iota + 1
	// Right appends at the best-rank end.
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// ParseSide parses "left" or "right".
func ParseSide(s string) (Side, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSide, s)
}

func (s Side) MarshalText() ([]byte, error) {
	if s == 0 {
		return []byte{}, nil
	}
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = 0
		return nil
	}
	parsed, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

var (
	ErrInvalidHorse     = errors.New("invalid horse number")
	ErrHorseNotFound    = errors.New("horse not in race order")
	ErrHorsePlaced      = errors.New("horse already placed")
	ErrOrderFull        = errors.New("race order is full")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidSide      = errors.New("invalid side")
)
