package race

import (
	"fmt"
	"slices"
	"sort"
)

// Order is the race order. The slice index is the position: index 0 is the
// worst rank, the last index the best. Methods never modify the receiver.
type Order []Horse

// Clone returns an independent copy of o.
func (o Order) Clone() Order {
	if o == nil {
		return nil
	}
	return slices.Clone(o)
}

// Numbers returns the horse numbers from index 0 upwards.
func (o Order) Numbers() []HorseNumber {
	numbers := make([]HorseNumber, len(o))
	for i, h := range o {
		numbers[i] = h.Number
	}
	return numbers
}

// IndexOf returns the index of horse n, or -1 if it has not been placed.
func (o Order) IndexOf(n HorseNumber) int {
	for i, h := range o {
		if h.Number == n {
			return i
		}
	}
	return -1
}

// Contains reports whether horse n is in the order.
func (o Order) Contains(n HorseNumber) bool {
	return o.IndexOf(n) >= 0
}

// RankOf returns the current rank of horse n.
func (o Order) RankOf(n HorseNumber) (Rank, bool) {
	idx := o.IndexOf(n)
	if idx < 0 {
		return 0, false
	}
	return RankAt(idx), true
}

// Available lists the horse numbers not yet placed, ascending.
func (o Order) Available() []HorseNumber {
	var available []HorseNumber
	for _, n := range AllHorses() {
		if !o.Contains(n) {
			available = append(available, n)
		}
	}
	return available
}

// Complete reports whether all seven horses are placed.
func (o Order) Complete() bool {
	return len(o) == Count
}

// CanMoveForward reports whether horse n can move toward index 0.
func (o Order) CanMoveForward(n HorseNumber) bool {
	return o.IndexOf(n) > 0
}

// CanMoveBackward reports whether horse n can move toward the last index.
func (o Order) CanMoveBackward(n HorseNumber) bool {
	idx := o.IndexOf(n)
	return idx >= 0 && idx < len(o)-1
}

// Place puts horse n on one end of the order.
func (o Order) Place(n HorseNumber, side Side) (Order, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHorse, n)
	}
	if o.Contains(n) {
		return nil, fmt.Errorf("%w: %s", ErrHorsePlaced, n)
	}
	if len(o) >= Count {
		return nil, ErrOrderFull
	}

	out := make(Order, 0, len(o)+1)
	switch side {
	case Left:
		out = append(out, Horse{Number: n})
		out = append(out, o...)
	case Right:
		out = append(out, o...)
		out = append(out, Horse{Number: n})
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidSide, side)
	}
	return out.renumber(), nil
}

// Move relocates horse n by spaces. A horse already at the end it is being
// pushed toward moves the opposite way instead; the target is then clamped
// into the order. Non-invertible near the ends.
func (o Order) Move(n HorseNumber, spaces int, dir Direction) (Order, error) {
	idx := o.IndexOf(n)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrHorseNotFound, n)
	}

	switch dir {
	case Forward:
		if !o.CanMoveForward(n) {
			dir = Backward
		}
	case Backward:
		if !o.CanMoveBackward(n) {
			dir = Forward
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}

	target := idx + spaces
	if dir == Forward {
		target = idx - spaces
	}
	target = max(0, min(len(o)-1, target))

	if target == idx {
		return o.Clone().renumber(), nil
	}
	return o.relocate(idx, target), nil
}

// MoveMany moves several horses the same way. Horses are processed from the
// lowest index up when moving forward and from the highest down when moving
// backward, so crossing paths resolve the same way every time.
func (o Order) MoveMany(numbers []HorseNumber, spaces int, dir Direction) (Order, error) {
	if !dir.Concrete() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}
	for _, n := range numbers {
		if !o.Contains(n) {
			return nil, fmt.Errorf("%w: %s", ErrHorseNotFound, n)
		}
	}

	sorted := slices.Clone(numbers)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := o.IndexOf(sorted[i]), o.IndexOf(sorted[j])
		if dir == Forward {
			return a < b
		}
		return a > b
	})

	out := o.Clone()
	for _, n := range sorted {
		var err error
		out, err = out.Move(n, spaces, dir)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// RiderFallOff sends the horse holding rank 3 to the worst-rank end,
// keeping everyone else in order. Orders too short to have a rank 3 horse
// are returned unchanged.
func (o Order) RiderFallOff() Order {
	idx := Count - 3
	if idx >= len(o) {
		return o.Clone()
	}
	return o.relocate(idx, 0)
}

func (o Order) relocate(from, to int) Order {
	out := o.Clone()
	moving := out[from]
	out = slices.Delete(out, from, from+1)
	out = slices.Insert(out, to, moving)
	return out.renumber()
}

func (o Order) renumber() Order {
	for i := range o {
		o[i].Position = i
	}
	return o
}
