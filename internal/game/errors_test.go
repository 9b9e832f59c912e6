package game

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/darkhorse/race"
)

func TestErrorFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"op and message", validationError("play action card", "index %d out of range", 9), "play action card: VALIDATION: index 9 out of range"},
		{"wrapped only", wrapError(KindPrecondition, "place horse", race.ErrHorsePlaced), "place horse: PRECONDITION: horse already placed"},
		{"no op", &Error{Kind: KindMissingChoice, Msg: "direction required"}, "MISSING_CHOICE: direction required"},
		{"message and cause", &Error{Kind: KindValidation, Op: "move", Msg: "horse 9", Err: race.ErrInvalidHorse}, "move: VALIDATION: horse 9: invalid horse number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorMatching(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("turn 3: %w", wrapError(KindPrecondition, "place horse", race.ErrHorsePlaced))

	assert.ErrorIs(t, err, ErrPrecondition)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, race.ErrHorsePlaced)
	assert.Equal(t, KindPrecondition, KindOf(err))
	assert.True(t, IsKind(err, KindPrecondition))

	assert.Equal(t, KindUnknown, KindOf(errors.New("disk full")))
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.ErrorIs(t, missingChoiceError("execute", "no choice"), ErrMissingChoice)
}
