// Package game implements the rules engine for the dark horse racing card game.
//
// A game is a sequence of immutable GameState snapshots. Every transition is
// a function from a snapshot (and its payload) to a new snapshot; nothing
// writes to an earlier snapshot, so a driver can keep each one for rendering
// or replay.
//
// # Basic Usage
//
// Drive a game through the closed action alphabet:
//
//	e := game.NewEngine(game.WithSeed(42))
//	s, err := e.Apply(game.GameState{}, game.Initialize("Alice", "Bob"))
//	s, err = e.Apply(s, game.AdvancePlacement())
//	s, err = e.Apply(s, game.Place(3, race.Left))
//	// ... five more placements; the dark horse is resolved on the sixth
//	s, err = e.Apply(s, game.Start())
//
// Each turn is TAKE_DARK_HORSE_TOKEN or SKIP_DARK_HORSE_TOKEN, then
// PLAY_ACTION_CARD, then EXECUTE_ACTION_CARD with a Choice when
// ActionCard.NeedsChoice reports one is required, then NEXT_TURN. Once
// IsGameOver holds, END_GAME moves to scoring and Engine.Score ranks the
// players.
//
// # Deterministic Testing
//
// Shuffles and exchange draws come from a randutil.Source. Fix the seed to
// replay a game exactly:
//
//	e := game.NewEngine(game.WithRand(randutil.New(7)))
//
// The individual transitions (InitializeGame, PlaceHorse, PlayActionCard,
// ExecuteActionCard, ...) are exported for drivers that want to gate UI on
// the same predicates the engine uses, such as CanTakeDarkHorseToken.
//
// # Errors
//
// Rule violations are *Error values with a Kind of KindValidation,
// KindPrecondition or KindMissingChoice. Test with errors.Is against
// ErrValidation, ErrPrecondition and ErrMissingChoice, or with KindOf.
package game
