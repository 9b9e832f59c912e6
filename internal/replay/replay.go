// Package replay records dispatched actions with the snapshot each produced,
// and verifies a recording by replaying it from its seed.
package replay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/darkhorse/internal/fileutil"
	"github.com/lox/darkhorse/internal/game"
)

// ErrDiverged is returned by Verify when a replayed snapshot differs from the
// recorded one.
var ErrDiverged = errors.New("replay diverged")

// Entry is one accepted action and the snapshot it produced.
type Entry struct {
	Seq    int            `json:"seq"`
	At     time.Time      `json:"at"`
	Action game.Action    `json:"action"`
	State  game.GameState `json:"state"`
}

// Log is a complete recording. Seed reproduces every shuffle and exchange
// draw, so Entries can be replayed exactly.
type Log struct {
	GameID  string  `json:"game_id"`
	Seed    int64   `json:"seed"`
	Entries []Entry `json:"entries"`
}

// Final returns the last recorded snapshot.
func (l Log) Final() (game.GameState, bool) {
	if len(l.Entries) == 0 {
		return game.GameState{}, false
	}
	return l.Entries[len(l.Entries)-1].State, true
}

// Recorder drives an engine and keeps a Log of every accepted action.
// Rejected actions leave both the state and the log untouched.
type Recorder struct {
	mu     sync.Mutex
	engine *game.Engine
	clock  quartz.Clock
	state  game.GameState
	log    Log
}

// NewRecorder creates a recorder whose engine is seeded with seed. opts are
// applied after the seed, so a logger can be added here.
func NewRecorder(id string, seed int64, clock quartz.Clock, opts ...game.Option) *Recorder {
	return &Recorder{
		engine: game.NewEngine(append([]game.Option{game.WithSeed(seed)}, opts...)...),
		clock:  clock,
		log:    Log{GameID: id, Seed: seed, Entries: []Entry{}},
	}
}

// Dispatch applies a to the current snapshot and records it.
func (r *Recorder) Dispatch(a game.Action) (game.GameState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := r.engine.Apply(r.state, a)
	if err != nil {
		return game.GameState{}, err
	}
	r.state = next
	r.log.Entries = append(r.log.Entries, Entry{
		Seq:    len(r.log.Entries) + 1,
		At:     r.clock.Now(),
		Action: a,
		State:  next,
	})
	return next, nil
}

// State returns the current snapshot.
func (r *Recorder) State() game.GameState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Engine returns the engine the recorder dispatches to.
func (r *Recorder) Engine() *game.Engine {
	return r.engine
}

// Log returns a copy of the recording so far.
func (r *Recorder) Log() Log {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.log
	l.Entries = slices.Clone(r.log.Entries)
	return l
}

// Save writes l to path as JSON.
func Save(path string, l Log) error {
	return fileutil.WriteJSONAtomic(path, l, 0o644)
}

// Load reads a recording written by Save.
func Load(path string) (Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Log{}, fmt.Errorf("failed to read replay: %w", err)
	}
	var l Log
	if err := json.Unmarshal(data, &l); err != nil {
		return Log{}, fmt.Errorf("failed to decode replay %s: %w", path, err)
	}
	return l, nil
}

// Verify replays l on a fresh engine seeded from l.Seed and checks that every
// snapshot matches the recorded one.
func Verify(l Log, opts ...game.Option) error {
	engine := game.NewEngine(append([]game.Option{game.WithSeed(l.Seed)}, opts...)...)

	var state game.GameState
	for i, entry := range l.Entries {
		if entry.Seq != i+1 {
			return fmt.Errorf("entry %d: unexpected sequence number %d", i+1, entry.Seq)
		}
		next, err := engine.Apply(state, entry.Action)
		if err != nil {
			return fmt.Errorf("entry %d (%s): %w", entry.Seq, entry.Action.Type, err)
		}
		got, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("entry %d: %w", entry.Seq, err)
		}
		want, err := json.Marshal(entry.State)
		if err != nil {
			return fmt.Errorf("entry %d: %w", entry.Seq, err)
		}
		if !bytes.Equal(got, want) {
			return fmt.Errorf("%w at entry %d (%s)", ErrDiverged, entry.Seq, entry.Action.Type)
		}
		state = next
	}
	return nil
}
