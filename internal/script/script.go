// Package script loads HCL game scenarios and plays them through a
// dispatcher. A scenario lists the players, the placements and the turns to
// take; with autoplay set the rest of the game is filled in with a fixed
// policy.
//
//	seed     = 42
//	players  = ["alice", "bob", "carol"]
//	autoplay = true
//
//	place {
//	  horse = 3
//	  side  = "left"
//	}
//
//	turn {
//	  take_token = true
//	  card       = 0
//	  direction  = "backward"
//	}
package script

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/darkhorse/race"
)

// Script is a decoded scenario file.
type Script struct {
	Seed       int64       `hcl:"seed,optional"`
	Players    []string    `hcl:"players"`
	Autoplay   bool        `hcl:"autoplay,optional"`
	Placements []Placement `hcl:"place,block"`
	Turns      []Turn      `hcl:"turn,block"`
}

// Placement puts one horse on an end of the race order.
type Placement struct {
	Horse int    `hcl:"horse"`
	Side  string `hcl:"side,optional"`
}

// Turn is one player's turn. Direction is only read for cards that let the
// player choose; Target and TargetCard only for exchange cards. Target may be
// a player name or ID and defaults to the current player.
type Turn struct {
	TakeToken  bool   `hcl:"take_token,optional"`
	Card       int    `hcl:"card,optional"`
	Direction  string `hcl:"direction,optional"`
	Target     string `hcl:"target,optional"`
	TargetCard int    `hcl:"target_card,optional"`
}

// Load parses and validates the scenario in filename.
func Load(filename string) (*Script, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// Parse parses and validates a scenario held in memory. filename is only used
// in diagnostics.
func Parse(src []byte, filename string) (*Script, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Script, error) {
	var s Script
	if diags := gohcl.DecodeBody(file.Body, nil, &s); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Unsided placements alternate, starting on the left.
	for i := range s.Placements {
		if s.Placements[i].Side == "" {
			s.Placements[i].Side = race.Left.String()
			if i%2 == 1 {
				s.Placements[i].Side = race.Right.String()
			}
		}
	}
	for i := range s.Turns {
		if s.Turns[i].Direction == "" {
			s.Turns[i].Direction = race.Forward.String()
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the values the engine cannot check for itself.
func (s *Script) Validate() error {
	if len(s.Players) == 0 {
		return fmt.Errorf("at least one player must be listed")
	}
	if len(s.Placements) > race.Count-1 {
		return fmt.Errorf("at most %d placements allowed, got %d", race.Count-1, len(s.Placements))
	}
	for i, p := range s.Placements {
		if _, err := race.ParseSide(p.Side); err != nil {
			return fmt.Errorf("place %d: %w", i+1, err)
		}
	}
	for i, t := range s.Turns {
		dir, err := race.ParseDirection(t.Direction)
		if err != nil {
			return fmt.Errorf("turn %d: %w", i+1, err)
		}
		if !dir.Concrete() {
			return fmt.Errorf("turn %d: direction must be forward or backward", i+1)
		}
	}
	return nil
}
