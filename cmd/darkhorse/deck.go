package main

import "os"

// DeckCmd prints the fixed deck composition.
type DeckCmd struct{}

func (cmd *DeckCmd) Run() error {
	return renderDeck(os.Stdout)
}
