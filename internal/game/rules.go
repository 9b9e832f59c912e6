package game

// CanTakeDarkHorseToken reports whether the current player may take a token.
// Taking a token does not end the turn, so the player must keep at least one
// playable card afterwards.
func CanTakeDarkHorseToken(s GameState) bool {
	p, ok := s.CurrentPlayer()
	if !ok {
		return false
	}
	if p.HasDarkHorseToken {
		return false
	}
	if s.AvailableTokens <= 0 {
		return false
	}
	return len(p.ActionCards) > 1
}

// TakeDarkHorseToken hands a token to the current player.
func TakeDarkHorseToken(s GameState) (GameState, error) {
	if !CanTakeDarkHorseToken(s) {
		return GameState{}, preconditionError("take dark horse token", "current player cannot take a token")
	}
	next := s.Clone()
	next.Players[next.CurrentPlayerIndex].HasDarkHorseToken = true
	next.AvailableTokens--
	return next, nil
}

// AdvanceTurnPhase steps take_token -> play_card -> execute_card. It stops at
// execute_card; NextTurn moves play on. Outside play it returns s unchanged.
func AdvanceTurnPhase(s GameState) GameState {
	if s.Phase != PhasePlaying {
		return s
	}
	next := s.Clone()
	switch s.TurnPhase {
	case TurnTakeToken:
		next.TurnPhase = TurnPlayCard
	case TurnPlayCard:
		next.TurnPhase = TurnExecuteCard
	}
	return next
}

// PlayActionCard removes the card at index from the current player's hand and
// records it as played. The caller inspects the card to decide whether a
// choice is needed before executing it.
func PlayActionCard(s GameState, index int) (GameState, ActionCard, error) {
	p, ok := s.CurrentPlayer()
	if !ok {
		return GameState{}, ActionCard{}, preconditionError("play action card", "no current player")
	}
	if index < 0 || index >= len(p.ActionCards) {
		return GameState{}, ActionCard{}, validationError("play action card", "card index %d out of range [0,%d)", index, len(p.ActionCards))
	}

	next := s.Clone()
	hand := next.Players[next.CurrentPlayerIndex].ActionCards
	card := hand[index]
	next.Players[next.CurrentPlayerIndex].ActionCards = append(hand[:index:index], hand[index+1:]...)
	next.PlayedCards = append(next.PlayedCards, card)
	return next, card, nil
}

// NextTurn passes play to the next seat.
func NextTurn(s GameState) (GameState, error) {
	if s.Phase != PhasePlaying {
		return GameState{}, preconditionError("next turn", "phase is %s, want %s", s.Phase, PhasePlaying)
	}
	next := s.Clone()
	next.CurrentPlayerIndex = (s.CurrentPlayerIndex + 1) % len(s.Players)
	next.TurnPhase = TurnTakeToken
	return next, nil
}

// IsGameOver reports whether play is under way and every hand is empty.
func IsGameOver(s GameState) bool {
	if s.Phase != PhasePlaying {
		return false
	}
	for _, p := range s.Players {
		if len(p.ActionCards) != 0 {
			return false
		}
	}
	return true
}

// EndGame moves a finished race to scoring.
func EndGame(s GameState) (GameState, error) {
	if !IsGameOver(s) {
		return GameState{}, preconditionError("end game", "players still hold action cards")
	}
	next := s.Clone()
	next.Phase = PhaseScoring
	next.TurnPhase = TurnNone
	return next, nil
}
