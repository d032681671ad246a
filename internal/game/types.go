// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Outcome: result of applying one guess (already guessed/hit/miss).
//   - State:   coarse game state (playing/won/lost).
//   - Game:    state for a single in-progress or finished game.

package game

import (
	"errors"
	"fmt"
)

// Outcome represents the result of applying a single guess.
type Outcome string

const (
	OutcomeAlreadyGuessed Outcome = "already_guessed"
	OutcomeHit            Outcome = "hit"
	OutcomeMiss           Outcome = "miss"
)

// State is the coarse game state. Won and Lost are terminal.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Placeholder is rendered in place of every unrevealed letter.
const Placeholder = '*'

var (
	// ErrWordFormat is matched by every *WordFormatError.
	ErrWordFormat = errors.New("word format")
	// ErrInvalidBudget is returned by New for a negative guess budget.
	ErrInvalidBudget = errors.New("guess budget must not be negative")
	// ErrGameOver is returned when a guess is applied to a finished game.
	ErrGameOver = errors.New("game finished")
)

// WordFormatError reports a secret word that cannot be played.
type WordFormatError struct {
	Word string
	Char rune // offending rune; 0 for an empty word
}

func (e *WordFormatError) Error() string {
	if e.Word == "" {
		return "cannot play hangman with an empty word"
	}
	return fmt.Sprintf("cannot play hangman with %q: %q is not a letter", e.Word, e.Char)
}

func (e *WordFormatError) Is(target error) bool { return target == ErrWordFormat }

// position is one letter of the secret word and whether it has been revealed.
type position struct {
	letter   rune
	revealed bool
}

// Game holds the state of a single hangman session.
// It is mutated only through ApplyGuess.
type Game struct {
	ID string // Unique game identifier (UUID).

	word      []position        // secret word, never resized
	remaining int               // incorrect guesses left before losing
	guessed   map[rune]struct{} // letters already attempted
}
