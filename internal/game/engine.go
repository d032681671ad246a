// internal/game/engine.go
//
// Core game engine for a single hangman session.
// Responsibilities:
//   - Create new games from a secret word and a guess budget.
//   - Apply validated guesses: duplicate detection, reveal, budget accounting.
//   - Answer the terminal predicates (won/lost) and render the word.
//
// Notes:
//   - Guesses arrive as letter.Letter values, so they are already a–z.
//   - Won and lost are independent predicates; callers check both each turn.
package game

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/robalobadob/hangman/internal/letter"
)

// New constructs a game for word with numGuesses incorrect guesses allowed.
// The word is lowercased; any rune outside a–z yields a *WordFormatError.
func New(word string, numGuesses int) (*Game, error) {
	if numGuesses < 0 {
		return nil, ErrInvalidBudget
	}
	if word == "" {
		return nil, &WordFormatError{}
	}

	w := make([]position, 0, len(word))
	for _, r := range word {
		lr := letter.ToLower(r)
		if !letter.IsLetter(lr) {
			return nil, &WordFormatError{Word: word, Char: r}
		}
		w = append(w, position{letter: lr})
	}

	return &Game{
		ID:        uuid.NewString(),
		word:      w,
		remaining: numGuesses,
		guessed:   make(map[rune]struct{}),
	}, nil
}

// ApplyGuess applies one guess and reports its outcome.
//
// Rules:
//   - A letter already attempted returns OutcomeAlreadyGuessed and changes nothing.
//   - A letter present in the word reveals every matching position (OutcomeHit).
//   - A letter absent from the word costs one guess (OutcomeMiss).
//
// Guessing on a won or lost game returns ErrGameOver.
func (g *Game) ApplyGuess(l letter.Letter) (Outcome, error) {
	if g.State() != StatePlaying {
		return "", ErrGameOver
	}
	r := l.Rune()
	if _, ok := g.guessed[r]; ok {
		return OutcomeAlreadyGuessed, nil
	}
	g.guessed[r] = struct{}{}

	hit := false
	for i := range g.word {
		if g.word[i].letter == r {
			g.word[i].revealed = true
			hit = true
		}
	}
	if hit {
		return OutcomeHit, nil
	}
	g.remaining--
	return OutcomeMiss, nil
}

// IsLost reports whether the guess budget is exhausted.
func (g *Game) IsLost() bool { return g.remaining == 0 }

// IsWon reports whether every position has been revealed.
func (g *Game) IsWon() bool {
	for _, p := range g.word {
		if !p.revealed {
			return false
		}
	}
	return true
}

// State reports the coarse game state. A fully revealed word wins even when
// the budget is also zero.
func (g *Game) State() State {
	switch {
	case g.IsWon():
		return StateWon
	case g.IsLost():
		return StateLost
	}
	return StatePlaying
}

// Render returns the word with unrevealed positions replaced by Placeholder.
func (g *Game) Render() string {
	var b strings.Builder
	b.Grow(len(g.word))
	for _, p := range g.word {
		if p.revealed {
			b.WriteRune(p.letter)
		} else {
			b.WriteRune(Placeholder)
		}
	}
	return b.String()
}

// Remaining returns the number of incorrect guesses left.
func (g *Game) Remaining() int { return g.remaining }

// Len returns the number of letters in the secret word.
func (g *Game) Len() int { return len(g.word) }

// Guessed returns the attempted letters in alphabetical order.
func (g *Game) Guessed() []string {
	out := make([]string, 0, len(g.guessed))
	for r := range g.guessed {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}

// Answer returns the secret word in lowercase.
func (g *Game) Answer() string {
	var b strings.Builder
	for _, p := range g.word {
		b.WriteRune(p.letter)
	}
	return b.String()
}
