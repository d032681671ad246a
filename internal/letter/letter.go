// internal/letter/letter.go
//
// Input validation for player guesses.
// A Letter can only be obtained through Parse, so any Letter value that
// reaches the game engine is already a lowercase Latin letter (a–z).

package letter

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every *InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError carries the rejected character.
type InvalidInputError struct {
	Char rune
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("input was %q but has to be a letter a through z", e.Char)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// Letter is a validated lowercase ASCII letter.
type Letter struct {
	r rune
}

// Parse lowercases r and accepts it only if it is one of the 26 Latin letters.
func Parse(r rune) (Letter, error) {
	lr := ToLower(r)
	if !IsLetter(lr) {
		return Letter{}, &InvalidInputError{Char: r}
	}
	return Letter{r: lr}, nil
}

// MustParse is Parse for constants; it panics on invalid input.
func MustParse(r rune) Letter {
	l, err := Parse(r)
	if err != nil {
		panic(err)
	}
	return l
}

// ToLower lowercases ASCII A–Z and leaves every other rune untouched, so
// runes such as the Kelvin sign never fold into Latin letters.
func ToLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// IsLetter reports whether r is lowercase a–z.
func IsLetter(r rune) bool { return r >= 'a' && r <= 'z' }

// Rune returns the letter as a lowercase rune. The zero Letter returns 0.
func (l Letter) Rune() rune { return l.r }

func (l Letter) String() string { return string(l.r) }
