// internal/words/words.go
//
// Loads the secret word for a game.
//
// Responsibilities:
//   - Read a secret-word file and return its first whitespace-delimited token.
//   - Leave validation to the game engine (game.New rejects non-letters).
//
// Environment variables (see internal/config):
//   HANGMAN_WORD_FILE=/path/to/secret_word.txt

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultFile is the secret-word file read when none is configured.
const DefaultFile = "secret_word.txt"

// ErrNoWord is returned when the source holds no token at all.
var ErrNoWord = errors.New("words: could not get first word for secret word")

// Source supplies a secret word for a new game.
type Source interface {
	SecretWord() (string, error)
}

// File reads the secret word from a path on every call, so edits to the file
// are picked up by later games.
type File string

// SecretWord implements Source.
func (f File) SecretWord() (string, error) { return ReadSecretWord(string(f)) }

// ReadSecretWord opens path and returns its first whitespace-delimited token.
func ReadSecretWord(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	w, err := FirstWord(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// FirstWord scans r and returns the first whitespace-delimited token.
func FirstWord(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if sc.Scan() {
		return sc.Text(), nil
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("words: read: %w", err)
	}
	return "", ErrNoWord
}
