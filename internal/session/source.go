// internal/session/source.go
//
// Input collaborator for the session loop: yields one raw character per turn.

package session

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrNoValue means a turn produced no character (e.g. a blank line).
// The session re-reads without penalty.
var ErrNoValue = errors.New("no value")

// Source yields one raw character per call.
// io.EOF means no more input will ever arrive.
type Source interface {
	Next() (rune, error)
}

// LineSource reads a line per turn and yields its first character.
type LineSource struct {
	r *bufio.Reader
}

// NewLineSource wraps r.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{r: bufio.NewReader(r)}
}

// Next implements Source.
func (s *LineSource) Next() (rune, error) {
	line, err := s.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return 0, ErrNoValue
	}
	c, _ := utf8.DecodeRuneInString(line)
	return c, nil
}
