// internal/session/session.go
//
// Turn loop for one interactive hangman game.
// Responsibilities:
//   - Prompt, read a character, validate it and apply it to the game.
//   - Report each outcome with the remaining guesses and rendered word.
//   - Stop once the game is won or lost and report the final result.
//
// Notes:
//   - Invalid characters and unreadable turns never cost a guess.
//   - The game is owned by the session; nothing else mutates it meanwhile.

package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/letter"
)

// ErrInputClosed is returned by Run when the source reaches end of input
// before the game is over.
var ErrInputClosed = errors.New("session: input closed before game ended")

// Result summarizes a finished session.
type Result struct {
	Won       bool
	Remaining int
	Word      string // rendered word at the end
	Guesses   int    // number of distinct letters tried
}

// Session drives a single game over a Source and an output sink.
type Session struct {
	game *game.Game
	src  Source
	out  io.Writer
	log  zerolog.Logger
}

// New builds a session. Output is human-readable text written to out.
func New(g *game.Game, src Source, out io.Writer, logger zerolog.Logger) *Session {
	return &Session{
		game: g,
		src:  src,
		out:  out,
		log:  logger.With().Str("gameId", g.ID).Logger(),
	}
}

// Run plays until the game is won or lost.
// It returns an error only when no more input can be obtained.
func (s *Session) Run(ctx context.Context) (Result, error) {
	s.printf("We are about to play hangman!\n")
	s.printf("Your word to guess has %d letters\n", s.game.Len())
	s.printf("%s\n", s.game.Render())

	for !s.game.IsWon() && !s.game.IsLost() {
		s.printf("Please guess a letter: \n")

		c, err := s.read(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("session aborted")
			return s.result(), err
		}

		l, err := letter.Parse(c)
		if err != nil {
			s.log.Debug().Str("input", string(c)).Msg("rejected guess")
			s.printf("%s\n", err)
			continue
		}

		outcome, err := s.game.ApplyGuess(l)
		if err != nil {
			// Unreachable while the loop condition holds.
			return s.result(), err
		}
		s.log.Debug().
			Str("guess", l.String()).
			Str("outcome", string(outcome)).
			Int("remaining", s.game.Remaining()).
			Msg("guess applied")
		s.report(outcome)
	}

	res := s.result()
	if res.Won {
		s.printf("Weee you won!\n")
	} else {
		s.printf("You lost :(((( The word was %q\n", s.game.Answer())
	}
	s.log.Info().Bool("won", res.Won).Int("remaining", res.Remaining).Msg("game finished")
	return res, nil
}

// read blocks until the source yields a character. Turns with no value are
// retried without penalty; only end of input or cancellation stop it.
func (s *Session) read(ctx context.Context) (rune, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("session: %w", err)
		}
		c, err := s.src.Next()
		switch {
		case err == nil:
			return c, nil
		case errors.Is(err, io.EOF):
			return 0, ErrInputClosed
		case errors.Is(err, ErrNoValue):
			continue
		default:
			s.log.Debug().Err(err).Msg("read failed")
			s.printf("You inputted something wrong, try again!\n")
		}
	}
}

func (s *Session) report(o game.Outcome) {
	switch o {
	case game.OutcomeAlreadyGuessed:
		s.printf("You have already guessed that. Try something else.\n")
	case game.OutcomeHit:
		s.printf("Wuu you guessed a letter! No guess spent!\n")
	case game.OutcomeMiss:
		s.printf("Damn, the word does not contain that letter.. Try something else!\n")
	}
	s.printf("You now have %d guesses left\n", s.game.Remaining())
	s.printf("%s\n", s.game.Render())
}

func (s *Session) result() Result {
	return Result{
		Won:       s.game.IsWon(),
		Remaining: s.game.Remaining(),
		Word:      s.game.Render(),
		Guesses:   len(s.game.Guessed()),
	}
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
