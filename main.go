// Hangman: guess the secret word one letter at a time.
//
// Usage:
//
//	hangman [-n N] [-word FILE]        play in the terminal
//	hangman [-n N] [-word FILE] serve  serve the JSON API on $PORT
//
// Put the word to guess in secret_word.txt (or point -word / HANGMAN_WORD_FILE
// elsewhere); only its first whitespace-delimited token is used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/session"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	fs := flag.NewFlagSet("hangman", flag.ContinueOnError)
	bindFlags(fs, &cfg)
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch fs.Arg(0) {
	case "":
		if _, err := play(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("hangman")
		}
	case "serve":
		serve(cfg)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", fs.Arg(0))
		fs.Usage()
		os.Exit(2)
	}
}

// bindFlags registers the CLI flags; flag values override env config.
func bindFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Hangman! Put the word to guess in %q and pass the number of guesses with -n.\n\n", cfg.WordFile)
		fmt.Fprintf(fs.Output(), "Usage: hangman [flags] [serve]\n")
		fs.PrintDefaults()
	}
	fs.IntVar(&cfg.NumGuesses, "num_guesses", cfg.NumGuesses, "number of incorrect guesses allowed")
	fs.IntVar(&cfg.NumGuesses, "n", cfg.NumGuesses, "shorthand for -num_guesses")
	fs.StringVar(&cfg.WordFile, "word", cfg.WordFile, "file holding the secret word")
}

// play runs one terminal game reading guesses from in and writing to out.
func play(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) (session.Result, error) {
	secret, err := words.ReadSecretWord(cfg.WordFile)
	if err != nil {
		return session.Result{}, fmt.Errorf("read secret word: %w", err)
	}
	g, err := game.New(secret, cfg.NumGuesses)
	if err != nil {
		return session.Result{}, fmt.Errorf("start game: %w", err)
	}
	log.Debug().Str("gameId", g.ID).Int("length", g.Len()).Int("budget", cfg.NumGuesses).Msg("game created")

	return session.New(g, session.NewLineSource(in), out, log.Logger).Run(ctx)
}

func serve(cfg config.Config) {
	srv := httpserver.New(store.NewMemoryStore(), httpserver.Options{
		Words:        words.File(cfg.WordFile),
		NumGuesses:   cfg.NumGuesses,
		ClientOrigin: cfg.ClientOrigin,
	})
	log.Info().Str("port", cfg.Port).Msg("starting hangman server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
