// Package config loads runtime settings from the environment.
//
// Values come from the process environment, optionally seeded from a .env
// file in the working directory. Command-line flags in main override them.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// DefaultNumGuesses is the guess budget used when nothing is configured.
const DefaultNumGuesses = 4

// Config holds every setting the CLI and HTTP mode read.
type Config struct {
	NumGuesses   int    `env:"HANGMAN_NUM_GUESSES" envDefault:"4"`
	WordFile     string `env:"HANGMAN_WORD_FILE" envDefault:"secret_word.txt"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	Port         string `env:"PORT" envDefault:"5175"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
}

// Load reads an optional .env file and parses the environment into a Config.
// A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	return Parse()
}

// Parse parses the current environment into a Config and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that env parsing alone cannot.
func (c Config) Validate() error {
	if c.NumGuesses < 0 {
		return fmt.Errorf("HANGMAN_NUM_GUESSES must not be negative, got %d", c.NumGuesses)
	}
	if c.WordFile == "" {
		return errors.New("HANGMAN_WORD_FILE must not be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// Level returns the configured zerolog level, defaulting to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
