// internal/httpserver/server.go
//
// HTTP server wiring for the hangman JSON API.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/{id}.
//
// Notes:
//   - Games live in a store.Store; guesses run inside Store.Update so two
//     requests never mutate the same game concurrently.
//   - The secret word is only exposed once a game is lost.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/letter"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

// Options configures a Server.
type Options struct {
	Words        words.Source // secret word for games created without one
	NumGuesses   int          // default guess budget
	ClientOrigin string       // allowed CORS origin
}

// Server bundles router, game store and defaults.
type Server struct {
	r     *chi.Mux
	store store.Store
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, opts Options) *Server {
	s := &Server{r: chi.NewRouter(), store: st, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hangman","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/{id}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Get("/game/{id}", s.handleGetGame)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin != "" {
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ GAME ---------------------------------------

// gameView is the public representation of a game.
type gameView struct {
	GameID    string     `json:"gameId"`
	State     game.State `json:"state"`
	Word      string     `json:"word"` // rendered, '*' for hidden letters
	Length    int        `json:"length"`
	Remaining int        `json:"remaining"`
	Guessed   []string   `json:"guessed"`
	Answer    string     `json:"answer,omitempty"` // only once lost
}

func viewOf(g *game.Game) gameView {
	v := gameView{
		GameID:    g.ID,
		State:     g.State(),
		Word:      g.Render(),
		Length:    g.Len(),
		Remaining: g.Remaining(),
		Guessed:   g.Guessed(),
	}
	if v.State == game.StateLost {
		v.Answer = g.Answer()
	}
	return v
}

// newGameReq payload for POST /game/new.
type newGameReq struct {
	Word       string `json:"word"`       // optional fixed word
	NumGuesses *int   `json:"numGuesses"` // optional budget override
}

// handleNewGame creates a new in-memory game.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	// An empty body is allowed and means configured defaults.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	word := req.Word
	if word == "" {
		if s.opts.Words == nil {
			writeError(w, http.StatusBadRequest, "word_required")
			return
		}
		var err error
		word, err = s.opts.Words.SecretWord()
		if err != nil {
			log.Error().Err(err).Msg("load secret word")
			writeError(w, http.StatusInternalServerError, "word_unavailable")
			return
		}
	}
	budget := s.opts.NumGuesses
	if req.NumGuesses != nil {
		budget = *req.NumGuesses
	}

	g, err := game.New(word, budget)
	switch {
	case errors.Is(err, game.ErrWordFormat):
		writeError(w, http.StatusBadRequest, "word_format")
		return
	case errors.Is(err, game.ErrInvalidBudget):
		writeError(w, http.StatusBadRequest, "invalid_budget")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "new_game_failed")
		return
	}

	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("gameId", g.ID).Int("length", g.Len()).Int("budget", budget).Msg("game created")

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(viewOf(g))
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Outcome game.Outcome `json:"outcome"`
	gameView
}

// handleGuess validates a single-character guess and applies it.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if utf8.RuneCountInString(req.Guess) != 1 {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}
	c, _ := utf8.DecodeRuneInString(req.Guess)
	l, err := letter.Parse(c)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}

	var res guessRes
	err = s.store.Update(r.Context(), req.GameID, func(g *game.Game) error {
		o, err := g.ApplyGuess(l)
		if err != nil {
			return err
		}
		res = guessRes{Outcome: o, gameView: viewOf(g)}
		return nil
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, "game_over")
		return
	case err != nil:
		log.Error().Err(err).Str("gameId", req.GameID).Msg("apply guess")
		writeError(w, http.StatusInternalServerError, "guess_failed")
		return
	}

	log.Debug().Str("gameId", req.GameID).Str("guess", l.String()).Str("outcome", string(res.Outcome)).Msg("guess applied")
	_ = json.NewEncoder(w).Encode(res)
}

// handleGetGame returns the current view of a game.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	var v gameView
	err := s.store.Get(r.Context(), chi.URLParam(r, "id"), func(g *game.Game) error {
		v = viewOf(g)
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
