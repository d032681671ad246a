package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/store"
)

type fixedWord struct {
	word string
	err  error
}

func (f fixedWord) SecretWord() (string, error) { return f.word, f.err }

func newTestServer(src fixedWord) http.Handler {
	return New(store.NewMemoryStore(), Options{
		Words:        src,
		NumGuesses:   2,
		ClientOrigin: "http://localhost:5173",
	}).Router()
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	}
	return rec, out
}

func newGame(t *testing.T, h http.Handler, body string) string {
	t.Helper()
	rec, out := do(t, h, http.MethodPost, "/game/new", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id, _ := out["gameId"].(string)
	require.NotEmpty(t, id)
	return id
}

func guessBody(id, g string) string {
	b, _ := json.Marshal(guessReq{GameID: id, Guess: g})
	return string(b)
}

func TestHealth(t *testing.T) {
	h := newTestServer(fixedWord{word: "abc"})
	rec, out := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["ok"])
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewGameUsesConfiguredWord(t *testing.T) {
	h := newTestServer(fixedWord{word: "Gopher"})
	rec, out := do(t, h, http.MethodPost, "/game/new", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "******", out["word"])
	assert.EqualValues(t, 6, out["length"])
	assert.EqualValues(t, 2, out["remaining"])
	assert.Equal(t, "playing", out["state"])
	assert.NotContains(t, out, "answer")
}

func TestNewGameErrors(t *testing.T) {
	h := newTestServer(fixedWord{word: "abc"})

	rec, out := do(t, h, http.MethodPost, "/game/new", `{"word":"ab1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "word_format", out["error"])

	rec, out = do(t, h, http.MethodPost, "/game/new", `{"word":"abc","numGuesses":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_budget", out["error"])

	rec, out = do(t, h, http.MethodPost, "/game/new", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_json", out["error"])

	broken := newTestServer(fixedWord{err: errors.New("no file")})
	rec, out = do(t, broken, http.MethodPost, "/game/new", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "word_unavailable", out["error"])
}

func TestGuessFlowToWin(t *testing.T) {
	h := newTestServer(fixedWord{word: "unused"})
	id := newGame(t, h, `{"word":"aabc"}`)

	rec, out := do(t, h, http.MethodPost, "/game/guess", guessBody(id, "A"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(game.OutcomeHit), out["outcome"])
	assert.Equal(t, "aa**", out["word"])
	assert.EqualValues(t, 2, out["remaining"])

	_, out = do(t, h, http.MethodPost, "/game/guess", guessBody(id, "a"))
	assert.Equal(t, string(game.OutcomeAlreadyGuessed), out["outcome"])

	_, out = do(t, h, http.MethodPost, "/game/guess", guessBody(id, "z"))
	assert.Equal(t, string(game.OutcomeMiss), out["outcome"])
	assert.EqualValues(t, 1, out["remaining"])

	do(t, h, http.MethodPost, "/game/guess", guessBody(id, "b"))
	_, out = do(t, h, http.MethodPost, "/game/guess", guessBody(id, "c"))
	assert.Equal(t, "won", out["state"])
	assert.Equal(t, "aabc", out["word"])
	assert.Equal(t, []any{"a", "b", "c", "z"}, out["guessed"])

	rec, out = do(t, h, http.MethodPost, "/game/guess", guessBody(id, "d"))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "game_over", out["error"])
}

func TestGuessLossRevealsAnswer(t *testing.T) {
	h := newTestServer(fixedWord{word: "abc"})
	id := newGame(t, h, `{"numGuesses":1}`)

	_, out := do(t, h, http.MethodPost, "/game/guess", guessBody(id, "z"))
	assert.Equal(t, "lost", out["state"])
	assert.Equal(t, "abc", out["answer"])

	rec, out := do(t, h, http.MethodGet, "/game/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "lost", out["state"])
	assert.EqualValues(t, 0, out["remaining"])
}

func TestGuessInvalidInput(t *testing.T) {
	h := newTestServer(fixedWord{word: "abc"})
	id := newGame(t, h, "")

	for _, g := range []string{"", "ab", "1", "こ", "?"} {
		rec, out := do(t, h, http.MethodPost, "/game/guess", guessBody(id, g))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "guess %q", g)
		assert.Equal(t, "invalid_input", out["error"])
	}

	_, out := do(t, h, http.MethodGet, "/game/"+id, "")
	assert.EqualValues(t, 2, out["remaining"], "invalid input never costs a guess")
	assert.Empty(t, out["guessed"])
}

func TestUnknownGame(t *testing.T) {
	h := newTestServer(fixedWord{word: "abc"})

	rec, out := do(t, h, http.MethodPost, "/game/guess", guessBody("nope", "a"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", out["error"])

	rec, _ = do(t, h, http.MethodGet, "/game/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/nothing/here", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
