package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordlesolver/internal/solver"
	"wordlesolver/internal/words"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	dict, err := words.New([]string{
		"bacon", "bring", "crane", "drink", "drunk", "frond", "grues",
		"krill", "print", "prink", "thorn", "trend", "wrist",
	}, 5)
	require.NoError(t, err)
	return New(Config{Dict: dict, Policy: solver.PolicyExpected, Depth: 2, Workers: 1})
}

func doJSON(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, solveRes) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	var res solveRes
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	}
	return rec, res
}

func TestHealth(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestSolve(t *testing.T) {
	s := testServer(t)
	rec, res := doJSON(t, s, http.MethodPost, "/solve",
		`{"hints":"bacon:RRRRY,grues:RGRRR"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 3, res.Possibilities)
	assert.ElementsMatch(t, []string{"drink", "prink", "print"}, res.Words)
	assert.Equal(t, "drink", res.Guess)
	assert.InDelta(t, 5.0/3.0, res.Score, 1e-9)
	assert.False(t, res.Partial)
}

// A single remaining possibility scores 0, and the field must still
// appear in the response body.
func TestSolveSinglePossibility(t *testing.T) {
	s := testServer(t)
	rec, res := doJSON(t, s, http.MethodPost, "/solve", `{"hints":"drink:GGGGG"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1, res.Possibilities)
	assert.Equal(t, "drink", res.Guess)
	assert.Zero(t, res.Score)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	_, ok := raw["score"]
	assert.True(t, ok, "score field missing from response")
}

func TestSolveNoPossibilities(t *testing.T) {
	s := testServer(t)
	rec, res := doJSON(t, s, http.MethodPost, "/solve",
		`{"hints":"bacon:GGGGG,bacon:RRRRR"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, res.Possibilities)
	assert.Empty(t, res.Guess)
}

func TestSolveBadRequest(t *testing.T) {
	s := testServer(t)

	rec, _ := doJSON(t, s, http.MethodPost, "/solve", `{"hints":"bacon:RRRRX"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, s, http.MethodPost, "/solve", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFilter(t *testing.T) {
	s := testServer(t)
	rec, res := doJSON(t, s, http.MethodPost, "/filter",
		`{"hints":"bacon:RRRRY,grues:RGRRR"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, res.Possibilities)
	assert.ElementsMatch(t, []string{"drink", "prink", "print"}, res.Words)
	assert.Empty(t, res.Guess)
}

func TestNotFound(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDebugWords(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/debug/words", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 13, stats["words"])
	assert.Equal(t, 5, stats["length"])
}
