package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
)

func TestHighScoreStoreDefaultsToZero(t *testing.T) {
	hs := NewHighScoreStore(openTestStore(t), nil)

	if got := hs.ReadHighScore(); got != 0 {
		t.Errorf("ReadHighScore() = %d, want 0", got)
	}
}

func TestHighScoreStorePersistsAcrossGames(t *testing.T) {
	store := openTestStore(t)
	hs := NewHighScoreStore(store, nil)

	hs.WriteHighScore(3)
	hs.WriteHighScore(8)

	// A new game reads the stored value once
	g := breakout.New(config.Default(), NewHighScoreStore(store, nil), 1)
	if g.HighScore() != 8 {
		t.Errorf("HighScore() = %d, want 8", g.HighScore())
	}
}

func TestHighScoreStoreLogsErrors(t *testing.T) {
	store := openTestStore(t)
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	hs := NewHighScoreStore(store, logger)

	store.Close()

	if got := hs.ReadHighScore(); got != 0 {
		t.Errorf("ReadHighScore() on closed store = %d, want 0", got)
	}
	hs.WriteHighScore(5)

	out := buf.String()
	if !strings.Contains(out, "cannot read high score") || !strings.Contains(out, "cannot write high score") {
		t.Errorf("expected both failures to be logged, got:\n%s", out)
	}
}
