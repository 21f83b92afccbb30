package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbreaker/internal/storage"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(testOptions(nil), "tester")
	assert.Contains(t, m.View(), "B R I C K")

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.screen)
	assert.NotNil(t, cmd, "game starts its tick chain")
	assert.Contains(t, m.View(), "Bricks: 15")

	m, _ = updateSession(t, m, runes("p"))
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.screen)
	assert.Nil(t, m.game)
}

func TestSessionScoreboard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()
	_, err = store.SaveScore(storage.ScoreEntry{SessionID: "s1", Score: 12, Outcome: "lost"})
	require.NoError(t, err)
	require.NoError(t, store.SetMaxValue(storage.HighScoreKey, 12))

	m := NewSessionModel(testOptions(store), "tester")
	assert.Contains(t, m.View(), "High Score: 12")

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenScores, m.screen)
	assert.Contains(t, m.View(), "HIGH SCORES")
	assert.Contains(t, m.View(), "12")

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.screen)
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(testOptions(nil), "tester")

	m, cmd := updateSession(t, m, runes("q"))

	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.View())
}

func TestSessionKeepsHighScoreWithoutStore(t *testing.T) {
	m := NewSessionModel(testOptions(nil), "tester")
	require.NotNil(t, m.opts.HighScores)

	m.opts.HighScores.WriteHighScore(7)
	m.menu = m.newMenu()
	assert.Contains(t, m.View(), "High Score: 7")

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.screen)
	assert.Equal(t, 7, m.game.Game().HighScore())
}
