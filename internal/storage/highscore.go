package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
)

// HighScoreKey is the settings entry holding the best-ever score.
const HighScoreKey = "brickBreakerHighScore"

// HighScoreStore adapts Store to the game's ScoreStore. Database errors are
// logged and treated as "no high score" so the game never stops on them.
type HighScoreStore struct {
	store  *Store
	logger *log.Logger
}

// NewHighScoreStore creates the adapter. A nil logger uses the default logger.
func NewHighScoreStore(store *Store, logger *log.Logger) *HighScoreStore {
	if logger == nil {
		logger = log.Default()
	}
	return &HighScoreStore{store: store, logger: logger}
}

// ReadHighScore implements breakout.ScoreStore.
func (h *HighScoreStore) ReadHighScore() int {
	value, ok, err := h.store.Value(HighScoreKey)
	if err != nil {
		h.logger.Warn("cannot read high score", "err", err)
		return 0
	}
	if !ok {
		return 0
	}
	return value
}

// WriteHighScore implements breakout.ScoreStore.
func (h *HighScoreStore) WriteHighScore(score int) {
	if err := h.store.SetMaxValue(HighScoreKey, score); err != nil {
		h.logger.Warn("cannot write high score", "score", score, "err", err)
		return
	}
	h.logger.Debug("high score saved", "score", score)
}

// Ensure HighScoreStore implements ScoreStore
var _ breakout.ScoreStore = (*HighScoreStore)(nil)
